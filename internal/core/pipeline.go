// Package core wires the extraction-to-graph pipeline together: chunk the
// literature, extract a candidate fragment per chunk, validate it, and
// merge it into the persisted graph. Entity resolution runs separately and
// only reads the graph.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maydkoch/levlresources/internal/config"
	"github.com/maydkoch/levlresources/internal/core/chunker"
	"github.com/maydkoch/levlresources/internal/core/extraction"
	"github.com/maydkoch/levlresources/internal/core/model"
	"github.com/maydkoch/levlresources/internal/core/resolution"
	"github.com/maydkoch/levlresources/internal/core/upsert"
	"github.com/maydkoch/levlresources/internal/core/validate"
	"github.com/maydkoch/levlresources/internal/driver"
	"github.com/maydkoch/levlresources/internal/llm"
)

type Pipeline struct {
	Driver    driver.GraphDriver
	Extractor *extraction.Extractor
	Upserter  *upsert.Engine
	Chunker   *chunker.Chunker
	Threshold int
	Logger    *zap.Logger
}

func NewPipeline(d driver.GraphDriver, llmClient llm.Client, cfg *config.Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		Driver:    d,
		Extractor: extraction.NewExtractor(llmClient, cfg.Pipeline.AuditDir),
		Upserter:  upsert.NewEngine(d),
		Chunker:   chunker.New(chunker.Config{MaxWords: cfg.Pipeline.MaxChunkWords}),
		Threshold: cfg.Pipeline.ResolutionThreshold,
		Logger:    logger,
	}
}

func (p *Pipeline) BuildIndices(ctx context.Context) error {
	return p.Driver.BuildIndices(ctx)
}

// Ingest runs one literature source through the full pipeline. Chunks are
// processed strictly sequentially; an unparseable chunk is skipped and
// counted, while model-service or store connectivity errors abort the run
// with the report accumulated so far.
func (p *Pipeline) Ingest(ctx context.Context, citation, body string) (*model.RunReport, error) {
	report := &model.RunReport{
		RunID:      uuid.NewString(),
		Literature: citation,
	}

	p.Logger.Info("analyzing literature",
		zap.String("run_id", report.RunID),
		zap.String("citation", citation),
		zap.Int("chunks", p.Chunker.Count(body)))

	idx := 0
	for chunk := range p.Chunker.Chunks(body) {
		idx++

		frag, err := p.Extractor.Extract(ctx, chunk)
		if err != nil {
			var failure *extraction.Failure
			if errors.As(err, &failure) {
				p.Logger.Warn("chunk skipped",
					zap.String("run_id", report.RunID),
					zap.Int("chunk", idx),
					zap.String("reason", failure.Reason))
				report.ChunksFailed++
				continue
			}
			return report, err
		}

		cleaned, dropped := validate.Clean(*frag)
		report.Dropped = append(report.Dropped, dropped...)

		provenance := fmt.Sprintf("%s (Part %d)", citation, idx)
		for i := range cleaned.Relationships {
			cleaned.Relationships[i].Literature = provenance
		}

		res, applyErr := p.Upserter.Apply(ctx, cleaned)
		report.NodesCreated += res.NodesCreated
		report.NodesMatched += res.NodesMatched
		report.EdgesCreated += res.EdgesCreated
		report.EdgesUpdated += res.EdgesUpdated
		report.Dropped = append(report.Dropped, res.Dropped...)
		if applyErr != nil {
			return report, applyErr
		}
		report.ChunksProcessed++
	}

	p.Logger.Info("ingest complete",
		zap.String("run_id", report.RunID),
		zap.Int("chunks_processed", report.ChunksProcessed),
		zap.Int("chunks_failed", report.ChunksFailed),
		zap.Int("nodes_created", report.NodesCreated),
		zap.Int("nodes_matched", report.NodesMatched),
		zap.Int("edges_created", report.EdgesCreated),
		zap.Int("edges_updated", report.EdgesUpdated),
		zap.Int("dropped", len(report.Dropped)))

	return report, nil
}

// SimilarNodes reports candidate-duplicate node pairs. A non-positive
// threshold falls back to the configured default.
func (p *Pipeline) SimilarNodes(ctx context.Context, threshold int) (*model.NodeReport, error) {
	if threshold <= 0 {
		threshold = p.Threshold
	}
	return resolution.Nodes(ctx, p.Driver, threshold)
}

// SimilarEdges reports candidate-duplicate edge pairs.
func (p *Pipeline) SimilarEdges(ctx context.Context, threshold int) (*model.EdgeReport, error) {
	if threshold <= 0 {
		threshold = p.Threshold
	}
	return resolution.Edges(ctx, p.Driver, threshold)
}
