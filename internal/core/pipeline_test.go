package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maydkoch/levlresources/internal/config"
	"github.com/maydkoch/levlresources/internal/llm"
)

const creatineJSON = `{
	"nodes": [
		{"name": "Creatine", "label": "Modality", "subtype": "Supplement", "description": "A supplement."},
		{"name": "Smith et al. 2020", "label": "Source", "doi": null},
		{"name": "Increased Muscle Mass", "label": "Benefit"}
	],
	"relationships": [
		{"source": "Creatine", "target": "Smith et al. 2020", "type": "STUDIED_IN",
		 "explanation": "Creatine was studied in Smith et al. 2020.", "effect_size": null, "confidence": null, "conditions": null},
		{"source": "Smith et al. 2020", "target": "Increased Muscle Mass", "type": "POINTS_TO",
		 "explanation": "The study showed increased muscle mass.", "effect_size": 70, "confidence": 85, "conditions": null}
	]
}`

func newTestPipeline(t *testing.T, g *fakeGraph, client llm.Client) *Pipeline {
	t.Helper()
	cfg := &config.Config{}
	cfg.Pipeline.MaxChunkWords = 5000
	cfg.Pipeline.AuditDir = t.TempDir()
	cfg.Pipeline.ResolutionThreshold = 90
	return NewPipeline(g, client, cfg, zap.NewNop())
}

func TestIngestEndToEnd(t *testing.T) {
	g := newFakeGraph()
	p := newTestPipeline(t, g, &MockLLM{Response: creatineJSON})

	report, err := p.Ingest(context.Background(),
		"Smith et al. 2020",
		"Creatine supplementation increased muscle mass in a randomized trial.")

	require.NoError(t, err)
	assert.Equal(t, 1, report.ChunksProcessed)
	assert.Equal(t, 0, report.ChunksFailed)
	assert.Equal(t, 3, report.NodesCreated)
	assert.Equal(t, 0, report.NodesMatched)
	assert.Equal(t, 2, report.EdgesCreated)
	assert.Empty(t, report.Dropped)

	assert.Contains(t, g.nodes, "Creatine|Modality")
	assert.Contains(t, g.nodes, "Smith et al. 2020|Source")
	assert.Contains(t, g.nodes, "Increased Muscle Mass|Benefit")

	require.Contains(t, g.edges, "Smith et al. 2020|POINTS_TO|Increased Muscle Mass")
	edge := g.edges["Smith et al. 2020|POINTS_TO|Increased Muscle Mass"]
	assert.Equal(t, 70, edge["effect_size"])
	assert.Equal(t, 85, edge["confidence"])
	assert.Equal(t, "Smith et al. 2020 (Part 1)", edge["literature"])

	require.Contains(t, g.edges, "Creatine|STUDIED_IN|Smith et al. 2020")
}

func TestIngestIdempotent(t *testing.T) {
	g := newFakeGraph()
	p := newTestPipeline(t, g, &MockLLM{Response: creatineJSON})

	_, err := p.Ingest(context.Background(), "Smith et al. 2020", "Creatine text.")
	require.NoError(t, err)
	report, err := p.Ingest(context.Background(), "Smith et al. 2020", "Creatine text.")
	require.NoError(t, err)

	assert.Equal(t, 0, report.NodesCreated)
	assert.Equal(t, 3, report.NodesMatched)
	assert.Equal(t, 0, report.EdgesCreated)
	assert.Equal(t, 2, report.EdgesUpdated)
	assert.Len(t, g.nodes, 3)
	assert.Len(t, g.edges, 2)
}

func TestIngestSkipsUnparseableChunk(t *testing.T) {
	g := newFakeGraph()
	p := newTestPipeline(t, g, &MockLLM{Response: "no structured data here"})

	report, err := p.Ingest(context.Background(), "Smith et al. 2020", "Some literature body.")

	require.NoError(t, err)
	assert.Equal(t, 0, report.ChunksProcessed)
	assert.Equal(t, 1, report.ChunksFailed)
	assert.Empty(t, g.nodes)
}

func TestIngestEmptyBody(t *testing.T) {
	g := newFakeGraph()
	p := newTestPipeline(t, g, &MockLLM{Response: creatineJSON})

	report, err := p.Ingest(context.Background(), "Smith et al. 2020", "")

	require.NoError(t, err)
	assert.Equal(t, 0, report.ChunksProcessed)
	assert.Empty(t, g.nodes)
}

func TestSimilarNodesFindsDuplicates(t *testing.T) {
	g := newFakeGraph()
	g.nodes["Vitamin D|Modality"] = map[string]interface{}{"name": "Vitamin D"}
	g.nodes["Vitamin-D|Modality"] = map[string]interface{}{"name": "Vitamin-D"}
	g.nodes["Creatine|Modality"] = map[string]interface{}{"name": "Creatine"}
	p := newTestPipeline(t, g, &MockLLM{})

	report, err := p.SimilarNodes(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 90, report.Threshold)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "Vitamin D", report.Matches[0].NameA)
	assert.Equal(t, "Vitamin-D", report.Matches[0].NameB)
	require.Len(t, report.Clusters, 1)
	assert.Equal(t, []string{"Vitamin D", "Vitamin-D"}, report.Clusters[0].Names)

	// Resolution never mutates the graph.
	assert.Len(t, g.nodes, 3)
}

func TestSimilarEdgesFindsDuplicates(t *testing.T) {
	g := newFakeGraph()
	g.edges["Smith et al. 2020|POINTS_TO|Increased Muscle Mass"] = map[string]interface{}{
		"explanation": "The study showed increased muscle mass.",
		"literature":  "Smith et al. 2020 (Part 1)",
	}
	g.edges["Smith et al 2020|POINTS_TO|Increased Muscle-Mass"] = map[string]interface{}{
		"explanation": "The study showed increased muscle mass.",
		"literature":  "Smith et al 2020 (Part 1)",
	}
	p := newTestPipeline(t, g, &MockLLM{})

	report, err := p.SimilarEdges(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, report.Matches, 1)
	m := report.Matches[0]
	assert.GreaterOrEqual(t, m.Similarity, 90)
	assert.NotEmpty(t, m.A.Literature)
	assert.NotEmpty(t, m.B.Literature)
	assert.Len(t, g.edges, 2)
}

func TestSplitLiterature(t *testing.T) {
	citation, body := SplitLiterature("Smith et al. 2020\nThe study text.\nMore text.")
	assert.Equal(t, "Smith et al. 2020", citation)
	assert.Equal(t, "The study text.\nMore text.", body)

	citation, body = SplitLiterature("Only a citation")
	assert.Equal(t, "Only a citation", citation)
	assert.Empty(t, body)
}
