// Package extraction invokes the external model service on one text chunk
// and parses its response into a candidate graph fragment.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/maydkoch/levlresources/internal/core/model"
	"github.com/maydkoch/levlresources/internal/llm"
)

// Failure marks a model response that could not be parsed after one repair
// attempt. Fatal to the chunk, not to the run.
type Failure struct {
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("extraction failed (%s): %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

type Extractor struct {
	LLM      llm.Client
	AuditDir string

	now func() time.Time
}

// NewExtractor returns an Extractor that audits successful extractions to
// auditDir. An empty auditDir disables the audit trail.
func NewExtractor(client llm.Client, auditDir string) *Extractor {
	return &Extractor{
		LLM:      client,
		AuditDir: auditDir,
		now:      time.Now,
	}
}

// Extract sends one chunk to the model service and returns the candidate
// fragment. Each call is independent; no state is held across chunks.
// Connectivity errors from the model service propagate as-is; unparseable
// responses return a *Failure.
func (e *Extractor) Extract(ctx context.Context, chunk string) (*model.Fragment, error) {
	prompt := fmt.Sprintf(promptTemplate, chunk)

	response, err := e.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model service: %w", err)
	}

	frag, err := parseFragment(response)
	if err != nil {
		return nil, &Failure{Reason: "unparseable", Err: err}
	}

	if e.AuditDir != "" {
		if _, err := e.writeArtifact(frag); err != nil {
			return nil, fmt.Errorf("failed to write audit artifact: %w", err)
		}
	}

	return frag, nil
}

// parseFragment attempts direct parsing, then one bounded repair: strip
// fenced-code wrapping and retry once.
func parseFragment(raw string) (*model.Fragment, error) {
	var frag model.Fragment
	if err := json.Unmarshal([]byte(raw), &frag); err == nil {
		return &frag, nil
	}

	cleaned := stripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &frag); err != nil {
		return nil, err
	}
	return &frag, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
