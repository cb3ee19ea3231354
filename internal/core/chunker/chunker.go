// Package chunker splits literature text into bounded word windows for
// extraction.
package chunker

import (
	"iter"
	"strings"
)

// Config controls the chunking behaviour.
type Config struct {
	MaxWords int // Maximum words per chunk.
}

// Chunker produces contiguous word-aligned chunks of at most MaxWords
// words, covering the input exactly once with no overlap.
type Chunker struct {
	cfg Config
}

// New returns a Chunker with the given configuration. Zero-value fields
// are replaced with defaults.
func New(cfg Config) *Chunker {
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = 5000
	}
	return &Chunker{cfg: cfg}
}

// Chunks returns a lazy, restartable sequence over the chunks of text.
// Empty or whitespace-only text yields no chunks.
func (c *Chunker) Chunks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		words := strings.Fields(text)
		for i := 0; i < len(words); i += c.cfg.MaxWords {
			end := min(i+c.cfg.MaxWords, len(words))
			if !yield(strings.Join(words[i:end], " ")) {
				return
			}
		}
	}
}

// Count reports how many chunks Chunks would yield for text.
func (c *Chunker) Count(text string) int {
	n := len(strings.Fields(text))
	return (n + c.cfg.MaxWords - 1) / c.cfg.MaxWords
}
