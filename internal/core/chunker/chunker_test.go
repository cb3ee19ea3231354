package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(c *Chunker, text string) []string {
	var chunks []string
	for chunk := range c.Chunks(text) {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func TestChunksCoverInputExactly(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWords int
		want     int
	}{
		{"empty", "", 5, 0},
		{"whitespace only", "  \n\t ", 5, 0},
		{"single word", "creatine", 5, 1},
		{"exact fit", "one two three four five", 5, 1},
		{"one over", "one two three four five six", 5, 2},
		{"many chunks", strings.Repeat("word ", 23), 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Config{MaxWords: tt.maxWords})
			chunks := collect(c, tt.text)

			assert.Len(t, chunks, tt.want)
			assert.Equal(t, tt.want, c.Count(tt.text))

			// Reassembling the chunks reproduces the word sequence.
			got := []string{}
			for _, chunk := range chunks {
				words := strings.Fields(chunk)
				assert.LessOrEqual(t, len(words), tt.maxWords)
				got = append(got, words...)
			}
			assert.Equal(t, strings.Fields(tt.text), got)
		})
	}
}

func TestChunksRestartable(t *testing.T) {
	c := New(Config{MaxWords: 2})
	seq := c.Chunks("a b c d e")

	first := []string{}
	for chunk := range seq {
		first = append(first, chunk)
	}
	second := []string{}
	for chunk := range seq {
		second = append(second, chunk)
	}

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a b", "c d", "e"}, first)
}

func TestChunksEarlyStop(t *testing.T) {
	c := New(Config{MaxWords: 1})
	count := 0
	for range c.Chunks("a b c d") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestDefaultMaxWords(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, 5000, c.cfg.MaxWords)
}
