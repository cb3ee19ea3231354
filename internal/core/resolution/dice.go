// Package resolution scores pairs of graph nodes and edges for
// merge candidacy. It reads the graph and never writes it; acting on a
// candidate pair is a human step.
package resolution

import (
	"strings"
	"unicode"
)

// Similarity is the Sørensen–Dice bigram overlap of two strings scaled to
// 0-100 and truncated: twice the shared adjacent-character pairs over the
// total pair count of both strings. Input is lowercased and stripped of
// non-alphanumeric runes first, so "Vitamin D" and "Vitamin-D" compare
// equal. Symmetric by construction.
func Similarity(a, b string) int {
	na, nb := normalize(a), normalize(b)

	ba, bb := bigrams(na), bigrams(nb)
	totalA, totalB := 0, 0
	for _, c := range ba {
		totalA += c
	}
	for _, c := range bb {
		totalB += c
	}

	// Strings shorter than two runes have no bigrams; fall back to exact
	// match so identical short names still score 100.
	if totalA+totalB == 0 {
		if na == nb {
			return 100
		}
		return 0
	}

	shared := 0
	for g, c := range ba {
		if other, ok := bb[g]; ok {
			shared += min(c, other)
		}
	}

	return (2 * shared * 100) / (totalA + totalB)
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// bigrams counts adjacent rune pairs as a multiset.
func bigrams(s string) map[string]int {
	runes := []rune(s)
	counts := make(map[string]int)
	for i := 0; i+1 < len(runes); i++ {
		counts[string(runes[i:i+2])]++
	}
	return counts
}
