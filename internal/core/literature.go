package core

import (
	"fmt"
	"os"
	"strings"
)

// SplitLiterature separates a literature blob into its citation (the first
// line) and body (everything after).
func SplitLiterature(blob string) (citation, body string) {
	citation, body, _ = strings.Cut(blob, "\n")
	return strings.TrimSpace(citation), strings.TrimSpace(body)
}

// ReadLiteratureFile loads a literature source from disk in the standard
// input format: first line citation, remaining lines the literature body.
func ReadLiteratureFile(path string) (citation, body string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read literature file '%s': %w", path, err)
	}
	citation, body = SplitLiterature(string(data))
	if citation == "" {
		return "", "", fmt.Errorf("literature file '%s' has no citation line", path)
	}
	return citation, body, nil
}
