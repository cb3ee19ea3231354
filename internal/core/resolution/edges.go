package resolution

import (
	"context"
	"sort"
	"strings"

	"github.com/maydkoch/levlresources/internal/core/model"
	"github.com/maydkoch/levlresources/internal/driver"
)

// MatchEdges scores every unordered pair of distinct edges on four
// features — explanation, type label, source-node name, target-node name —
// combined as 0.2, 0.2, 0.3, 0.3 and truncated to an integer. Pairs at or
// above threshold are returned ordered by composite descending with
// deterministic tie-breaks.
func MatchEdges(edges []model.EdgeRef, threshold int) []model.EdgeMatch {
	var matches []model.EdgeMatch
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			score := composite(a, b)
			if score < threshold {
				continue
			}
			if edgeKey(a) > edgeKey(b) {
				a, b = b, a
			}
			matches = append(matches, model.EdgeMatch{A: a, B: b, Similarity: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		if k := edgeKey(matches[i].A); k != edgeKey(matches[j].A) {
			return k < edgeKey(matches[j].A)
		}
		return edgeKey(matches[i].B) < edgeKey(matches[j].B)
	})

	return matches
}

// composite is integer arithmetic over integer features, so the weighted
// sum stays exact before truncation.
func composite(a, b model.EdgeRef) int {
	explanation := Similarity(a.Explanation, b.Explanation)
	relType := Similarity(a.Type, b.Type)
	sourceName := Similarity(a.SourceName, b.SourceName)
	targetName := Similarity(a.TargetName, b.TargetName)
	return (2*explanation + 2*relType + 3*sourceName + 3*targetName) / 10
}

func edgeKey(e model.EdgeRef) string {
	return strings.Join([]string{e.SourceName, e.Type, e.TargetName, e.Literature}, "|")
}

// Edges scans all persisted edges and produces the candidate-duplicate
// report. Both edges' type, explanation, and literature provenance are
// carried through for the reviewer.
func Edges(ctx context.Context, d driver.GraphDriver, threshold int) (*model.EdgeReport, error) {
	result, err := d.ExecuteQuery(ctx, driver.AllEdgesQuery, nil)
	if err != nil {
		return nil, err
	}

	var edges []model.EdgeRef
	for _, rec := range result.Records {
		var e model.EdgeRef
		if v, _ := rec.Get("source_name"); v != nil {
			e.SourceName, _ = v.(string)
		}
		if v, _ := rec.Get("target_name"); v != nil {
			e.TargetName, _ = v.(string)
		}
		if v, _ := rec.Get("type"); v != nil {
			e.Type, _ = v.(string)
		}
		if v, _ := rec.Get("explanation"); v != nil {
			e.Explanation, _ = v.(string)
		}
		if v, _ := rec.Get("literature"); v != nil {
			e.Literature, _ = v.(string)
		}
		edges = append(edges, e)
	}

	return &model.EdgeReport{
		Threshold: threshold,
		Matches:   MatchEdges(edges, threshold),
	}, nil
}
