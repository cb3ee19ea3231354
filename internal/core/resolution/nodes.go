package resolution

import (
	"context"
	"sort"

	"github.com/maydkoch/levlresources/internal/core/model"
	"github.com/maydkoch/levlresources/internal/driver"
)

// MatchNodes scores every unordered pair of distinct nodes on name
// similarity and returns the pairs at or above threshold, ordered by score
// descending with lexicographic tie-breaks. Each pair is reported with
// NameA <= NameB.
func MatchNodes(nodes []model.NodeRef, threshold int) []model.NodeMatch {
	var matches []model.NodeMatch
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i].Name, nodes[j].Name
			if a > b {
				a, b = b, a
			}
			score := Similarity(a, b)
			if score >= threshold {
				matches = append(matches, model.NodeMatch{NameA: a, NameB: b, Similarity: score})
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		if matches[i].NameA != matches[j].NameA {
			return matches[i].NameA < matches[j].NameA
		}
		return matches[i].NameB < matches[j].NameB
	})

	return matches
}

// Nodes scans all persisted nodes and produces the candidate-duplicate
// report, including merge clusters over the matched pairs.
func Nodes(ctx context.Context, d driver.GraphDriver, threshold int) (*model.NodeReport, error) {
	result, err := d.ExecuteQuery(ctx, driver.AllNodesQuery, nil)
	if err != nil {
		return nil, err
	}

	var nodes []model.NodeRef
	for _, rec := range result.Records {
		name, _ := rec.Get("name")
		label, _ := rec.Get("label")
		n, ok := name.(string)
		if !ok {
			continue
		}
		l, _ := label.(string)
		nodes = append(nodes, model.NodeRef{Name: n, Label: l})
	}

	matches := MatchNodes(nodes, threshold)
	return &model.NodeReport{
		Threshold: threshold,
		Matches:   matches,
		Clusters:  Clusters(matches),
	}, nil
}
