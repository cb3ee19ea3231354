package resolution

import (
	"sort"

	"github.com/maydkoch/levlresources/internal/core/model"
)

const maxPropagationIterations = 20

// Clusters groups candidate node pairs into connected merge clusters by
// label propagation over the pair graph: every name starts as its own
// label and repeatedly adopts the smallest label among itself and its
// neighbors until stable. Lexicographic-minimum propagation keeps the
// result deterministic. The pair graph is small (only pairs above
// threshold), so the loop converges in a handful of iterations.
func Clusters(matches []model.NodeMatch) []model.MergeCluster {
	if len(matches) == 0 {
		return nil
	}

	adj := make(map[string][]string)
	labels := make(map[string]string)
	for _, m := range matches {
		adj[m.NameA] = append(adj[m.NameA], m.NameB)
		adj[m.NameB] = append(adj[m.NameB], m.NameA)
		labels[m.NameA] = m.NameA
		labels[m.NameB] = m.NameB
	}

	names := make([]string, 0, len(labels))
	for n := range labels {
		names = append(names, n)
	}
	sort.Strings(names)

	for iter := 0; iter < maxPropagationIterations; iter++ {
		changed := 0
		for _, n := range names {
			best := labels[n]
			for _, neighbor := range adj[n] {
				if labels[neighbor] < best {
					best = labels[neighbor]
				}
			}
			if labels[n] != best {
				labels[n] = best
				changed++
			}
		}
		if changed == 0 {
			break
		}
	}

	grouped := make(map[string][]string)
	for _, n := range names {
		grouped[labels[n]] = append(grouped[labels[n]], n)
	}

	var clusters []model.MergeCluster
	for _, members := range grouped {
		sort.Strings(members)
		clusters = append(clusters, model.MergeCluster{Names: members})
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Names[0] < clusters[j].Names[0]
	})

	return clusters
}
