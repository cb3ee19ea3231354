package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maydkoch/levlresources/internal/core/model"
)

func TestCompositeWeighting(t *testing.T) {
	base := model.EdgeRef{
		SourceName:  "Smith et al. 2020",
		TargetName:  "Increased Muscle Mass",
		Type:        "POINTS_TO",
		Explanation: "Creatine increased muscle mass.",
	}

	// Identical edges score 100.
	assert.Equal(t, 100, composite(base, base))

	// Explanation and type identical, endpoints unrelated:
	// 0.2*100 + 0.2*100 + 0.3*0 + 0.3*0 = 40.
	other := base
	other.SourceName = "xq"
	other.TargetName = "zz"
	assert.Equal(t, 40, composite(base, other))

	// Symmetric.
	assert.Equal(t, composite(base, other), composite(other, base))
}

func TestMatchEdgesThresholdAndProvenance(t *testing.T) {
	e1 := model.EdgeRef{
		SourceName:  "Smith et al. 2020",
		TargetName:  "Increased Muscle Mass",
		Type:        "POINTS_TO",
		Explanation: "Creatine increased muscle mass in trained men.",
		Literature:  "Smith et al. 2020 (Part 1)",
	}
	e2 := model.EdgeRef{
		SourceName:  "Smith et al 2020",
		TargetName:  "Increased Muscle-Mass",
		Type:        "POINTS_TO",
		Explanation: "Creatine increased muscle mass in trained men.",
		Literature:  "Smith et al 2020 (Part 1)",
	}
	unrelated := model.EdgeRef{
		SourceName:  "Jones 2019",
		TargetName:  "Improved Sleep",
		Type:        "POINTS_TO",
		Explanation: "Magnesium improved sleep quality.",
		Literature:  "Jones 2019 (Part 1)",
	}

	matches := MatchEdges([]model.EdgeRef{e1, e2, unrelated}, 90)

	require.Len(t, matches, 1)
	m := matches[0]
	assert.GreaterOrEqual(t, m.Similarity, 90)

	// Both edges arrive intact for the reviewer, provenance included.
	got := map[string]bool{m.A.Literature: true, m.B.Literature: true}
	assert.True(t, got["Smith et al. 2020 (Part 1)"])
	assert.True(t, got["Smith et al 2020 (Part 1)"])
}

func TestMatchEdgesOrdering(t *testing.T) {
	exact := model.EdgeRef{SourceName: "A", TargetName: "B", Type: "STUDIED_IN", Explanation: "same claim", Literature: "x"}
	exactDup := model.EdgeRef{SourceName: "A", TargetName: "B", Type: "STUDIED_IN", Explanation: "same claim", Literature: "y"}
	near := model.EdgeRef{SourceName: "Vitamin D", TargetName: "Bone Health", Type: "POINTS_TO", Explanation: "improves bone density", Literature: "p"}
	nearDup := model.EdgeRef{SourceName: "Vitamin-D", TargetName: "Bone Health", Type: "POINTS_TO", Explanation: "improves the bone density", Literature: "q"}

	matches := MatchEdges([]model.EdgeRef{near, exact, nearDup, exactDup}, 90)

	require.Len(t, matches, 2)
	assert.Equal(t, 100, matches[0].Similarity)
	assert.GreaterOrEqual(t, matches[0].Similarity, matches[1].Similarity)
}

func TestMatchEdgesNoSelfPair(t *testing.T) {
	e := model.EdgeRef{SourceName: "A", TargetName: "B", Type: "STUDIED_IN", Explanation: "x"}
	assert.Empty(t, MatchEdges([]model.EdgeRef{e}, 90))
}
