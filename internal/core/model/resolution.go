package model

// NodeMatch is a candidate-duplicate node pair. Never persisted; emitted
// for human merge review only.
type NodeMatch struct {
	NameA      string `json:"name_a"`
	NameB      string `json:"name_b"`
	Similarity int    `json:"similarity"`
}

// EdgeMatch is a candidate-duplicate edge pair with the provenance a
// reviewer needs to judge the merge.
type EdgeMatch struct {
	A          EdgeRef `json:"a"`
	B          EdgeRef `json:"b"`
	Similarity int     `json:"similarity"`
}

// MergeCluster groups node names whose pairwise candidates form one
// connected component, so a reviewer sees all spellings of an entity at
// once.
type MergeCluster struct {
	Names []string `json:"names"`
}

// NodeReport is the full output of one node-resolution pass.
type NodeReport struct {
	Threshold int            `json:"threshold"`
	Matches   []NodeMatch    `json:"matches"`
	Clusters  []MergeCluster `json:"clusters"`
}

// EdgeReport is the full output of one edge-resolution pass.
type EdgeReport struct {
	Threshold int         `json:"threshold"`
	Matches   []EdgeMatch `json:"matches"`
}
