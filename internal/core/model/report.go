package model

// Drop reasons attached to items excluded from a batch.
const (
	DropMissingFields     = "missing required fields"
	DropUnknownLabel      = "unknown label"
	DropDanglingReference = "dangling reference"
)

// DroppedItem records one node or relationship excluded from a batch and
// why.
type DroppedItem struct {
	Kind   string `json:"kind"` // "node" or "relationship"
	Item   string `json:"item"` // identity description, e.g. "Creatine (Modality)"
	Reason string `json:"reason"`
}

// RunReport is the user-visible accounting for one pipeline run.
type RunReport struct {
	RunID           string        `json:"run_id"`
	Literature      string        `json:"literature"`
	ChunksProcessed int           `json:"chunks_processed"`
	ChunksFailed    int           `json:"chunks_failed"`
	NodesCreated    int           `json:"nodes_created"`
	NodesMatched    int           `json:"nodes_matched"`
	EdgesCreated    int           `json:"edges_created"`
	EdgesUpdated    int           `json:"edges_updated"`
	Dropped         []DroppedItem `json:"dropped,omitempty"`
}
