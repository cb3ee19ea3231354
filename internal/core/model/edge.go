package model

// Relationship is a directed, typed edge proposed by extraction.
// Source and Target reference nodes by name. At most one edge of a given
// type exists between an ordered (source, target) pair; re-merging the same
// key overwrites the attributes below.
type Relationship struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Type        string  `json:"type"`
	Explanation string  `json:"explanation"`
	EffectSize  *int    `json:"effect_size"`
	Confidence  *int    `json:"confidence"`
	Conditions  *string `json:"conditions"`

	// Literature is the citation of the source text this claim came from.
	// Set by the pipeline, not by extraction.
	Literature string `json:"literature,omitempty"`
}

// EdgeRef is the projection of a stored edge used by resolution scans.
type EdgeRef struct {
	SourceName  string `json:"source_name"`
	TargetName  string `json:"target_name"`
	Type        string `json:"type"`
	Explanation string `json:"explanation"`
	Literature  string `json:"literature"`
}
