package model

// Fragment is the transient output of one extraction call: proposed nodes
// and relationships not yet reconciled against the persisted graph. It is
// consumed and discarded by the upsert engine.
type Fragment struct {
	Nodes         []Node         `json:"nodes"`
	Relationships []Relationship `json:"relationships"`
}
