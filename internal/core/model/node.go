package model

// Node labels form a closed set. Labels are spliced into Cypher as
// structural identifiers, so anything outside this set is rejected at
// validation time.
const (
	LabelModality = "Modality"
	LabelBenefit  = "Benefit"
	LabelNegative = "Negative"
	LabelSource   = "Source"
)

func ValidLabel(label string) bool {
	switch label {
	case LabelModality, LabelBenefit, LabelNegative, LabelSource:
		return true
	}
	return false
}

// Node is one entity proposed by extraction or stored in the graph.
// (Name, Label) is the identity; no two nodes share both.
//
// Optional attributes are pointers so that a null or absent field in the
// model response stays null in the store rather than collapsing to a zero
// value. Fields beyond Name and Label are never fabricated here; whatever
// the extraction returned passes through as-is.
type Node struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`

	// Modality-only attributes.
	Subtype                    *string `json:"subtype,omitempty"`
	EffortScore                *int    `json:"effort_score,omitempty"`
	DosageLowbound             *int    `json:"dosage_lowbound,omitempty"`
	DosageUpbound              *int    `json:"dosage_upbound,omitempty"`
	DosageUnits                *string `json:"dosage_units,omitempty"`
	FrequencyMin               *int    `json:"frequency_min,omitempty"`
	FrequencyMax               *int    `json:"frequency_max,omitempty"`
	Repeat                     *string `json:"repeat,omitempty"`
	PrescriptionOrAdministered *bool   `json:"prescription_or_administered,omitempty"`

	// Source-only attribute.
	DOI *string `json:"doi,omitempty"`
}

// NodeRef is the minimal identity projection returned by graph scans.
type NodeRef struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}
