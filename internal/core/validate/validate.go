// Package validate enforces the minimum object shape on parsed model
// output. Objects missing required fields are dropped from the fragment
// and counted; the fragment itself survives. No other field is
// type-checked here: numeric and enum attributes pass through as-is, and
// null-vs-fabricated discipline rests with the extraction instruction.
package validate

import (
	"fmt"

	"github.com/maydkoch/levlresources/internal/core/model"
)

// Clean returns the fragment with invalid objects removed, plus one
// DroppedItem per removal. A node requires name and a whitelisted label; a
// relationship requires source, target, and type. Missing top-level
// sequences are already empty slices after parsing.
func Clean(frag model.Fragment) (model.Fragment, []model.DroppedItem) {
	var dropped []model.DroppedItem

	out := model.Fragment{}
	for _, n := range frag.Nodes {
		switch {
		case n.Name == "" || n.Label == "":
			dropped = append(dropped, model.DroppedItem{
				Kind:   "node",
				Item:   describeNode(n),
				Reason: model.DropMissingFields,
			})
		case !model.ValidLabel(n.Label):
			// Labels are spliced into Cypher, so the whitelist doubles as
			// the injection guard.
			dropped = append(dropped, model.DroppedItem{
				Kind:   "node",
				Item:   describeNode(n),
				Reason: model.DropUnknownLabel,
			})
		default:
			out.Nodes = append(out.Nodes, n)
		}
	}

	for _, r := range frag.Relationships {
		if r.Source == "" || r.Target == "" || r.Type == "" {
			dropped = append(dropped, model.DroppedItem{
				Kind:   "relationship",
				Item:   fmt.Sprintf("%s -[%s]-> %s", r.Source, r.Type, r.Target),
				Reason: model.DropMissingFields,
			})
			continue
		}
		out.Relationships = append(out.Relationships, r)
	}

	return out, dropped
}

func describeNode(n model.Node) string {
	return fmt.Sprintf("%s (%s)", n.Name, n.Label)
}
