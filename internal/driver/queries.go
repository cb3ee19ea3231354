package driver

import (
	"fmt"
	"strings"
	"unicode"
)

// Labels and relationship types are structural identifiers in Cypher and
// cannot be parameterized. The builders below splice them into the query
// text; callers must pass labels from the validated closed set and
// relationship types through SafeRelType first. All data values stay
// parameterized.

// SafeRelType normalizes a relationship type into a safe identifier:
// uppercase, runs of non-alphanumeric characters collapsed to a single
// underscore, leading and trailing separators trimmed.
func SafeRelType(relType string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range relType {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToUpper(r))
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

func NodeExistsQuery(label string) string {
	return fmt.Sprintf(`MATCH (n:%s {name: $name}) RETURN count(n) AS count`, label)
}

func CreateNodeQuery(label string) string {
	return fmt.Sprintf(`
		MERGE (n:%s {name: $name})
		SET n.description = $description,
			n.subtype = $subtype,
			n.effort_score = $effort_score,
			n.dosage_lowbound = $dosage_lowbound,
			n.dosage_upbound = $dosage_upbound,
			n.dosage_units = $dosage_units,
			n.frequency_min = $frequency_min,
			n.frequency_max = $frequency_max,
			n.repeat = $repeat,
			n.prescription_or_administered = $prescription_or_administered,
			n.doi = $doi
		RETURN n.name AS name
	`, label)
}

func EdgeExistsQuery(relType string) string {
	return fmt.Sprintf(`MATCH (a {name: $source})-[r:%s]->(b {name: $target}) RETURN count(r) AS count`, relType)
}

func MergeEdgeQuery(relType string) string {
	return fmt.Sprintf(`
		MATCH (a {name: $source}), (b {name: $target})
		MERGE (a)-[r:%s]->(b)
		SET r.explanation = $explanation,
			r.effect_size = $effect_size,
			r.confidence = $confidence,
			r.conditions = $conditions,
			r.literature = $literature
		RETURN type(r) AS type
	`, relType)
}

const (
	AnyNodeExistsQuery = `MATCH (n {name: $name}) RETURN count(n) AS count`

	AllNodesQuery = `
		MATCH (n)
		RETURN n.name AS name, labels(n)[0] AS label
	`

	AllEdgesQuery = `
		MATCH (a)-[r]->(b)
		RETURN a.name AS source_name,
			b.name AS target_name,
			type(r) AS type,
			coalesce(r.explanation, "") AS explanation,
			coalesce(r.literature, "") AS literature
	`
)
