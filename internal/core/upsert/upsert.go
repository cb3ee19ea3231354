// Package upsert merges candidate fragments into the persisted graph.
//
// Nodes are first-write-wins: a second sighting of an identity never
// touches stored attributes, so a weaker later extraction cannot clobber
// curated data. Edges are last-write-wins on (source, target, type): each
// re-assertion represents a refined claim and overwrites the edge
// attributes. Applying the same fragment twice therefore leaves the graph
// unchanged.
package upsert

import (
	"context"
	"fmt"

	"github.com/maydkoch/levlresources/internal/core/model"
	"github.com/maydkoch/levlresources/internal/driver"
)

// DanglingReferenceError reports a relationship whose endpoint exists
// neither in the graph nor in the fragment's node phase. The relationship
// is dropped; the batch continues.
type DanglingReferenceError struct {
	Relationship string
	Missing      string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference in %s: node %q not found", e.Relationship, e.Missing)
}

// Result accounts for one fragment application. Dropped items are the
// per-item failures; everything else in the batch still committed.
type Result struct {
	NodesCreated int
	NodesMatched int
	EdgesCreated int
	EdgesUpdated int
	Dropped      []model.DroppedItem
}

type Engine struct {
	Driver driver.GraphDriver
}

func NewEngine(d driver.GraphDriver) *Engine {
	return &Engine{Driver: d}
}

// Apply merges a candidate fragment into the graph: all nodes first, then
// all relationships. Each node create and edge merge is individually
// atomic. A store error aborts the batch and returns the counts committed
// so far.
func (e *Engine) Apply(ctx context.Context, frag model.Fragment) (Result, error) {
	var res Result

	for _, n := range frag.Nodes {
		exists, err := e.exists(ctx, driver.NodeExistsQuery(n.Label), map[string]interface{}{"name": n.Name})
		if err != nil {
			return res, err
		}
		if exists {
			res.NodesMatched++
			continue
		}
		if err := e.createNode(ctx, n); err != nil {
			return res, err
		}
		res.NodesCreated++
	}

	for _, r := range frag.Relationships {
		relType := driver.SafeRelType(r.Type)
		if relType == "" {
			res.Dropped = append(res.Dropped, model.DroppedItem{
				Kind:   "relationship",
				Item:   describeRel(r),
				Reason: model.DropMissingFields,
			})
			continue
		}

		missing, err := e.missingEndpoint(ctx, r)
		if err != nil {
			return res, err
		}
		if missing != "" {
			res.Dropped = append(res.Dropped, model.DroppedItem{
				Kind:   "relationship",
				Item:   (&DanglingReferenceError{Relationship: describeRel(r), Missing: missing}).Error(),
				Reason: model.DropDanglingReference,
			})
			continue
		}

		existed, err := e.exists(ctx, driver.EdgeExistsQuery(relType), map[string]interface{}{
			"source": r.Source,
			"target": r.Target,
		})
		if err != nil {
			return res, err
		}

		if err := e.mergeEdge(ctx, relType, r); err != nil {
			return res, err
		}
		if existed {
			res.EdgesUpdated++
		} else {
			res.EdgesCreated++
		}
	}

	return res, nil
}

func (e *Engine) createNode(ctx context.Context, n model.Node) error {
	params := map[string]interface{}{
		"name":                         n.Name,
		"description":                  opt(n.Description),
		"subtype":                      opt(n.Subtype),
		"effort_score":                 opt(n.EffortScore),
		"dosage_lowbound":              opt(n.DosageLowbound),
		"dosage_upbound":               opt(n.DosageUpbound),
		"dosage_units":                 opt(n.DosageUnits),
		"frequency_min":                opt(n.FrequencyMin),
		"frequency_max":                opt(n.FrequencyMax),
		"repeat":                       opt(n.Repeat),
		"prescription_or_administered": opt(n.PrescriptionOrAdministered),
		"doi":                          opt(n.DOI),
	}
	_, err := e.Driver.ExecuteQuery(ctx, driver.CreateNodeQuery(n.Label), params)
	return err
}

func (e *Engine) mergeEdge(ctx context.Context, relType string, r model.Relationship) error {
	params := map[string]interface{}{
		"source":      r.Source,
		"target":      r.Target,
		"explanation": r.Explanation,
		"effect_size": opt(r.EffectSize),
		"confidence":  opt(r.Confidence),
		"conditions":  opt(r.Conditions),
		"literature":  r.Literature,
	}
	_, err := e.Driver.ExecuteQuery(ctx, driver.MergeEdgeQuery(relType), params)
	return err
}

// missingEndpoint returns the name of the first endpoint that does not
// exist in the graph, or "" when both are present. Runs after the node
// phase, so fragment-local nodes are already visible.
func (e *Engine) missingEndpoint(ctx context.Context, r model.Relationship) (string, error) {
	for _, name := range []string{r.Source, r.Target} {
		ok, err := e.exists(ctx, driver.AnyNodeExistsQuery, map[string]interface{}{"name": name})
		if err != nil {
			return "", err
		}
		if !ok {
			return name, nil
		}
	}
	return "", nil
}

func (e *Engine) exists(ctx context.Context, query string, params map[string]interface{}) (bool, error) {
	result, err := e.Driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	v, _ := result.Records[0].Get("count")
	count, _ := v.(int64)
	return count > 0, nil
}

func describeRel(r model.Relationship) string {
	return fmt.Sprintf("%s -[%s]-> %s", r.Source, r.Type, r.Target)
}

// opt unwraps an optional attribute for query parameters; nil pointers
// become graph nulls.
func opt[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
