package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/maydkoch/levlresources/internal/driver"
)

type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}

// fakeGraph interprets the query shapes the pipeline issues against
// in-memory maps, including the full-scan queries resolution uses.
type fakeGraph struct {
	nodes map[string]map[string]interface{} // "name|label"
	edges map[string]map[string]interface{} // "source|type|target"
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		nodes: map[string]map[string]interface{}{},
		edges: map[string]map[string]interface{}{},
	}
}

func countResult(n int) (neo4j.EagerResult, error) {
	return neo4j.EagerResult{
		Records: []*neo4j.Record{
			{Keys: []string{"count"}, Values: []interface{}{int64(n)}},
		},
	}, nil
}

func between(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return ""
	}
	return rest[:j]
}

func (f *fakeGraph) ExecuteQuery(_ context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	switch {
	case query == driver.AnyNodeExistsQuery:
		name := params["name"].(string)
		for key := range f.nodes {
			if strings.HasPrefix(key, name+"|") {
				return countResult(1)
			}
		}
		return countResult(0)

	case query == driver.AllNodesQuery:
		keys := make([]string, 0, len(f.nodes))
		for k := range f.nodes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var records []*neo4j.Record
		for _, k := range keys {
			name, label, _ := strings.Cut(k, "|")
			records = append(records, &neo4j.Record{
				Keys:   []string{"name", "label"},
				Values: []interface{}{name, label},
			})
		}
		return neo4j.EagerResult{Records: records}, nil

	case query == driver.AllEdgesQuery:
		keys := make([]string, 0, len(f.edges))
		for k := range f.edges {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var records []*neo4j.Record
		for _, k := range keys {
			parts := strings.SplitN(k, "|", 3)
			attrs := f.edges[k]
			explanation, _ := attrs["explanation"].(string)
			literature, _ := attrs["literature"].(string)
			records = append(records, &neo4j.Record{
				Keys:   []string{"source_name", "target_name", "type", "explanation", "literature"},
				Values: []interface{}{parts[0], parts[2], parts[1], explanation, literature},
			})
		}
		return neo4j.EagerResult{Records: records}, nil

	case strings.HasPrefix(query, "MATCH (n:"):
		label := between(query, "MATCH (n:", " {")
		if _, ok := f.nodes[params["name"].(string)+"|"+label]; ok {
			return countResult(1)
		}
		return countResult(0)

	case strings.Contains(query, "MERGE (n:"):
		label := between(query, "MERGE (n:", " {")
		f.nodes[params["name"].(string)+"|"+label] = params
		return neo4j.EagerResult{}, nil

	case strings.HasPrefix(query, "MATCH (a {name: $source})-[r:"):
		relType := between(query, "-[r:", "]")
		key := fmt.Sprintf("%s|%s|%s", params["source"], relType, params["target"])
		if _, ok := f.edges[key]; ok {
			return countResult(1)
		}
		return countResult(0)

	case strings.Contains(query, "MERGE (a)-[r:"):
		relType := between(query, "MERGE (a)-[r:", "]")
		key := fmt.Sprintf("%s|%s|%s", params["source"], relType, params["target"])
		f.edges[key] = params
		return neo4j.EagerResult{}, nil
	}

	return neo4j.EagerResult{}, fmt.Errorf("fakeGraph: unhandled query: %s", query)
}

func (f *fakeGraph) BuildIndices(context.Context) error { return nil }
func (f *fakeGraph) Close(context.Context) error        { return nil }
