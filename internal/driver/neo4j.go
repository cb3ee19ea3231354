package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// ErrStoreUnavailable marks failures to reach the graph store. Fatal to a
// run; the core does not retry.
var ErrStoreUnavailable = errors.New("graph store unavailable")

type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
	logger *zap.Logger
}

func NewNeo4jDriver(uri, username, password string, logger *zap.Logger) (*Neo4jDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	logger.Info("connected to graph store", zap.String("uri", uri))
	return &Neo4jDriver{Driver: driver, logger: logger}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (d *Neo4jDriver) BuildIndices(ctx context.Context) error {
	// Lookups during upsert are always (name, label), so each label gets a
	// name index.
	queries := []string{
		"CREATE INDEX modality_name IF NOT EXISTS FOR (n:Modality) ON (n.name);",
		"CREATE INDEX benefit_name IF NOT EXISTS FOR (n:Benefit) ON (n.name);",
		"CREATE INDEX negative_name IF NOT EXISTS FOR (n:Negative) ON (n.name);",
		"CREATE INDEX source_name IF NOT EXISTS FOR (n:Source) ON (n.name);",
	}

	for _, q := range queries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			d.logger.Warn("failed to create index", zap.String("query", q), zap.Error(err))
			// Continue, the index may already exist.
		}
	}

	return nil
}
