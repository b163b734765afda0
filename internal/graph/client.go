// Package graph wraps the Neo4j driver: connection lifecycle, the batched
// record writes the loader issues, and the read-only counts the verifier
// runs.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/maraichr/crmgraph/internal/config"
	"github.com/maraichr/crmgraph/pkg/loaderr"
	"github.com/maraichr/crmgraph/pkg/models"
)

// Client wraps the Neo4j driver and provides the pipeline's database
// operations. Pooling and retries stay inside the driver.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewClient creates a client from configuration and verifies connectivity
// before returning, so a bad URI or credentials fail at startup rather than
// on the first write.
func NewClient(ctx context.Context, cfg config.Neo4jConfig) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, loaderr.ConnectionFailed(cfg.URI, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, loaderr.ConnectionFailed(cfg.URI, err)
	}
	return &Client{driver: driver, database: cfg.Database}, nil
}

// Close releases the driver resources.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Session returns a new write-mode session on the configured database.
func (c *Client) Session(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
}

// WriteSummary reports what one write changed, taken from the driver's
// result counters.
type WriteSummary struct {
	NodesCreated         int
	RelationshipsCreated int
	PropertiesSet        int
}

// Add accumulates another summary into s.
func (s *WriteSummary) Add(o WriteSummary) {
	s.NodesCreated += o.NodesCreated
	s.RelationshipsCreated += o.RelationshipsCreated
	s.PropertiesSet += o.PropertiesSet
}

// Exec runs one statement with no parameters and consumes the result. Used
// for the constraint and index statements.
func (c *Client) Exec(ctx context.Context, query string) error {
	session := c.Session(ctx)
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (struct{}, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return struct{}{}, err
		}
		_, err = res.Consume(ctx)
		return struct{}{}, err
	})
	return err
}

// Write executes one parameterized load statement, binding records as the
// $records parameter, and reports the write counters.
func (c *Client) Write(ctx context.Context, query string, records []models.Record) (WriteSummary, error) {
	session := c.Session(ctx)
	defer session.Close(ctx)

	return neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (WriteSummary, error) {
		res, err := tx.Run(ctx, query, map[string]any{"records": records})
		if err != nil {
			return WriteSummary{}, err
		}
		summary, err := res.Consume(ctx)
		if err != nil {
			return WriteSummary{}, err
		}
		counters := summary.Counters()
		return WriteSummary{
			NodesCreated:         counters.NodesCreated(),
			RelationshipsCreated: counters.RelationshipsCreated(),
			PropertiesSet:        counters.PropertiesSet(),
		}, nil
	})
}

// Count runs a read-only query that returns a single record with a single
// `count` field.
func (c *Client) Count(ctx context.Context, query string) (int64, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.database,
	})
	defer session.Close(ctx)

	return neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) (int64, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return 0, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return 0, err
		}
		value, ok := record.Get("count")
		if !ok {
			return 0, fmt.Errorf("query returned no count field")
		}
		count, ok := value.(int64)
		if !ok {
			return 0, fmt.Errorf("count is %T, want int64", value)
		}
		return count, nil
	})
}
