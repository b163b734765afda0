// Package ingestion sequences a load run: optional source fetch, schema
// bootstrap, node loading, relationship loading, and the verification pass,
// strictly in that order.
package ingestion

import (
	"context"

	"github.com/google/uuid"

	"github.com/maraichr/crmgraph/internal/graph"
	"github.com/maraichr/crmgraph/internal/mapping"
	"github.com/maraichr/crmgraph/pkg/models"
)

// Plan names the stages treat specially. The owner entity is derived from
// the cases export instead of a file of its own, and its ownership
// relationship resolves display names into derived identities.
const (
	OwnerLabel      = "CaseOwner"
	OwnerSourceFile = "cases.csv"
	OwnerColumn     = "Case_Owner"
	CaseIDColumn    = "Case_ID"

	// AssignedToType is the one relationship resolved through owner slugs
	// instead of the generic CSV mapping.
	AssignedToType = "ASSIGNED_TO"

	// ReservedRelationshipType may appear in plans but has no loader yet;
	// it is skipped with a logged notice.
	ReservedRelationshipType = "CONVERTED_TO_OPPORTUNITY"
)

// Graph is the database surface the stages consume. *graph.Client implements
// it; tests substitute a fake.
type Graph interface {
	Exec(ctx context.Context, query string) error
	Write(ctx context.Context, query string, records []models.Record) (graph.WriteSummary, error)
	Count(ctx context.Context, query string) (int64, error)
}

// Stage represents a step in the load pipeline.
type Stage interface {
	Name() string
	Execute(ctx context.Context, rc *RunContext) error
}

// RunContext carries the plan and accumulated results through the stages.
type RunContext struct {
	RunID     uuid.UUID
	Plan      *mapping.Plan
	DataDir   string
	BatchSize int

	// Set by the node and relationship stages
	NodesLoaded         int
	RelationshipsLoaded int

	// Set by the verify stage
	Checks []CheckResult
}
