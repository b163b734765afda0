package ingestion

import (
	"context"
	"log/slog"

	"github.com/maraichr/crmgraph/internal/graph"
	"github.com/maraichr/crmgraph/pkg/loaderr"
)

// SchemaStage runs the configured constraint statements, then the index
// statements. A statement the database reports as already existing counts as
// success; any other failure aborts the run before data moves.
type SchemaStage struct {
	graph  Graph
	logger *slog.Logger
}

func NewSchemaStage(g Graph, logger *slog.Logger) *SchemaStage {
	return &SchemaStage{graph: g, logger: logger}
}

func (s *SchemaStage) Name() string { return "schema" }

func (s *SchemaStage) Execute(ctx context.Context, rc *RunContext) error {
	if err := s.apply(ctx, "constraint", rc.Plan.Init.Constraints); err != nil {
		return err
	}

	if len(rc.Plan.Init.Indexes) == 0 {
		s.logger.Info("no indexes to create")
		return nil
	}
	return s.apply(ctx, "index", rc.Plan.Init.Indexes)
}

func (s *SchemaStage) apply(ctx context.Context, kind string, statements []string) error {
	for _, stmt := range statements {
		err := s.graph.Exec(ctx, stmt)
		switch {
		case err == nil:
			s.logger.Info("created "+kind, slog.String("statement", stmt))
		case graph.IsAlreadyExists(err):
			s.logger.Info(kind+" already exists", slog.String("statement", stmt))
		default:
			return loaderr.SchemaInitFailed(stmt, err)
		}
	}
	return nil
}
