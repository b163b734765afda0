package ingestion

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/maraichr/crmgraph/internal/derive"
	"github.com/maraichr/crmgraph/internal/mapping"
	"github.com/maraichr/crmgraph/internal/source"
	"github.com/maraichr/crmgraph/pkg/models"
)

// RelationshipStage loads every relationship type in plan order. Write
// failures are tolerated per chunk: a failed batch is logged and skipped so
// one bad relationship type cannot sink the rest of the load. Reading a
// missing source file is still fatal.
type RelationshipStage struct {
	graph  Graph
	logger *slog.Logger
}

func NewRelationshipStage(g Graph, logger *slog.Logger) *RelationshipStage {
	return &RelationshipStage{graph: g, logger: logger}
}

func (s *RelationshipStage) Name() string { return "relationships" }

func (s *RelationshipStage) Execute(ctx context.Context, rc *RunContext) error {
	for _, spec := range rc.Plan.Loading.Relationships {
		if spec.Type == ReservedRelationshipType {
			s.logger.Info("skipping relationship type, requires custom mapping logic",
				slog.String("type", spec.Type))
			continue
		}

		records, err := s.resolveRecords(rc, spec)
		if err != nil {
			return err
		}

		written := writeTolerant(ctx, s.graph, s.logger, spec.Type, spec.Query, records, rc.BatchSize)
		rc.RelationshipsLoaded += written
		s.logger.Info("loaded relationships",
			slog.String("type", spec.Type),
			slog.Int("records", len(records)),
			slog.Int("written", written))
	}
	return nil
}

// resolveRecords picks the record source for one relationship type: the
// owner-slug resolver for case assignment, the generic CSV loader for
// everything else.
func (s *RelationshipStage) resolveRecords(rc *RunContext, spec mapping.RelationshipSpec) ([]models.Record, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Type == AssignedToType {
		return derive.Assignments(filepath.Join(rc.DataDir, OwnerSourceFile), CaseIDColumn, OwnerColumn)
	}
	return source.ReadRecords(filepath.Join(rc.DataDir, spec.SourceData), spec.FieldMappings)
}
