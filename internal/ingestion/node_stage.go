package ingestion

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/maraichr/crmgraph/internal/derive"
	"github.com/maraichr/crmgraph/internal/mapping"
	"github.com/maraichr/crmgraph/internal/source"
	"github.com/maraichr/crmgraph/pkg/loaderr"
	"github.com/maraichr/crmgraph/pkg/models"
)

// NodeStage loads every node type in the plan. The derived owner type goes
// first because relationships loaded later point at it; the remaining types
// follow in plan order. Any write failure here aborts the run.
type NodeStage struct {
	graph  Graph
	logger *slog.Logger
}

func NewNodeStage(g Graph, logger *slog.Logger) *NodeStage {
	return &NodeStage{graph: g, logger: logger}
}

func (s *NodeStage) Name() string { return "nodes" }

func (s *NodeStage) Execute(ctx context.Context, rc *RunContext) error {
	if err := s.loadOwners(ctx, rc); err != nil {
		return err
	}

	for _, spec := range rc.Plan.Loading.Nodes {
		if spec.Label == OwnerLabel {
			continue // derived, already loaded
		}
		if err := s.loadNodes(ctx, rc, spec); err != nil {
			return err
		}
	}
	return nil
}

// loadOwners aggregates distinct owner names out of the cases export and
// writes them with the plan's owner statement. The owner entry needs only a
// query; its records never come from a file mapping.
func (s *NodeStage) loadOwners(ctx context.Context, rc *RunContext) error {
	spec, ok := rc.Plan.Loading.Nodes.Get(OwnerLabel)
	if !ok {
		return loaderr.PlanEntryInvalid("node", OwnerLabel, "entry")
	}
	if spec.Query == "" {
		return loaderr.PlanEntryInvalid("node", OwnerLabel, "query")
	}

	owners, err := derive.Owners(filepath.Join(rc.DataDir, OwnerSourceFile), OwnerColumn)
	if err != nil {
		return err
	}
	records := make([]models.Record, len(owners))
	for i, owner := range owners {
		records[i] = owner.Record()
	}

	summary, err := writeAll(ctx, s.graph, OwnerLabel, spec.Query, records, rc.BatchSize)
	if err != nil {
		return err
	}
	rc.NodesLoaded += len(records)
	s.logger.Info("loaded nodes",
		slog.String("label", OwnerLabel),
		slog.Int("records", len(records)),
		slog.Int("created", summary.NodesCreated))
	return nil
}

func (s *NodeStage) loadNodes(ctx context.Context, rc *RunContext, spec mapping.NodeSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	records, err := source.ReadRecords(filepath.Join(rc.DataDir, spec.SourceFile), spec.FieldMappings)
	if err != nil {
		return err
	}

	summary, err := writeAll(ctx, s.graph, spec.Label, spec.Query, records, rc.BatchSize)
	if err != nil {
		return err
	}
	rc.NodesLoaded += len(records)
	s.logger.Info("loaded nodes",
		slog.String("label", spec.Label),
		slog.String("file", spec.SourceFile),
		slog.Int("records", len(records)),
		slog.Int("created", summary.NodesCreated))
	return nil
}
