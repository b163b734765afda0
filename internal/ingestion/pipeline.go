package ingestion

import (
	"context"
	"fmt"
	"log/slog"
)

// Pipeline runs the stages in order. The first stage error aborts the run;
// tolerance for partial failure lives inside the stages that promise it, not
// here.
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

func NewPipeline(stages []Stage, logger *slog.Logger) *Pipeline {
	return &Pipeline{stages: stages, logger: logger}
}

// Run executes every stage against rc.
func (p *Pipeline) Run(ctx context.Context, rc *RunContext) error {
	p.logger.Info("pipeline started",
		slog.String("run_id", rc.RunID.String()),
		slog.Int("stages", len(p.stages)))

	for _, stage := range p.stages {
		p.logger.Info("stage started",
			slog.String("stage", stage.Name()),
			slog.String("run_id", rc.RunID.String()))

		if err := stage.Execute(ctx, rc); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name(), err)
		}

		p.logger.Info("stage completed",
			slog.String("stage", stage.Name()),
			slog.String("run_id", rc.RunID.String()))
	}

	p.logger.Info("pipeline completed",
		slog.String("run_id", rc.RunID.String()),
		slog.Int("nodes", rc.NodesLoaded),
		slog.Int("relationships", rc.RelationshipsLoaded))

	return nil
}
