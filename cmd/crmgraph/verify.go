package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maraichr/crmgraph/internal/ingestion"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run only the read-only verification pass against the loaded graph",
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, _ []string) error {
	return withRun(cmd.Context(), func(ctx context.Context, env *runEnv) error {
		rc := env.runContext()
		pipeline := ingestion.NewPipeline([]ingestion.Stage{
			ingestion.NewVerifyStage(env.graph, env.logger),
		}, env.logger)

		if err := pipeline.Run(ctx, rc); err != nil {
			return err
		}
		for _, check := range rc.Checks {
			cmd.Printf("%-40s %d\n", check.Label, check.Count)
		}
		return nil
	})
}
