package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maraichr/crmgraph/internal/ingestion"
	"github.com/maraichr/crmgraph/internal/source"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run the full load: constraints, indexes, nodes, relationships, verification",
	RunE:  runIngest,
}

func runIngest(cmd *cobra.Command, _ []string) error {
	return withRun(cmd.Context(), func(ctx context.Context, env *runEnv) error {
		var stages []ingestion.Stage

		// Fetch from S3 only when a bucket is configured; a local data
		// directory needs no fetch stage at all.
		if env.cfg.S3.Bucket != "" {
			fetcher, err := source.NewS3Fetcher(ctx, env.cfg.S3)
			if err != nil {
				return err
			}
			stages = append(stages, ingestion.NewFetchStage(fetcher, env.cfg.S3.Prefix, env.logger))
		}

		stages = append(stages,
			ingestion.NewSchemaStage(env.graph, env.logger),
			ingestion.NewNodeStage(env.graph, env.logger),
			ingestion.NewRelationshipStage(env.graph, env.logger),
			ingestion.NewVerifyStage(env.graph, env.logger),
		)

		return ingestion.NewPipeline(stages, env.logger).Run(ctx, env.runContext())
	})
}
