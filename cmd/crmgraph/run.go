package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/maraichr/crmgraph/internal/config"
	"github.com/maraichr/crmgraph/internal/graph"
	"github.com/maraichr/crmgraph/internal/ingestion"
	"github.com/maraichr/crmgraph/internal/logging"
	"github.com/maraichr/crmgraph/internal/mapping"
)

// runEnv bundles what every database-touching command needs.
type runEnv struct {
	cfg    *config.Config
	plan   *mapping.Plan
	logger *slog.Logger
	graph  *graph.Client
}

func (e *runEnv) runContext() *ingestion.RunContext {
	return &ingestion.RunContext{
		RunID:     uuid.New(),
		Plan:      e.plan,
		DataDir:   dataDir,
		BatchSize: e.cfg.BatchSize,
	}
}

// withRun wires configuration, logging, the plan, and a verified database
// connection, runs fn, and releases the connection on every exit path.
func withRun(ctx context.Context, fn func(ctx context.Context, env *runEnv) error) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		// No log file yet; configuration decides where logs go.
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("configuration failed",
			slog.String("error", err.Error()))
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	plan, err := mapping.Load(configPath)
	if err != nil {
		logger.Error("ingest plan failed to load",
			slog.String("config", configPath),
			slog.String("error", err.Error()))
		return err
	}
	logger.Info("loaded ingest plan",
		slog.String("config", configPath),
		slog.Int("node_types", len(plan.Loading.Nodes)),
		slog.Int("relationship_types", len(plan.Loading.Relationships)))

	client, err := graph.NewClient(ctx, cfg.Neo4j)
	if err != nil {
		logger.Error("failed to connect to neo4j",
			slog.String("uri", cfg.Neo4j.URI),
			slog.String("error", err.Error()))
		return err
	}
	defer client.Close(ctx)
	logger.Info("connected to neo4j",
		slog.String("uri", cfg.Neo4j.URI),
		slog.String("database", cfg.Neo4j.Database))

	if err := fn(ctx, &runEnv{cfg: cfg, plan: plan, logger: logger, graph: client}); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
