package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "crmgraph",
	Short: "Load CRM CSV exports into Neo4j",
	Long: `crmgraph is a one-shot loader for CRM entity exports. It reads CSV
files from a data directory (optionally fetched from S3 first), shapes them
per a declarative YAML plan, and upserts them into Neo4j as nodes and
relationships. All writes are MERGE-based, so re-running a load is safe.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal-driven cancellation.
func Execute(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ingest_config.yaml", "path to the ingest plan")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding the CSV exports")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with connection settings")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(validateCmd)
}
