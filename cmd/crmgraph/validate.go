package main

import (
	"github.com/spf13/cobra"

	"github.com/maraichr/crmgraph/internal/ingestion"
	"github.com/maraichr/crmgraph/internal/mapping"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and validate the ingest plan without touching the database",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	plan, err := mapping.Load(configPath)
	if err != nil {
		return err
	}
	if err := ingestion.ValidatePlan(plan); err != nil {
		return err
	}
	cmd.Printf("plan ok: %d constraints, %d indexes, %d node types, %d relationship types\n",
		len(plan.Init.Constraints), len(plan.Init.Indexes),
		len(plan.Loading.Nodes), len(plan.Loading.Relationships))
	return nil
}
