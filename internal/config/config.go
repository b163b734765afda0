// Package config carries process configuration: database credentials and
// pipeline tuning from the environment, with optional .env file support.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/maraichr/crmgraph/pkg/loaderr"
)

type Config struct {
	Neo4j Neo4jConfig
	S3    S3Config

	// BatchSize caps how many records one parameterized write carries.
	BatchSize int `env:"CRM_BATCH_SIZE" envDefault:"1000"`
	// LogPath is the persistent log file, written alongside stdout.
	LogPath string `env:"CRM_LOG_PATH" envDefault:"ingest.log"`
}

// Neo4jConfig holds the database connection settings. URI, username and
// password have no defaults; a run cannot start without them.
type Neo4jConfig struct {
	URI      string `env:"NEO4J_URI"`
	Username string `env:"NEO4J_USERNAME"`
	Password string `env:"NEO4J_PASSWORD"`
	Database string `env:"NEO4J_DATABASE" envDefault:"neo4j"`
}

// S3Config enables the optional fetch of the data directory from a bucket
// before loading. The fetch stage runs only when Bucket is set.
type S3Config struct {
	Bucket   string `env:"CRM_S3_BUCKET"`
	Prefix   string `env:"CRM_S3_PREFIX"`
	Region   string `env:"CRM_S3_REGION" envDefault:"us-east-1"`
	Endpoint string `env:"CRM_S3_ENDPOINT"` // for MinIO/LocalStack compatibility
}

// Load reads the named .env files (missing ones are fine, the environment
// may already carry everything) and parses the environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	var missing []string
	if cfg.Neo4j.URI == "" {
		missing = append(missing, "NEO4J_URI")
	}
	if cfg.Neo4j.Username == "" {
		missing = append(missing, "NEO4J_USERNAME")
	}
	if cfg.Neo4j.Password == "" {
		missing = append(missing, "NEO4J_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, loaderr.MissingCredentials(missing)
	}

	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("CRM_BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	return cfg, nil
}
