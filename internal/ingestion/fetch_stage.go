package ingestion

import (
	"context"
	"log/slog"

	"github.com/maraichr/crmgraph/internal/source"
	"github.com/maraichr/crmgraph/pkg/loaderr"
)

// FetchStage syncs the CSV drop from a bucket into the data directory. The
// pipeline includes it only when a bucket is configured; a local drop needs
// no fetch.
type FetchStage struct {
	fetcher *source.S3Fetcher
	prefix  string
	logger  *slog.Logger
}

func NewFetchStage(fetcher *source.S3Fetcher, prefix string, logger *slog.Logger) *FetchStage {
	return &FetchStage{fetcher: fetcher, prefix: prefix, logger: logger}
}

func (s *FetchStage) Name() string { return "fetch" }

func (s *FetchStage) Execute(ctx context.Context, rc *RunContext) error {
	files, err := s.fetcher.Sync(ctx, s.prefix, rc.DataDir)
	if err != nil {
		return loaderr.FetchFailed(s.fetcher.Bucket(), err)
	}
	s.logger.Info("fetched source files",
		slog.String("bucket", s.fetcher.Bucket()),
		slog.String("prefix", s.prefix),
		slog.String("dest", rc.DataDir),
		slog.Int("files", files))
	return nil
}
