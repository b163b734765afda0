package ingestion

import (
	"context"
	"log/slog"

	"github.com/maraichr/crmgraph/internal/graph"
	"github.com/maraichr/crmgraph/pkg/loaderr"
	"github.com/maraichr/crmgraph/pkg/models"
)

// chunkRecords partitions records into consecutive chunks of at most size,
// preserving order. No records means no chunks.
func chunkRecords(records []models.Record, size int) [][]models.Record {
	if len(records) == 0 {
		return nil
	}
	chunks := make([][]models.Record, 0, (len(records)+size-1)/size)
	for i := 0; i < len(records); i += size {
		end := min(i+size, len(records))
		chunks = append(chunks, records[i:end])
	}
	return chunks
}

// writeAll pushes records through g in chunks and stops at the first
// failure. Node loading uses this path: a failed chunk aborts the run.
func writeAll(ctx context.Context, g Graph, name, query string, records []models.Record, size int) (graph.WriteSummary, error) {
	var total graph.WriteSummary
	for i, chunk := range chunkRecords(records, size) {
		summary, err := g.Write(ctx, query, chunk)
		if err != nil {
			return total, loaderr.BatchWriteFailed(name, i, err)
		}
		total.Add(summary)
	}
	return total, nil
}

// writeTolerant is the relationship-loading variant: a failed chunk is
// logged and skipped, later chunks still go through. Returns how many
// records were actually written.
func writeTolerant(ctx context.Context, g Graph, logger *slog.Logger, name, query string, records []models.Record, size int) int {
	written := 0
	for i, chunk := range chunkRecords(records, size) {
		if _, err := g.Write(ctx, query, chunk); err != nil {
			logger.Error("relationship batch failed, skipping chunk",
				slog.String("type", name),
				slog.Int("chunk", i),
				slog.String("error", err.Error()))
			continue
		}
		written += len(chunk)
	}
	return written
}
