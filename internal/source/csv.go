// Package source reads load records out of the CSV drop directory and, when
// a bucket is configured, fetches that directory from S3 first.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maraichr/crmgraph/internal/convert"
	"github.com/maraichr/crmgraph/pkg/loaderr"
	"github.com/maraichr/crmgraph/pkg/models"
)

// ReadRecords loads one CSV file and shapes every data row into a Record per
// the destination-field to source-column mapping. Rows keep file order. A
// mapped column absent from the header, or absent from a short row, yields
// nil for that field, the same as an empty cell.
func ReadRecords(path string, fieldMappings map[string]string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, loaderr.SourceFileNotFound(path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := newReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	cols := columnIndex(header)

	// Iterate fields in a stable order so record construction is
	// deterministic regardless of Go map iteration.
	fields := make([]string, 0, len(fieldMappings))
	for field := range fieldMappings {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var records []models.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %s: %w", path, err)
		}
		record := make(models.Record, len(fields))
		for _, field := range fields {
			record[field] = convert.Convert(field, cell(row, cols, fieldMappings[field]))
		}
		records = append(records, record)
	}
	return records, nil
}

// ReadColumns extracts the named columns from every data row of a CSV file,
// preserving row order. A column missing from the header yields "" in its
// position for every row. Used for the derived entities that need raw text
// before any conversion.
func ReadColumns(path string, columns ...string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, loaderr.SourceFileNotFound(path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := newReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	cols := columnIndex(header)

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %s: %w", path, err)
		}
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = cell(row, cols, col)
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// newReader builds a CSV reader that tolerates rows with a different field
// count than the header; missing cells read as empty.
func newReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, column string) string {
	idx, ok := cols[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
