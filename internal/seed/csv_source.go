// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/gustline/internal/logging"
	"github.com/tomtom215/gustline/internal/models"
	"github.com/tomtom215/gustline/internal/validation"
)

// Column names in the turbine exports.
const (
	colTimestamp = "Dat/Zeit"
	colPower     = "Leistung"
	colWind      = "Wind"

	timestampLayout = "02.01.2006, 15:04"
)

// FlushFunc persists one batch of telemetry documents.
type FlushFunc func(ctx context.Context, batch []any) (int, error)

// CSVSource reads turbine telemetry from a directory of semicolon-separated
// exports, one file per turbine.
type CSVSource struct {
	dir       string
	batchSize int
}

// NewCSVSource creates a CSV source. batchSize is the number of documents
// handed to each flush.
func NewCSVSource(dir string, batchSize int) *CSVSource {
	if batchSize < 1 {
		batchSize = 1000
	}
	return &CSVSource{dir: dir, batchSize: batchSize}
}

// Files returns the CSV files in the source directory in lexical order.
func (s *CSVSource) Files() ([]string, error) {
	info, err := os.Stat(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: directory %s does not exist", ErrSeedSourceNotFound, s.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSeedSourceNotFound, s.dir)
	}

	files, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no CSV files in %s", ErrSeedSourceNotFound, s.dir)
	}
	slices.Sort(files)
	return files, nil
}

// Load parses every CSV file and hands documents to flush in batches. A
// file that cannot be opened or has no usable header is skipped with a
// warning; a flush failure aborts the load. Batches flushed before the
// failure stay inserted and Result.Inserted counts them.
func (s *CSVSource) Load(ctx context.Context, flush FlushFunc) (Result, error) {
	var res Result

	files, err := s.Files()
	if err != nil {
		return res, err
	}

	batch := make([]any, 0, s.batchSize)
	flushBatch := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := flush(ctx, batch)
		res.Inserted += n
		batch = batch[:0]
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		turbineID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		log := logging.With().Str("file", filepath.Base(path)).Str("turbine_id", turbineID).Logger()

		if verr := validation.ValidateStruct(&struct {
			TurbineID string `json:"turbine_id" validate:"turbine_id"`
		}{turbineID}); verr != nil {
			log.Warn().Str("reason", verr.Error()).Msg("Skipping file with unusable name")
			res.FilesSkipped++
			continue
		}

		f, err := os.Open(path) //nolint:gosec // path comes from Glob on the configured directory
		if err != nil {
			log.Warn().Err(err).Msg("Skipping unreadable file")
			res.FilesSkipped++
			continue
		}

		rows, skipped, err := parseFile(f, turbineID, func(p models.TimeSeriesPoint) error {
			batch = append(batch, p)
			if len(batch) >= s.batchSize {
				return flushBatch()
			}
			return nil
		})
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close file")
		}
		res.Skipped += skipped

		var perr *headerError
		switch {
		case errors.As(err, &perr):
			log.Warn().Err(err).Msg("Skipping file with unusable header")
			res.FilesSkipped++
			continue
		case err != nil:
			logPartialLoad(res)
			return res, err
		}

		res.FilesProcessed++
		log.Info().Int("rows", rows).Int("skipped", skipped).Msg("Processed telemetry file")
	}

	if err := flushBatch(); err != nil {
		logPartialLoad(res)
		return res, err
	}
	return res, nil
}

// logPartialLoad warns when an aborted load left documents behind. The
// collection is no longer empty, so later startups will not seed it again
// until it is dropped.
func logPartialLoad(res Result) {
	if res.Inserted == 0 {
		return
	}
	logging.Error().
		Int("inserted", res.Inserted).
		Msg("Telemetry seeding aborted after a partial insert; drop the collection to re-seed")
}

// headerError marks a file whose header lacks a required column.
type headerError struct {
	column string
}

func (e *headerError) Error() string {
	return fmt.Sprintf("missing column %q", e.column)
}

// parseFile reads one export. The first line names the columns (with
// padding). Exports usually repeat header metadata (units) on the second
// line; that line is skipped only when its timestamp column is not a
// timestamp. Each data row is passed to emit; an emit error aborts parsing.
func parseFile(r io.Reader, turbineID string, emit func(models.TimeSeriesPoint) error) (rows, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, 0, &headerError{column: colTimestamp}
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range []string{colTimestamp, colPower, colWind} {
		if _, ok := index[col]; !ok {
			return 0, 0, &headerError{column: col}
		}
	}

	firstRow := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, skipped, nil
		}

		unitRow := firstRow && (err != nil || !isTimestamp(record, index))
		firstRow = false
		if unitRow {
			var pe *csv.ParseError
			if err != nil && !errors.As(err, &pe) {
				return 0, 0, fmt.Errorf("failed to read header: %w", err)
			}
			logging.Debug().Str("turbine_id", turbineID).Msg("Skipping header metadata row")
			continue
		}

		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				skipped++
				logging.Warn().Str("turbine_id", turbineID).Int("line", pe.Line).Err(err).Msg("Skipping malformed row")
				continue
			}
			return rows, skipped, fmt.Errorf("failed to read row: %w", err)
		}

		point, err := parseRow(record, index, turbineID)
		if err != nil {
			skipped++
			line, _ := reader.FieldPos(0)
			logging.Warn().Str("turbine_id", turbineID).Int("line", line).Err(err).Msg("Skipping malformed row")
			continue
		}

		if err := emit(point); err != nil {
			return rows, skipped, err
		}
		rows++
	}
}

// isTimestamp reports whether the row's timestamp column holds a timestamp.
func isTimestamp(record []string, index map[string]int) bool {
	i := index[colTimestamp]
	if i >= len(record) {
		return false
	}
	_, err := time.ParseInLocation(timestampLayout, strings.TrimSpace(record[i]), time.UTC)
	return err == nil
}

// parseRow converts one data row. Power defaults to 0 when blank; a blank
// wind speed is stored as null.
func parseRow(record []string, index map[string]int, turbineID string) (models.TimeSeriesPoint, error) {
	field := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	ts, err := time.ParseInLocation(timestampLayout, field(colTimestamp), time.UTC)
	if err != nil {
		return models.TimeSeriesPoint{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	power := 0.0
	if raw := field(colPower); raw != "" {
		power, err = parseDecimal(raw)
		if err != nil {
			return models.TimeSeriesPoint{}, fmt.Errorf("invalid power %q: %w", raw, err)
		}
	}

	var wind *float64
	if raw := field(colWind); raw != "" {
		v, err := parseDecimal(raw)
		if err != nil {
			return models.TimeSeriesPoint{}, fmt.Errorf("invalid wind speed %q: %w", raw, err)
		}
		wind = &v
	}

	return models.TimeSeriesPoint{
		Timestamp: ts,
		Power:     power,
		WindSpeed: wind,
		Metadata:  models.TurbineMetadata{TurbineID: turbineID},
	}, nil
}

// parseDecimal accepts a decimal comma.
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}
