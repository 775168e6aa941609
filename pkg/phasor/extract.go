package phasor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/phasor-go/pkg/phasor/diagram"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"github.com/ukaji3/phasor-go/pkg/phasor/parser"
)

// ExtractFile extracts the phasor diagram from an HTML file.
func ExtractFile(path string, opts Options) (*models.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return Extract(f, filepath.Base(path), opts)
}

// Extract reads an HTML document fully and builds its phasor diagram.
//
// The returned report is never nil. When err is non-nil the report holds
// whatever was learned before the failing stage (table count, preview) and
// the error kind and message to show the user.
func Extract(r io.Reader, source string, opts Options) (*models.Report, error) {
	opts.defaults()
	logger := opts.Logger.With("source", source)
	report := &models.Report{Source: source, TableIndex: -1}

	fail := func(stage string, err error) (*models.Report, error) {
		report.ErrorKind = ErrorKind(err)
		report.Error = err.Error()
		logger.Warn("extraction failed", "stage", stage, "kind", report.ErrorKind, "error", err)
		return report, NewExtractionError(source, stage, err)
	}

	data, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return fail("read", &DocumentParseError{Err: err})
	}
	if int64(len(data)) > opts.MaxBytes {
		return fail("read", &DocumentParseError{Err: ErrDocumentTooLarge})
	}

	tables, err := parser.ParseTables(bytes.NewReader(data))
	if err != nil {
		return fail("tables", &DocumentParseError{Err: err})
	}
	report.TableCount = len(tables)
	logger.Debug("tables parsed", "count", len(tables), "bytes", len(data))

	table, err := parser.LocateTable(tables, parser.VoltageMarker)
	if err != nil {
		return fail("locate", err)
	}
	report.TableIndex = table.Index
	report.Table = &table
	logger.Debug("table located", "index", table.Index, "rows", len(table.Rows))

	if opts.PreviewRows > 0 {
		preview, err := parser.Preview(table, opts.PreviewRows)
		if err != nil {
			logger.Warn("table preview failed", "error", err)
		} else {
			report.Preview = preview
		}
	}

	pairs, err := parser.ExtractAngles(table)
	if err != nil {
		return fail("rows", err)
	}

	spec, err := diagram.Build(pairs, opts.Policy)
	if err != nil {
		return fail("geometry", err)
	}
	for _, w := range spec.Warnings {
		logger.Warn("phase left out of diagram", "reason", w)
	}
	logger.Debug("diagram built", "arcs", len(spec.Arcs))

	report.Diagram = &spec
	return report, nil
}
