package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// ErrNoTables indicates the document contains no table with at least one row.
var ErrNoTables = errors.New("no tables found in document")

// ErrTableNotFound indicates no table contains the requested marker.
var ErrTableNotFound = errors.New("relevant table not found")

// ErrRowNotFound indicates no row of the located table starts with the marker.
var ErrRowNotFound = errors.New("row not found")

// ErrCellParse indicates a phase cell does not hold a number.
var ErrCellParse = errors.New("invalid phase cell")

var errMissingCell = errors.New("missing cell")

// RowNotFoundError names the row marker that could not be matched.
type RowNotFoundError struct {
	Marker string
}

func (e *RowNotFoundError) Error() string {
	return fmt.Sprintf("row %q not found", e.Marker)
}

func (e *RowNotFoundError) Unwrap() error {
	return ErrRowNotFound
}

// CellParseError identifies a phase cell that could not be parsed.
// Row and Column are 0-based table coordinates.
type CellParseError struct {
	Marker string
	Row    int
	Column int
	Phase  models.Phase
	Value  string
	Err    error
}

func (e *CellParseError) Error() string {
	return fmt.Sprintf("row %q phase %s (row %d, column %d): cannot parse %q as a number: %v",
		e.Marker, e.Phase, e.Row+1, e.Column+1, e.Value, e.Err)
}

func (e *CellParseError) Unwrap() []error {
	return []error{ErrCellParse, e.Err}
}
