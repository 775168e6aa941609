package phasor

import (
	"errors"
	"fmt"

	"github.com/ukaji3/phasor-go/pkg/phasor/geometry"
	"github.com/ukaji3/phasor-go/pkg/phasor/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDocumentTooLarge indicates the document exceeds Options.MaxBytes.
var ErrDocumentTooLarge = errors.New("document too large")

// Error kinds reported to users.
const (
	KindDocumentParse = "DocumentParseError"
	KindNotFound      = "NotFound"
	KindRowNotFound   = "RowNotFound"
	KindParse         = "ParseError"
	KindInvalidAngle  = "InvalidAngle"
	KindUnknown       = "Error"
)

// DocumentParseError indicates no table structure could be read from the
// document.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("cannot read tables from document: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Err
}

// ExtractionError represents an error during one stage of extraction.
type ExtractionError struct {
	Source string
	Stage  string // "read", "tables", "locate", "rows", "geometry"
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(source, stage string, err error) *ExtractionError {
	return &ExtractionError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}

// ErrorKind returns the user-facing category of an extraction error.
func ErrorKind(err error) string {
	var docErr *DocumentParseError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &docErr):
		return KindDocumentParse
	case errors.Is(err, parser.ErrTableNotFound):
		return KindNotFound
	case errors.Is(err, parser.ErrRowNotFound):
		return KindRowNotFound
	case errors.Is(err, parser.ErrCellParse):
		return KindParse
	case errors.Is(err, geometry.ErrInvalidAngle):
		return KindInvalidAngle
	default:
		return KindUnknown
	}
}
