// Package phasor extracts phase angles from HTML reports and builds phasor
// diagram descriptions.
package phasor

import (
	"log/slog"

	"github.com/ukaji3/phasor-go/pkg/phasor/diagram"
	"github.com/ukaji3/phasor-go/pkg/phasor/parser"
)

// DefaultMaxBytes is the default document size limit (32 MB).
const DefaultMaxBytes = 32 << 20

// Options configures extraction behavior.
type Options struct {
	// Policy selects how non-finite angles are handled (default: fail).
	Policy diagram.InvalidAnglePolicy
	// PreviewRows is the number of table rows in the preview.
	// Zero selects parser.PreviewRows; negative disables the preview.
	PreviewRows int
	// MaxBytes limits the document size (default: DefaultMaxBytes).
	MaxBytes int64
	// Logger for debug/warning messages (default: slog.Default()).
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Policy:      diagram.PolicyFail,
		PreviewRows: parser.PreviewRows,
		MaxBytes:    DefaultMaxBytes,
	}
}

func (o *Options) defaults() {
	if o.Policy == "" {
		o.Policy = diagram.PolicyFail
	}
	if o.PreviewRows == 0 {
		o.PreviewRows = parser.PreviewRows
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}
