// Package output serializes phasor reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// ToJSON serializes a report to JSON.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// DiagramToJSON serializes a diagram description to JSON.
func DiagramToJSON(spec *models.DiagramSpec, pretty bool) ([]byte, error) {
	return marshal(spec, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
