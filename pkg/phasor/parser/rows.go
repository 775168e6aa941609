package parser

import (
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// Row labels of the phasor report.
const (
	VoltageMarker = "Ángulo de fase de voltaje"
	CurrentMarker = "Ángulo de fase de corriente"
)

// ExtractRow finds the first row whose label cell contains rowMarker and
// parses its three phase cells (columns 1 to 3, phases A, B, C).
func ExtractRow(table models.Table, rowMarker string) ([3]float64, error) {
	var values [3]float64

	want := fold(rowMarker)
	rowIdx := -1
	for i, row := range table.Rows {
		if len(row) > 0 && containsFolded(row[0], want) {
			rowIdx = i
			break
		}
	}
	if rowIdx < 0 {
		return values, &RowNotFoundError{Marker: rowMarker}
	}

	row := table.Rows[rowIdx]
	for i, phase := range models.Phases {
		col := i + 1
		if col >= len(row) {
			return values, &CellParseError{
				Marker: rowMarker, Row: rowIdx, Column: col, Phase: phase, Err: errMissingCell,
			}
		}
		v, err := parseAngle(row[col])
		if err != nil {
			return values, &CellParseError{
				Marker: rowMarker, Row: rowIdx, Column: col, Phase: phase, Value: row[col], Err: err,
			}
		}
		values[i] = v
	}

	return values, nil
}

// ExtractAngles reads the voltage and current rows of a located table and
// pairs them per phase.
func ExtractAngles(table models.Table) ([]models.PhasePair, error) {
	voltage, err := ExtractRow(table, VoltageMarker)
	if err != nil {
		return nil, err
	}
	current, err := ExtractRow(table, CurrentMarker)
	if err != nil {
		return nil, err
	}

	pairs := make([]models.PhasePair, 0, len(models.Phases))
	for i, phase := range models.Phases {
		pairs = append(pairs, models.PhasePair{
			Phase:   phase,
			Voltage: voltage[i],
			Current: current[i],
		})
	}
	return pairs, nil
}
