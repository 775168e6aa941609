package parser

import (
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// LocateTable returns the first table with a cell containing marker,
// compared case-insensitively. It returns ErrTableNotFound when no table
// matches.
func LocateTable(tables []models.Table, marker string) (models.Table, error) {
	want := fold(marker)
	for _, t := range tables {
		for _, row := range t.Rows {
			for _, cell := range row {
				if containsFolded(cell, want) {
					return t, nil
				}
			}
		}
	}
	return models.Table{}, ErrTableNotFound
}
