package output

import (
	"errors"
	"io"
	"strconv"

	"github.com/ukaji3/phasor-go/pkg/phasor/geometry"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetAngles = "Angles"
	SheetArcs   = "Arcs"
	SheetTable  = "Table"
)

// ErrNoDiagram indicates the report has no diagram to export.
var ErrNoDiagram = errors.New("report has no diagram")

var (
	anglesHeader = []interface{}{"Phase", "Voltage (°)", "Current (°)", "Voltage normalized (°)", "Current normalized (°)", "Difference (°)"}
	arcsHeader   = []interface{}{"Phase", "Start (°)", "End (°)", "Signed difference (°)", "Sweep extended", "Label angle (°)", "Label rotation (°)", "Voltage leads"}
)

// ToXLSX builds a workbook with the phase angles, the difference arcs and
// the located table of a report. The caller must close the returned file.
func ToXLSX(report *models.Report) (*excelize.File, error) {
	if report == nil || report.Diagram == nil {
		return nil, ErrNoDiagram
	}
	spec := report.Diagram

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetAngles); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetArcs, SheetTable} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	angles := [][]interface{}{anglesHeader}
	for _, p := range spec.Pairs {
		row := []interface{}{string(p.Phase), p.Voltage, p.Current}
		if geometry.IsFinite(p.Voltage) && geometry.IsFinite(p.Current) {
			v, i := geometry.Normalize(p.Voltage), geometry.Normalize(p.Current)
			row = append(row, v, i, geometry.SignedDiff(v, i))
		} else {
			row = []interface{}{string(p.Phase), finiteOrText(p.Voltage), finiteOrText(p.Current), "", "", ""}
		}
		angles = append(angles, row)
	}

	arcs := [][]interface{}{arcsHeader}
	for _, a := range spec.Arcs {
		arcs = append(arcs, []interface{}{
			string(a.Phase),
			geometry.Degrees(a.Start),
			geometry.Degrees(a.End),
			a.SignedDiff,
			a.SweepExtended,
			geometry.Degrees(a.Mid),
			a.LabelRotation,
			a.Leading,
		})
	}

	var table [][]interface{}
	if report.Table != nil {
		for _, r := range report.Table.Rows {
			row := make([]interface{}, len(r))
			for i, cell := range r {
				row[i] = cell
			}
			table = append(table, row)
		}
	}

	for _, sheet := range []struct {
		name   string
		rows   [][]interface{}
		header bool
	}{
		{SheetAngles, angles, true},
		{SheetArcs, arcs, true},
		{SheetTable, table, false},
	} {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			f.Close()
			return nil, err
		}
		if sheet.header {
			if err := f.SetRowStyle(sheet.name, 1, 1, bold); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

// WriteXLSX writes the report workbook to w.
func WriteXLSX(w io.Writer, report *models.Report) error {
	f, err := ToXLSX(report)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// SaveXLSX writes the report workbook to path.
func SaveXLSX(path string, report *models.Report) error {
	f, err := ToXLSX(report)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

// finiteOrText keeps NaN and infinities out of numeric cells.
func finiteOrText(v float64) interface{} {
	if geometry.IsFinite(v) {
		return v
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
