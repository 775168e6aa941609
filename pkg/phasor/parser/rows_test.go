package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

func phasorTable(voltage, current []string) models.Table {
	return models.Table{Rows: [][]string{
		{"Parámetro", "A", "B", "C"},
		append([]string{"Ángulo de fase de voltaje"}, voltage...),
		append([]string{"Ángulo de fase de corriente"}, current...),
	}}
}

func TestExtractRow(t *testing.T) {
	table := phasorTable([]string{"0", "-120", "120"}, []string{"-30", "-150", "90"})

	v, err := ExtractRow(table, VoltageMarker)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, -120, 120}, v)

	i, err := ExtractRow(table, "ángulo de fase de CORRIENTE")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{-30, -150, 90}, i)
}

func TestExtractRowFirstMatchWins(t *testing.T) {
	table := models.Table{Rows: [][]string{
		{"Ángulo de fase de voltaje L-N", "1", "2", "3"},
		{"Ángulo de fase de voltaje L-L", "4", "5", "6"},
	}}

	v, err := ExtractRow(table, VoltageMarker)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, v)
}

func TestExtractRowOnlyFirstColumn(t *testing.T) {
	table := models.Table{Rows: [][]string{
		{"Notas", "Ángulo de fase de voltaje", "x", "y"},
	}}

	_, err := ExtractRow(table, VoltageMarker)
	var rowErr *RowNotFoundError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, VoltageMarker, rowErr.Marker)
	assert.True(t, errors.Is(err, ErrRowNotFound))
}

func TestExtractRowParseError(t *testing.T) {
	table := phasorTable([]string{"0", "N/A", "120"}, []string{"-30", "-150", "90"})

	_, err := ExtractRow(table, VoltageMarker)
	var cellErr *CellParseError
	require.True(t, errors.As(err, &cellErr))
	assert.Equal(t, models.PhaseB, cellErr.Phase)
	assert.Equal(t, 1, cellErr.Row)
	assert.Equal(t, 2, cellErr.Column)
	assert.Equal(t, "N/A", cellErr.Value)
	assert.True(t, errors.Is(err, ErrCellParse))
	assert.Contains(t, err.Error(), `"N/A"`)
}

func TestExtractRowMissingCell(t *testing.T) {
	table := phasorTable([]string{"0", "-120"}, []string{"-30", "-150", "90"})

	_, err := ExtractRow(table, VoltageMarker)
	var cellErr *CellParseError
	require.True(t, errors.As(err, &cellErr))
	assert.Equal(t, models.PhaseC, cellErr.Phase)
	assert.True(t, errors.Is(err, errMissingCell))
}

func TestExtractAngles(t *testing.T) {
	table := phasorTable([]string{"0", "-120", "120"}, []string{"-30", "-150", "90"})

	pairs, err := ExtractAngles(table)
	require.NoError(t, err)
	assert.Equal(t, []models.PhasePair{
		{Phase: models.PhaseA, Voltage: 0, Current: -30},
		{Phase: models.PhaseB, Voltage: -120, Current: -150},
		{Phase: models.PhaseC, Voltage: 120, Current: 90},
	}, pairs)
}

func TestExtractAnglesMissingCurrent(t *testing.T) {
	table := models.Table{Rows: [][]string{
		{"Ángulo de fase de voltaje", "0", "-120", "120"},
	}}

	_, err := ExtractAngles(table)
	var rowErr *RowNotFoundError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, CurrentMarker, rowErr.Marker)
}
