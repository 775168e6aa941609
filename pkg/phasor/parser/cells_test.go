package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseAngle(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"-120", -120},
		{"120.5", 120.5},
		{" 30 ", 30},
		{"45°", 45},
		{"−30", -30},
		{" -150 ", -150},
	}

	for _, tt := range tests {
		result, err := parseAngle(tt.input)
		require.NoError(t, err, "parseAngle(%q)", tt.input)
		assert.Equal(t, tt.expected, result, "parseAngle(%q)", tt.input)
	}
}

func TestParseAngleOutOfRange(t *testing.T) {
	tests := []struct {
		input string
		sign  int
	}{
		{"1e400", 1},
		{"-1e400", -1},
		{"−1e400°", -1},
	}

	for _, tt := range tests {
		result, err := parseAngle(tt.input)
		require.NoError(t, err, "parseAngle(%q)", tt.input)
		assert.True(t, math.IsInf(result, tt.sign), "parseAngle(%q) = %v", tt.input, result)
	}
}

func TestParseAngleInvalid(t *testing.T) {
	for _, input := range []string{"", "N/A", "12,5", "abc°"} {
		_, err := parseAngle(input)
		assert.Error(t, err, "parseAngle(%q)", input)
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		fragment string
		expected string
	}{
		{`<td>  Ángulo   de fase </td>`, "Ángulo de fase"},
		{`<td>-<b>30</b></td>`, "-30"},
		{`<td>line<br>break</td>`, "line break"},
		{`<td>value<script>ignored()</script></td>`, "value"},
	}

	for _, tt := range tests {
		doc, err := html.Parse(strings.NewReader("<table><tr>" + tt.fragment + "</tr></table>"))
		require.NoError(t, err)

		var nodes []*html.Node
		findTables(doc, &nodes)
		require.Len(t, nodes, 1)

		var trs []*html.Node
		findRows(nodes[0], &trs)
		require.Len(t, trs, 1)

		td := trs[0].FirstChild
		assert.Equal(t, tt.expected, cellText(td), "cellText(%s)", tt.fragment)
	}
}
