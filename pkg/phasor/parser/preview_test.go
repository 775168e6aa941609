package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	tables, err := ParseTables(strings.NewReader(reportHTML))
	require.NoError(t, err)

	md, err := Preview(tables[1], PreviewRows)
	require.NoError(t, err)
	assert.Contains(t, md, "|")
	assert.Contains(t, md, "Ángulo de fase de voltaje")
	assert.Contains(t, md, "-150")
	assert.NotContains(t, md, "…")
}

func TestPreviewTruncates(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<table><thead><tr><th>Parámetro</th><th>A</th></tr></thead><tbody>")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "<tr><td>fila %d</td><td>%d</td></tr>", i, i)
	}
	sb.WriteString("</tbody></table>")

	tables, err := ParseTables(strings.NewReader(sb.String()))
	require.NoError(t, err)

	md, err := Preview(tables[0], PreviewRows)
	require.NoError(t, err)

	lines := strings.Split(md, "\n")
	assert.Len(t, lines, PreviewRows+3)
	assert.Equal(t, "…", lines[len(lines)-1])
	assert.Contains(t, md, "fila 0")
	assert.NotContains(t, md, "fila 19")
}
