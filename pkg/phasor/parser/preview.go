package parser

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// PreviewRows is the default number of body rows shown in a preview.
const PreviewRows = 12

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// Preview renders the first maxRows rows of a table as markdown.
func Preview(t models.Table, maxRows int) (string, error) {
	md, err := mdConverter.ConvertString(t.HTML)
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimSpace(md), "\n")
	// header line + separator line + body rows
	if limit := maxRows + 2; maxRows > 0 && len(lines) > limit {
		lines = append(lines[:limit], "…")
	}
	return strings.Join(lines, "\n"), nil
}
