// Package parser reads phasor report tables from HTML documents.
package parser

import (
	"bytes"
	"io"
	"strconv"

	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxSpan caps colspan/rowspan values taken from the document.
const maxSpan = 1000

// ParseTables parses an HTML document and returns every table with at least
// one row, in document order. Tables without rows are skipped and do not
// take an index. Nested tables are returned as separate tables after their
// parent.
func ParseTables(r io.Reader) ([]models.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var nodes []*html.Node
	findTables(doc, &nodes)

	tables := make([]models.Table, 0, len(nodes))
	for _, n := range nodes {
		rows := tableRows(n)
		if len(rows) == 0 {
			continue
		}

		var buf bytes.Buffer
		if err := html.Render(&buf, n); err != nil {
			return nil, err
		}

		tables = append(tables, models.Table{
			Index: len(tables),
			Rows:  rows,
			HTML:  buf.String(),
		})
	}

	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return tables, nil
}

// findTables collects table elements in pre-order.
func findTables(n *html.Node, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Table {
		*out = append(*out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findTables(c, out)
	}
}

// findRows collects the tr elements owned by a table, skipping nested tables.
func findRows(n *html.Node, out *[]*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Table:
			continue
		case atom.Tr:
			*out = append(*out, c)
		default:
			findRows(c, out)
		}
	}
}

// rowSpan is a cell carried down into following rows by rowspan.
type rowSpan struct {
	text string
	left int
}

// tableRows returns the cell text grid of a table with spans expanded.
func tableRows(table *html.Node) [][]string {
	var trs []*html.Node
	findRows(table, &trs)

	var rows [][]string
	carried := make(map[int]rowSpan)

	for _, tr := range trs {
		var row []string
		col := 0

		// Fill columns still occupied by cells from rows above.
		fillCarried := func() {
			for {
				s, ok := carried[col]
				if !ok {
					return
				}
				row = append(row, s.text)
				s.left--
				if s.left == 0 {
					delete(carried, col)
				} else {
					carried[col] = s
				}
				col++
			}
		}

		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
				continue
			}
			fillCarried()

			text := cellText(c)
			colspan := spanAttr(c, "colspan")
			rowspan := spanAttr(c, "rowspan")
			for k := 0; k < colspan; k++ {
				row = append(row, text)
				// A cell written over a carried column ends that rowspan.
				delete(carried, col)
				if rowspan > 1 {
					carried[col] = rowSpan{text: text, left: rowspan - 1}
				}
				col++
			}
		}
		fillCarried()

		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	return rows
}

// spanAttr reads a colspan/rowspan attribute, defaulting to 1.
func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		v, err := strconv.Atoi(a.Val)
		if err != nil || v < 1 {
			return 1
		}
		if v > maxSpan {
			return maxSpan
		}
		return v
	}
	return 1
}
