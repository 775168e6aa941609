// Package models defines data structures for phasor diagram extraction.
package models

// Table represents one HTML table as rows of cell text.
type Table struct {
	// Index is the 0-based position among the non-empty tables of the
	// document, in document order. Tables without rows are not counted.
	Index int `json:"index"`
	// Rows contains the cell text of each row, colspan/rowspan expanded.
	Rows [][]string `json:"rows"`
	// HTML is the rendered outer HTML of the table element.
	HTML string `json:"-"`
}

