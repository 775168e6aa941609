package models

// Report is the user-facing result of processing one document.
type Report struct {
	// ID identifies the report (set by the server).
	ID string `json:"id,omitempty"`
	// Source is the document name (no path).
	Source string `json:"source"`
	// TableCount is the number of tables found in the document.
	TableCount int `json:"table_count"`
	// TableIndex is the index of the located table, -1 when none.
	TableIndex int `json:"table_index"`
	// Table is the located table.
	Table *Table `json:"table,omitempty"`
	// Preview is a markdown rendition of the first rows of the located table.
	Preview string `json:"preview,omitempty"`
	// Diagram is nil when processing failed.
	Diagram *DiagramSpec `json:"diagram,omitempty"`
	// ErrorKind names the error category when processing failed.
	ErrorKind string `json:"error_kind,omitempty"`
	// Error is the descriptive error text when processing failed.
	Error string `json:"error,omitempty"`
}

// Failed reports whether processing stopped on an error.
func (r *Report) Failed() bool {
	return r.ErrorKind != ""
}

// Message returns the one-line error message shown to users.
func (r *Report) Message() string {
	if !r.Failed() {
		return ""
	}
	return r.ErrorKind + ": " + r.Error
}
