package store

// Table is the rectangular, header-first shape handed to tabular storage.
// Every row must have exactly len(Header) cells.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}
