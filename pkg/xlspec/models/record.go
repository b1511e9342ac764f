// Package models defines data structures for test scaffolding generation.
package models

// Field represents one named cell value of a record.
type Field struct {
	// Key is the lowercased column key.
	Key string
	// Value is the cell text as read from the sheet.
	Value string
}

// Record represents one valid data row of a sheet.
type Record struct {
	// Row is the 1-based row number in the sheet.
	Row int
	// Input is the raw input expression.
	Input string
	// Output is the raw expected-output expression.
	Output string
	// Comment is the optional comment cell.
	Comment string
	// Implemented is the optional implemented marker, empty if the column is absent.
	Implemented string
	// Context holds the non-reserved columns in column order.
	Context []Field
}

// Datum represents one rendered row-tuple of a data table.
type Datum struct {
	// Input is emitted verbatim.
	Input string
	// Context is the serialized context object (nil if the sheet has no context columns).
	Context *string
	// Output is emitted verbatim.
	Output string
}

// HasContext reports whether the datum renders as a 3-tuple.
func (d Datum) HasContext() bool {
	return d.Context != nil
}
