package parser

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates the header lacks a required reserved column.
var ErrMissingColumn = errors.New("missing required column")

// SchemaError reports which required column is missing from a header.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}
