package xlspec

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSchema indicates a sheet lacks a required reserved column.
var ErrSchema = errors.New("schema error")

// ErrIO indicates an output directory or file could not be read or written.
var ErrIO = errors.New("io failure")

// ErrPatchTargetNotFound indicates an existing output file has no data table to replace.
var ErrPatchTargetNotFound = errors.New("patch target not found")

// Processing stages reported by SheetError.
const (
	StageRead      = "read"
	StageNormalize = "normalize"
	StagePatch     = "patch"
	StageWrite     = "write"
)

// SheetError represents a failure confined to one sheet.
type SheetError struct {
	SheetName string
	Stage     string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
