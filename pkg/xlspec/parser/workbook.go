// Package parser reads workbooks and normalizes sheet rows into records.
package parser

import (
	"github.com/xuri/excelize/v2"
)

// Workbook is the read-only view of a spreadsheet the generator needs.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns the displayed cell text of every row, header first.
	Rows(sheetName string) ([][]string, error)
}

// ExcelizeWorkbook adapts an excelize file to Workbook.
type ExcelizeWorkbook struct {
	f *excelize.File
}

// OpenWorkbook opens an xlsx file.
func OpenWorkbook(path string) (*ExcelizeWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelizeWorkbook{f: f}, nil
}

// NewWorkbook wraps an already opened excelize file.
func NewWorkbook(f *excelize.File) *ExcelizeWorkbook {
	return &ExcelizeWorkbook{f: f}
}

// SheetNames returns sheet names in workbook order.
func (w *ExcelizeWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Rows returns the rows of a sheet. Rows shorter than the widest row are
// not padded; use Cell to read past the end of a row.
func (w *ExcelizeWorkbook) Rows(sheetName string) ([][]string, error) {
	return w.f.GetRows(sheetName)
}

// Close closes the underlying file.
func (w *ExcelizeWorkbook) Close() error {
	return w.f.Close()
}

// Cell returns the cell at colIdx, or "" when the row is shorter.
func Cell(row []string, colIdx int) string {
	if colIdx < 0 || colIdx >= len(row) {
		return ""
	}
	return row[colIdx]
}
