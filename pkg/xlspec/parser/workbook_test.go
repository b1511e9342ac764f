package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestOpenWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Parse"))
	_, err := f.NewSheet("Other")
	require.NoError(t, err)

	f.SetCellValue("Parse", "A1", "Input")
	f.SetCellValue("Parse", "B1", "Output")
	f.SetCellValue("Parse", "C1", "Comment")
	f.SetCellValue("Parse", "A2", `"a"`)
	f.SetCellValue("Parse", "B2", 42)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	wb, err := OpenWorkbook(tmpFile)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Parse", "Other"}, wb.SheetNames())

	rows, err := wb.Rows("Parse")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Input", "Output", "Comment"}, rows[0])
	assert.Equal(t, []string{`"a"`, "42"}, rows[1])

	data, err := Normalize("Parse", rows)
	require.NoError(t, err)
	require.Len(t, data.Records, 1)
	assert.Equal(t, "42", data.Records[0].Output)
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}
	tests := []struct {
		idx      int
		expected string
	}{
		{0, "a"},
		{1, "b"},
		{2, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := Cell(row, tt.idx); got != tt.expected {
			t.Errorf("Cell(%v, %d) = %q, expected %q", row, tt.idx, got, tt.expected)
		}
	}
}
