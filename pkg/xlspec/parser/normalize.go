package parser

import (
	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

// Normalize converts the rows of a default sheet (header first) into records.
// A sheet with a valid header and no data rows yields no records and no error.
//
// The first row is always the header and is never read as data. Dropping the
// first row that passes the empty-cell check instead would discard a real data
// row whenever the header itself has a blank cell before the comment column.
func Normalize(sheetName string, rows [][]string) (*models.SheetData, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	h, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}

	data := &models.SheetData{
		Name:        sheetName,
		ContextKeys: h.ContextKeys,
	}
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row number
		rec, ok := h.Record(rows[rowIdx], rowNum)
		if !ok {
			data.Discarded = append(data.Discarded, rowNum)
			continue
		}
		data.Records = append(data.Records, rec)
	}

	return data, nil
}

// NormalizeFixtures converts the rows of the mocked filesystem sheet into
// (path, contents) entries. Only the first two columns are read. A leading
// header row whose first cell is "file" or "path" is skipped, as are rows
// without a path. A repeated path keeps its first position and takes the
// contents of its last row.
func NormalizeFixtures(rows [][]string) []models.FixtureEntry {
	var entries []models.FixtureEntry
	seen := make(map[string]int)
	for rowIdx, row := range rows {
		path := Cell(row, 0)
		if path == "" {
			continue
		}
		if rowIdx == 0 && isFixtureHeader(path) {
			continue
		}
		if pos, ok := seen[path]; ok {
			entries[pos].Contents = Cell(row, 1)
			continue
		}
		seen[path] = len(entries)
		entries = append(entries, models.FixtureEntry{
			Path:     path,
			Contents: Cell(row, 1),
		})
	}
	return entries
}

func isFixtureHeader(cell string) bool {
	switch models.NormalizeName(cell) {
	case "file", "path":
		return true
	}
	return false
}
