package models

// SheetKind selects the rendering pipeline of a sheet.
type SheetKind int

const (
	// DefaultSheet renders input/output rows into a parameterized test suite.
	DefaultSheet SheetKind = iota
	// MockedFsSheet renders (file, contents) rows into a mocked filesystem map.
	MockedFsSheet
)

// MockedFsSheetName is the lowercased name of the mocked filesystem sheet.
const MockedFsSheetName = "mockedfs"

// String returns the kind label used in logs.
func (k SheetKind) String() string {
	switch k {
	case MockedFsSheet:
		return "mockedfs"
	default:
		return "default"
	}
}

// KindOf returns the pipeline for a sheet name. Matching is case-insensitive.
func KindOf(sheetName string) SheetKind {
	switch NormalizeName(sheetName) {
	case MockedFsSheetName:
		return MockedFsSheet
	default:
		return DefaultSheet
	}
}

// FixtureEntry represents one row of the mocked filesystem sheet.
type FixtureEntry struct {
	// Path is the mocked file path.
	Path string
	// Contents is the mocked file contents.
	Contents string
}

// SheetData represents the normalized content of a default sheet.
type SheetData struct {
	// Name is the sheet name as it appears in the workbook.
	Name string
	// ContextKeys are the non-reserved column keys in column order.
	ContextKeys []string
	// Records are the valid data rows in sheet order.
	Records []Record
	// Discarded lists 1-based row numbers dropped for an empty cell before the comment column.
	Discarded []int
}

// HasContext reports whether the sheet renders 3-tuples.
func (s SheetData) HasContext() bool {
	return len(s.ContextKeys) > 0
}
