package render

import (
	"strings"

	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

// MockedFsExport is the exported binding of the mocked filesystem file.
const MockedFsExport = "mockedFs"

// FixtureMap renders entries as a path → contents object literal. Both sides
// are quote-trimmed before quoting.
func FixtureMap(entries []models.FixtureEntry) string {
	pairs := make([]string, len(entries))
	for i, e := range entries {
		pairs[i] = quoteString(TrimQuotes(e.Path)) + ": " + quoteString(TrimQuotes(e.Contents))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// FixtureFile renders the complete mocked filesystem module.
func FixtureFile(entries []models.FixtureEntry) string {
	return "export const " + MockedFsExport + ": Record<string, string> = " + FixtureMap(entries) + ";\n"
}
