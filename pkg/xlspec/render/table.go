package render

import (
	"strings"

	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

// DataTableName is the identifier of the generated data table.
const DataTableName = "data"

// Tuple renders one datum as [input, output] or [input, context, output].
// Input and output are emitted verbatim.
func Tuple(d models.Datum) string {
	parts := []string{d.Input}
	if d.HasContext() {
		parts = append(parts, *d.Context)
	}
	parts = append(parts, d.Output)
	return "[" + strings.Join(parts, ", ") + "]"
}

// DataTable renders datums as an array literal of row-tuples.
func DataTable(datums []models.Datum) string {
	if len(datums) == 0 {
		return "[]"
	}

	tuples := make([]string, len(datums))
	for i, d := range datums {
		tuples[i] = Tuple(d)
	}
	return "[\n  " + strings.Join(tuples, ",\n  ") + "\n]"
}

// DataTableDeclaration renders the const declaration the patcher looks for.
func DataTableDeclaration(datums []models.Datum) string {
	return "const " + DataTableName + " = " + DataTable(datums) + ";"
}
