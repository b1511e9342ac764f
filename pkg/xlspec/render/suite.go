package render

import (
	"strings"
)

// SuiteParams holds the inputs of a full test-suite file.
type SuiteParams struct {
	// Name is the suite name (the sheet name).
	Name string
	// Message is the parameterized-test description format, e.g. "testing %o".
	Message string
	// Async selects the asynchronous calling convention.
	Async bool
	// HasContext adds the context parameter between input and output.
	HasContext bool
	// Declaration is the rendered data-table declaration.
	Declaration string
}

// Suite renders a describe/it.each test suite around a data table.
func Suite(p SuiteParams) string {
	params := []string{"input"}
	if p.HasContext {
		params = append(params, "context")
	}
	args := strings.Join(params, ", ")
	params = append(params, "output")

	callback := "(" + strings.Join(params, ", ") + ") =>"
	call := "subject(" + args + ")"
	if p.Async {
		callback = "async " + callback
		call = "await " + call
	}

	var b strings.Builder
	b.WriteString(p.Declaration)
	b.WriteString("\n\n")
	b.WriteString("describe(" + quoteString(p.Name) + ", () => {\n")
	b.WriteString("  const subject = {} as any; // IMPLEMENT ME\n\n")
	b.WriteString("  it.each(" + DataTableName + ")(" + quoteString(p.Message) + ", " + callback + " {\n")
	b.WriteString("    const actual = " + call + ";\n")
	b.WriteString("    expect(actual).toBe(output);\n\n")
	b.WriteString("    // IMPLEMENT ME\n")
	b.WriteString("  });\n")
	b.WriteString("});\n")
	return b.String()
}
