package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

const generatedFile = `import { resolve } from "../src/resolver";

const data = [
  ["a]", {"k":"[v"}, 'b'],
  // ["commented]", "out"],
  /* ] */ [1, 2]
];

describe("Resolver", () => {
  const subject = resolve;

  it.each(data)("testing %o", async (input, context, output) => {
    expect(await subject(input, context)).toEqual(output);
  });
});
`

func TestFindDataTable(t *testing.T) {
	span, err := FindDataTable(generatedFile)
	require.NoError(t, err)

	found := generatedFile[span.Start:span.End]
	assert.True(t, len(found) > 0)
	assert.Equal(t, "const data = [", found[:len("const data = [")])
	assert.Equal(t, "];", found[len(found)-2:])
}

func TestPatchDataTable_PreservesSurroundingText(t *testing.T) {
	decl := DataTableDeclaration([]models.Datum{{Input: "1", Output: "2"}})

	patched, span, err := PatchDataTable(generatedFile, decl)
	require.NoError(t, err)

	assert.Equal(t, generatedFile[:span.Start], patched[:span.Start])
	assert.Equal(t, generatedFile[span.End:], patched[span.Start+len(decl):])
	assert.Equal(t, decl, patched[span.Start:span.Start+len(decl)])
}

func TestPatchDataTable_RoundTrip(t *testing.T) {
	first := Suite(SuiteParams{
		Name:        "Resolver",
		Message:     "testing %o",
		Async:       true,
		Declaration: DataTableDeclaration([]models.Datum{{Input: "1", Output: "2"}}),
	})
	edited := first + "\n// hand-written helper\nfunction helper() { return [1, 2]; }\n"

	decl := DataTableDeclaration([]models.Datum{{Input: "3", Output: "4"}, {Input: "5", Output: "6"}})
	patched, _, err := PatchDataTable(edited, decl)
	require.NoError(t, err)

	expected := Suite(SuiteParams{
		Name:        "Resolver",
		Message:     "testing %o",
		Async:       true,
		Declaration: decl,
	}) + "\n// hand-written helper\nfunction helper() { return [1, 2]; }\n"
	assert.Equal(t, expected, patched)
}

func TestPatchDataTable_WithoutSemicolon(t *testing.T) {
	patched, _, err := PatchDataTable("const data = [[1, 2]]\nrest", "const data = [];")
	require.NoError(t, err)
	assert.Equal(t, "const data = [];\nrest", patched)
}

func TestPatchDataTable_NotFound(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no declaration", "describe('x', () => {});"},
		{"other name", "const rows = [[1, 2]];"},
		{"unterminated", "const data = [[1, 2],\n"},
		{"unterminated string", "const data = [\"abc]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := PatchDataTable(tt.src, "const data = [];")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoDataTable))
		})
	}
}

func TestPatchDataTable_IgnoresOpeningInComments(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"line comment", "// regenerate: const data = [ rows ] via xlspec\n"},
		{"block comment", "/* const data = [\n  [0, 0]\n]; */\n"},
		{"string literal", "const hint = \"const data = [ ]\";\n"},
		{"template literal", "const hint = `const data = [${\"]\"}`;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.prefix + "const data = [\n  [1, 2]\n];\n"
			decl := DataTableDeclaration([]models.Datum{{Input: "3", Output: "4"}})

			patched, span, err := PatchDataTable(src, decl)
			require.NoError(t, err)
			assert.Equal(t, len(tt.prefix), span.Start)
			assert.Equal(t, tt.prefix+"const data = [\n  [3, 4]\n];\n", patched)
		})
	}
}

func TestFindDataTable_TemplateInterpolation(t *testing.T) {
	src := "const data = [\n  [`a${[1, 2].map((x) => `]${x}`).join(\"]\")}b`, 1]\n];\nafter"
	span, err := FindDataTable(src)
	require.NoError(t, err)
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, "\nafter", src[span.End:])
}
