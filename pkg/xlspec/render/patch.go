package render

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoDataTable indicates the file has no recognizable data-table declaration.
var ErrNoDataTable = errors.New("no data table declaration found")

var dataTableOpen = regexp.MustCompile(`\bconst\s+` + DataTableName + `\s*=\s*\[`)

// Span is a half-open byte range [Start, End) of a source text.
type Span struct {
	Start int
	End   int
}

// FindDataTable locates the first data-table declaration in src: from the
// opening "const data = [" to its matching "]" and an optional trailing ";".
// Openings inside comments and string literals are ignored.
func FindDataTable(src string) (Span, error) {
	loc := findOpening(src)
	if loc == nil {
		return Span{}, ErrNoDataTable
	}

	closeIdx, err := matchBracket(src, loc[1]-1)
	if err != nil {
		return Span{}, err
	}
	end := closeIdx + 1
	if end < len(src) && src[end] == ';' {
		end++
	}
	return Span{Start: loc[0], End: end}, nil
}

// findOpening returns the first opening match that lies in code.
func findOpening(src string) []int {
	i := 0
	for _, m := range dataTableOpen.FindAllStringIndex(src, -1) {
		for i < m[0] {
			i = skipToken(src, i) + 1
		}
		if i == m[0] {
			return m
		}
	}
	return nil
}

// skipToken returns the last index of the string literal or comment starting
// at i, or i for any other byte.
func skipToken(src string, i int) int {
	switch src[i] {
	case '"', '\'', '`':
		return skipString(src, i)
	case '/':
		return skipComment(src, i)
	}
	return i
}

// matchBracket returns the index of the "]" closing the "[" at open.
// String literals and comments are skipped.
func matchBracket(src string, open int) (int, error) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch c := src[i]; c {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, nil
			}
		case '"', '\'', '`', '/':
			i = skipToken(src, i)
		}
	}
	return 0, fmt.Errorf("%w: unterminated array at offset %d", ErrNoDataTable, open)
}

// skipString returns the index of the quote closing the literal opened at i,
// or the last index of src when it never closes. Template literal
// interpolations are skipped as code.
func skipString(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch c := src[j]; {
		case c == '\\':
			j++
		case c == quote:
			return j
		case quote == '`' && c == '$' && j+1 < len(src) && src[j+1] == '{':
			j = skipInterpolation(src, j+1)
		}
	}
	return len(src) - 1
}

// skipInterpolation returns the index of the "}" closing the "{" at open,
// or the last index of src when it never closes.
func skipInterpolation(src string, open int) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		default:
			i = skipToken(src, i)
		}
	}
	return len(src) - 1
}

// skipComment returns the last index of a comment starting at i, or i when
// no comment starts there.
func skipComment(src string, i int) int {
	if i+1 >= len(src) {
		return i
	}
	switch src[i+1] {
	case '/':
		for j := i + 2; j < len(src); j++ {
			if src[j] == '\n' {
				return j
			}
		}
		return len(src) - 1
	case '*':
		for j := i + 2; j+1 < len(src); j++ {
			if src[j] == '*' && src[j+1] == '/' {
				return j + 1
			}
		}
		return len(src) - 1
	}
	return i
}

// PatchDataTable replaces the first data-table declaration in src with decl.
// Text outside the declaration is left byte-identical.
func PatchDataTable(src, decl string) (string, Span, error) {
	span, err := FindDataTable(src)
	if err != nil {
		return "", Span{}, err
	}
	return src[:span.Start] + decl + src[span.End:], span, nil
}
