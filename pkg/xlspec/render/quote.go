// Package render builds test scaffolding text from normalized sheets.
package render

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TrimQuotes removes at most one leading and one trailing quote character
// (either ' or "). The two ends are trimmed independently.
func TrimQuotes(s string) string {
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

// quoteString returns s as a double-quoted string literal valid in both JSON
// and TypeScript.
func quoteString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string value never fails.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
