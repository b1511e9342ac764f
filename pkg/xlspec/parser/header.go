package parser

import (
	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

// Reserved column keys.
const (
	KeyInput       = "input"
	KeyOutput      = "output"
	KeyComment     = "comment"
	KeyImplemented = "implemented"
)

// IsReserved reports whether key is never part of the context payload.
func IsReserved(key string) bool {
	switch key {
	case KeyInput, KeyOutput, KeyComment, KeyImplemented:
		return true
	}
	return false
}

// Header describes the column layout of a default sheet.
type Header struct {
	// Keys holds the lowercased column keys up to and including the comment column.
	Keys []string
	// CommentCol is the 0-based index of the comment column (the row width boundary).
	CommentCol int
	// ContextKeys are the non-reserved keys in order of first appearance.
	ContextKeys []string

	inputCol       int
	outputCol      int
	implementedCol int
	contextCols    []int
}

// ParseHeader builds column keys from the first row of a sheet.
// Columns after the first comment column are ignored. When a key occurs more
// than once, the last occurrence supplies the value.
func ParseHeader(row []string) (*Header, error) {
	commentCol := -1
	for i, cell := range row {
		if models.NormalizeName(cell) == KeyComment {
			commentCol = i
			break
		}
	}
	if commentCol < 0 {
		return nil, &SchemaError{Column: KeyComment}
	}

	h := &Header{
		Keys:           make([]string, commentCol+1),
		CommentCol:     commentCol,
		inputCol:       -1,
		outputCol:      -1,
		implementedCol: -1,
	}
	contextIdx := make(map[string]int)
	for i := 0; i <= commentCol; i++ {
		key := models.NormalizeName(Cell(row, i))
		h.Keys[i] = key

		switch key {
		case KeyInput:
			h.inputCol = i
		case KeyOutput:
			h.outputCol = i
		case KeyImplemented:
			h.implementedCol = i
		case KeyComment:
		default:
			if pos, ok := contextIdx[key]; ok {
				h.contextCols[pos] = i
				continue
			}
			contextIdx[key] = len(h.ContextKeys)
			h.ContextKeys = append(h.ContextKeys, key)
			h.contextCols = append(h.contextCols, i)
		}
	}

	if h.inputCol < 0 {
		return nil, &SchemaError{Column: KeyInput}
	}
	if h.outputCol < 0 {
		return nil, &SchemaError{Column: KeyOutput}
	}
	return h, nil
}

// Record maps a data row onto the header. ok is false when any cell left of
// the comment column is empty.
func (h *Header) Record(row []string, rowNum int) (rec models.Record, ok bool) {
	for i := 0; i < h.CommentCol; i++ {
		if Cell(row, i) == "" {
			return models.Record{}, false
		}
	}

	rec = models.Record{
		Row:         rowNum,
		Input:       Cell(row, h.inputCol),
		Output:      Cell(row, h.outputCol),
		Comment:     Cell(row, h.CommentCol),
		Implemented: Cell(row, h.implementedCol),
	}
	if len(h.contextCols) > 0 {
		rec.Context = make([]models.Field, len(h.contextCols))
		for i, col := range h.contextCols {
			rec.Context[i] = models.Field{Key: h.ContextKeys[i], Value: Cell(row, col)}
		}
	}
	return rec, true
}
