package render

import (
	"strings"

	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

// SerializeContext packs context fields into a single object literal, keys
// in field order, each value quote-trimmed. Returns nil for no fields.
func SerializeContext(fields []models.Field) *string {
	if len(fields) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteString(f.Key))
		b.WriteByte(':')
		b.WriteString(quoteString(TrimQuotes(f.Value)))
	}
	b.WriteByte('}')

	s := b.String()
	return &s
}

// Datums converts the records of a sheet into rendered data. Context presence
// is decided once per sheet from its context keys.
func Datums(sheet *models.SheetData) []models.Datum {
	withContext := sheet.HasContext()
	datums := make([]models.Datum, 0, len(sheet.Records))
	for _, rec := range sheet.Records {
		d := models.Datum{
			Input:  rec.Input,
			Output: rec.Output,
		}
		if withContext {
			d.Context = SerializeContext(rec.Context)
		}
		datums = append(datums, d)
	}
	return datums
}
