package models

// Action is the outcome of processing one sheet.
type Action string

const (
	// ActionWritten means a full file was written.
	ActionWritten Action = "written"
	// ActionPatched means the data table of an existing file was replaced.
	ActionPatched Action = "patched"
	// ActionPrinted means the data table was printed (data-only mode).
	ActionPrinted Action = "printed"
	// ActionSkipped means the sheet was excluded by the allow-list.
	ActionSkipped Action = "skipped"
	// ActionFailed means the sheet could not be processed.
	ActionFailed Action = "failed"
)

// SheetResult represents the outcome for a single sheet.
type SheetResult struct {
	// SheetName is the sheet name as it appears in the workbook.
	SheetName string
	// Kind is the pipeline used.
	Kind SheetKind
	// Action is what happened to the sheet.
	Action Action
	// Path is the output file (empty in data-only mode or on failure).
	Path string
	// Records is the number of rendered rows.
	Records int
	// Err is set when Action is ActionFailed.
	Err error
}

// Report represents the outcome of a generation run.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets lists results in workbook order.
	Sheets []SheetResult
}

// Count returns how many sheets ended with the given action.
func (r *Report) Count(a Action) int {
	n := 0
	for _, s := range r.Sheets {
		if s.Action == a {
			n++
		}
	}
	return n
}

// Errors returns the per-sheet failures in workbook order.
func (r *Report) Errors() []error {
	var errs []error
	for _, s := range r.Sheets {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errs
}
