package xlspec

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
	"github.com/ukaji3/xlspec-go/pkg/xlspec/parser"
	"github.com/ukaji3/xlspec-go/pkg/xlspec/render"
)

// Generate renders test scaffolding for every sheet of an xlsx file.
// Only a workbook that cannot be opened is an error; per-sheet failures
// are recorded in the report.
func Generate(path string, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	report := GenerateWorkbook(wb, opts)
	report.BookName = filepath.Base(path)
	return report, nil
}

// GenerateWorkbook processes the sheets of wb in workbook order.
func GenerateWorkbook(wb parser.Workbook, opts Options) *models.Report {
	g := &generator{opts: opts, log: opts.logger()}
	report := &models.Report{}

	for _, sheetName := range wb.SheetNames() {
		res := g.processSheet(wb, sheetName)
		if res.Err != nil {
			g.log.Warn("sheet skipped", "sheet", sheetName, "error", res.Err)
		}
		report.Sheets = append(report.Sheets, res)
	}

	return report
}

type generator struct {
	opts Options
	log  *slog.Logger
}

func (g *generator) processSheet(wb parser.Workbook, sheetName string) models.SheetResult {
	kind := models.KindOf(sheetName)
	res := models.SheetResult{SheetName: sheetName, Kind: kind}

	if !g.opts.ShouldProcess(sheetName) {
		g.log.Debug("sheet not in allow-list", "sheet", sheetName)
		res.Action = models.ActionSkipped
		return res
	}
	g.log.Debug("processing sheet", "sheet", sheetName, "kind", kind)

	rows, err := wb.Rows(sheetName)
	if err != nil {
		return fail(res, StageRead, fmt.Errorf("%w: %w", ErrIO, err))
	}

	switch kind {
	case models.MockedFsSheet:
		return g.fixtureSheet(res, rows)
	default:
		return g.defaultSheet(res, rows)
	}
}

func (g *generator) defaultSheet(res models.SheetResult, rows [][]string) models.SheetResult {
	data, err := parser.Normalize(res.SheetName, rows)
	if err != nil {
		return fail(res, StageNormalize, fmt.Errorf("%w: %w", ErrSchema, err))
	}
	for _, rowNum := range data.Discarded {
		g.log.Debug("row discarded", "sheet", res.SheetName, "row", rowNum)
	}

	datums := render.Datums(data)
	decl := render.DataTableDeclaration(datums)
	res.Records = len(datums)

	if g.opts.DataOnly {
		return g.print(res, decl)
	}

	path := g.opts.OutputPath(res.SheetName)
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		patched, span, err := render.PatchDataTable(string(existing), decl)
		if err != nil {
			return fail(res, StagePatch, fmt.Errorf("%w: %s: %w", ErrPatchTargetNotFound, path, err))
		}
		g.log.Debug("patching data table", "sheet", res.SheetName, "start", span.Start, "end", span.End)
		if err := writeFile(path, patched); err != nil {
			return fail(res, StageWrite, err)
		}
		res.Action = models.ActionPatched
	case errors.Is(err, fs.ErrNotExist):
		suite := render.Suite(render.SuiteParams{
			Name:        res.SheetName,
			Message:     g.opts.Message,
			Async:       g.opts.IsAsync(),
			HasContext:  data.HasContext(),
			Declaration: decl,
		})
		if err := writeFile(path, suite); err != nil {
			return fail(res, StageWrite, err)
		}
		res.Action = models.ActionWritten
	default:
		return fail(res, StageRead, fmt.Errorf("%w: %w", ErrIO, err))
	}

	res.Path = path
	g.log.Info("generated", "sheet", res.SheetName, "action", res.Action, "path", path, "records", res.Records)
	return res
}

// fixtureSheet always writes the whole file; existing fixtures are not patched.
func (g *generator) fixtureSheet(res models.SheetResult, rows [][]string) models.SheetResult {
	entries := parser.NormalizeFixtures(rows)
	res.Records = len(entries)

	if g.opts.DataOnly {
		return g.print(res, render.FixtureMap(entries))
	}

	path := g.opts.OutputPath(res.SheetName)
	if err := writeFile(path, render.FixtureFile(entries)); err != nil {
		return fail(res, StageWrite, err)
	}
	res.Action = models.ActionWritten
	res.Path = path
	g.log.Info("generated", "sheet", res.SheetName, "action", res.Action, "path", path, "records", res.Records)
	return res
}

func (g *generator) print(res models.SheetResult, block string) models.SheetResult {
	if _, err := fmt.Fprintf(g.opts.stdout(), "%s\n%s\n\n", render.Banner(res.SheetName), block); err != nil {
		return fail(res, StageWrite, fmt.Errorf("%w: %w", ErrIO, err))
	}
	res.Action = models.ActionPrinted
	return res
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func fail(res models.SheetResult, stage string, err error) models.SheetResult {
	res.Action = models.ActionFailed
	res.Err = NewSheetError(res.SheetName, stage, err)
	return res
}
