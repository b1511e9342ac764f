// Package xlspec generates test scaffolding from spreadsheet test-case tables.
package xlspec

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

// Style represents the calling convention of generated tests.
type Style string

const (
	// StyleAsync generates async callbacks that await the subject.
	StyleAsync Style = "async"
	// StyleSync generates plain synchronous callbacks.
	StyleSync Style = "sync"
)

// Default values for Options.
const (
	DefaultInput   = "ResolverTests.xlsx"
	DefaultOutDir  = "dist"
	DefaultMessage = "testing %o"
	DefaultExt     = "ts"
)

// Options configures generation behavior.
type Options struct {
	// Style selects async or sync test callbacks.
	Style Style
	// Message is the it.each description format.
	Message string
	// Sheets restricts processing to these sheet names (case-insensitive).
	// Empty means all sheets.
	Sheets []string
	// OutDir is the directory generated files are written to.
	OutDir string
	// Ext is the generated file extension without the leading dot.
	Ext string
	// DataOnly prints data tables to Stdout instead of writing files.
	DataOnly bool
	// Stdout receives data-only output. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Style:   StyleAsync,
		Message: DefaultMessage,
		OutDir:  DefaultOutDir,
		Ext:     DefaultExt,
	}
}

// IsAsync returns whether tests use the asynchronous calling convention.
func (o Options) IsAsync() bool {
	return o.Style != StyleSync
}

// ShouldProcess returns whether a sheet passes the allow-list.
func (o Options) ShouldProcess(sheetName string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	name := models.NormalizeName(sheetName)
	for _, s := range o.Sheets {
		if models.NormalizeName(s) == name {
			return true
		}
	}
	return false
}

// OutputPath returns the generated file path for a sheet.
func (o Options) OutputPath(sheetName string) string {
	ext := o.Ext
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Join(o.OutDir, sheetName+".spec."+ext)
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
