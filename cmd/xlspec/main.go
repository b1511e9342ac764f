// Package main provides the CLI entry point for xlspec.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlspec-go/internal/config"
	"github.com/ukaji3/xlspec-go/internal/logging"
	"github.com/ukaji3/xlspec-go/pkg/xlspec"
	"github.com/ukaji3/xlspec-go/pkg/xlspec/models"
)

var (
	message   string
	sheets    string
	outDir    string
	ext       string
	envFile   string
	syncTests bool
	dataOnly  bool
	verbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlspec [input.xlsx]",
		Short: "Generate test scaffolding from spreadsheet test cases",
		Long: `xlspec reads test-case tables (input, output, comment columns) from each
sheet of an Excel workbook and writes a parameterized test suite per sheet.
Existing suites only get their data table replaced.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	bindFlags(rootCmd.Flags())
	return rootCmd
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&message, "message", "m", xlspec.DefaultMessage, "Test description format for it.each (env: "+config.EnvMessage+")")
	fs.StringVarP(&sheets, "sheets", "s", "", "Comma-separated sheet names to process (case-insensitive, default: all)")
	fs.StringVarP(&outDir, "out", "o", xlspec.DefaultOutDir, "Output directory (env: "+config.EnvOutDir+")")
	fs.StringVar(&ext, "ext", xlspec.DefaultExt, "Generated file extension (env: "+config.EnvExt+")")
	fs.StringVar(&envFile, "env-file", ".env", "Optional dotenv file with defaults")
	fs.BoolVar(&syncTests, "sync", false, "Generate synchronous tests (default: async)")
	fs.BoolVarP(&dataOnly, "data-only", "d", false, "Print data tables to stdout instead of writing files")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug tracing")
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := xlspec.DefaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}

	cfg, err := config.Load(envFile, config.Config{
		OutDir:    outDir,
		Message:   message,
		Ext:       ext,
		LogFormat: "text",
	})
	if err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	logger := logging.Setup(cmd.ErrOrStderr(), level, cfg.LogFormat)

	flags := cmd.Flags()
	opts := xlspec.DefaultOptions()
	opts.Message = pick(flags, "message", message, cfg.Message)
	opts.OutDir = pick(flags, "out", outDir, cfg.OutDir)
	opts.Ext = strings.TrimPrefix(pick(flags, "ext", ext, cfg.Ext), ".")
	opts.Sheets = splitList(sheets)
	opts.DataOnly = dataOnly
	opts.Stdout = cmd.OutOrStdout()
	opts.Logger = logger
	if syncTests {
		opts.Style = xlspec.StyleSync
	}

	report, err := xlspec.Generate(inputPath, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("done",
		"book", report.BookName,
		"written", report.Count(models.ActionWritten),
		"patched", report.Count(models.ActionPatched),
		"printed", report.Count(models.ActionPrinted),
		"skipped", report.Count(models.ActionSkipped),
		"failed", report.Count(models.ActionFailed),
	)
	return nil
}

// pick prefers an explicitly set flag over the environment-resolved value.
func pick(fs *pflag.FlagSet, name, flagValue, resolved string) string {
	if fs.Changed(name) {
		return flagValue
	}
	return resolved
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
