// Package main provides the CLI entry point for xlpeek.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlpeek/pkg/logger"
	"github.com/ukaji3/xlpeek/pkg/xlpeek"
	"github.com/ukaji3/xlpeek/pkg/xlpeek/output"
)

// defaultPath is used when neither an argument nor XLPEEK_FILE names
// the workbook.
const defaultPath = "Assets/ExcelConfigs/Example.xlsx"

var (
	outputPath  string
	jsonOut     bool
	pretty      bool
	previewRows int
	separator   string
	placeholder string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlpeek [input.xlsx]",
		Short: "Print sheet names, extents, and a row preview of a workbook",
		Long: `xlpeek opens a single spreadsheet file (xlsx, xlsm, or legacy xls) and
prints each sheet's name, maximum row/column counts, and the first rows
for manual inspection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON instead of text")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&previewRows, "rows", xlpeek.DefaultPreviewRows, "Maximum preview rows per sheet")
	rootCmd.Flags().StringVar(&separator, "sep", " | ", "Separator between cell values")
	rootCmd.Flags().StringVar(&placeholder, "placeholder", "NULL", "Placeholder for blank cells")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment")
	}

	inputPath := defaultPath
	if v := os.Getenv("XLPEEK_FILE"); v != "" {
		inputPath = v
	}
	if len(args) == 1 {
		inputPath = args[0]
	}

	report, err := xlpeek.Inspect(inputPath, xlpeek.Options{MaxPreviewRows: previewRows})
	if err != nil {
		// Both error paths are terminal for the operation but not for
		// the process: print the diagnostic and exit normally.
		if errors.Is(err, xlpeek.ErrFileNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), output.NotFoundMessage(inputPath))
			return nil
		}
		logger.Error("workbook inspection failed", "path", inputPath, "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), output.ReadErrorMessage(err))
		return nil
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if jsonOut {
		data, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	renderer := output.NewTextRenderer()
	renderer.Separator = separator
	renderer.Placeholder = placeholder
	renderer.Render(w, report)
	return nil
}
