package cmd

import (
	"assetseed/config"
	"assetseed/importer"
	"assetseed/internal/logger"
	"assetseed/output"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	extractInput      string
	extractOutput     string
	extractFormat     string
	extractSheets     []string
	extractSample     bool
	extractNoProgress bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract asset records from the verification workbook into a seed file",
	Long: `Read every configured sheet of the physical verification workbook, locate the header
row by its "Name of the Equipment" cell, normalize each equipment row and write the records.

Missing sheets and sheets without a header row are reported and skipped. Rows without an
equipment name and "Total" rows are skipped. A row that cannot be processed is logged and
skipped without aborting the run.

Input, output and format default to the configuration values. When --format is omitted,
the format is inferred from the output file extension.`,
	Example: `
  # Extract with configured defaults
  assetseed extract

  # Extract a specific workbook to a custom path
  assetseed extract -i ./verification.xlsx -o ./seed/assets_seed_data.json

  # Extract into a SQLite seed database
  assetseed extract -o ./assets.db

  # Extract selected sheets and print a sample record
  assetseed extract --sheet Building --sheet Fire-Fighting --sample
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		inputPath := firstNonEmpty(extractInput, cfg.Input.Workbook)
		outputPath := firstNonEmpty(extractOutput, cfg.Output.Path, config.DefaultOutputPath)
		format := resolveOutputFormat(extractFormat, cmd.Flags().Changed("output"), outputPath, cfg.Output.Format)

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}

		var progress io.Writer = os.Stderr
		if extractNoProgress {
			progress = nil
		}

		result, err := importer.Run(inputPath, *cfg, importer.RunOptions{
			Sheets:   extractSheets,
			Logger:   logger.Named(log, "importer"),
			Progress: progress,
		})
		if err != nil {
			return fmt.Errorf("extract %s: %w", inputPath, err)
		}

		if err := writer.Write(outputPath, result.Records); err != nil {
			return err
		}
		logger.Named(log, "output").Info("seed file written",
			zap.String("path", outputPath),
			zap.String("format", format),
			zap.Int("records", len(result.Records)),
		)

		out := cmd.OutOrStdout()
		printSheetResults(out, result.Sheets)
		fmt.Fprintf(out, "Extract completed. Sheets: %d, Rows read: %d, Rows mapped: %d, Rows skipped: %d, Rows failed: %d\n\n",
			result.SheetsProcessed,
			result.RowsRead,
			result.RowsMapped,
			result.RowsSkipped,
			result.RowsFailed,
		)
		output.PrintSummary(out, output.BuildSummary(result.Records))
		fmt.Fprintf(out, "\nSeed data written to: %s\n", outputPath)

		if extractSample && len(result.Records) > 0 {
			fmt.Fprintln(out)
			return output.PrintSample(out, result.Records[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Workbook path (default from input.workbook)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file path (default from output.path)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "Output format: json|csv|excel|sqlite (optional, inferred from output extension when omitted)")
	extractCmd.Flags().StringArrayVar(&extractSheets, "sheet", nil, "Configured sheet name to extract (repeatable, default all)")
	extractCmd.Flags().BoolVar(&extractSample, "sample", false, "Print the first extracted record")
	extractCmd.Flags().BoolVar(&extractNoProgress, "no-progress", false, "Disable per-sheet progress bars")
}

func printSheetResults(w io.Writer, sheets []importer.SheetResult) {
	for _, sheet := range sheets {
		switch {
		case !sheet.Found:
			fmt.Fprintf(w, "%s: sheet not found\n", sheet.Name)
		case !sheet.HeaderFound:
			fmt.Fprintf(w, "%s: header row not found\n", sheet.Name)
		default:
			fmt.Fprintf(w, "%s: %d records (%s)\n", sheet.Name, sheet.RowsMapped, sheet.AssetType)
		}
	}
}

// resolveOutputFormat picks the explicit flag first, then the extension of an
// explicit output path, then the configured format.
func resolveOutputFormat(flagFormat string, outputFlagSet bool, outputPath, configFormat string) string {
	if strings.TrimSpace(flagFormat) != "" {
		return flagFormat
	}
	if outputFlagSet {
		return output.DetectFormat(outputPath)
	}
	return firstNonEmpty(configFormat, output.DetectFormat(outputPath))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
