package cmd

import (
	"assetseed/output"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	convertInput        string
	convertOutput       string
	convertInputFormat  string
	convertOutputFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an existing seed file into another output format",
	Long: `Load records from a JSON seed file or SQLite seed database and write them again
in another format. Formats are inferred from file extensions unless given explicitly.`,
	Example: `
  # JSON seed file to Excel
  assetseed convert -i assets_seed_data.json -o assets.xlsx

  # SQLite seed database back to JSON
  assetseed convert -i assets.db -o assets_seed_data.json

  # Explicit formats
  assetseed convert -i seed.txt --from json -o seed.out --to csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(convertInput) == strings.TrimSpace(convertOutput) {
			return fmt.Errorf("input and output must be different files")
		}

		records, err := output.ReadRecords(convertInput, convertInputFormat)
		if err != nil {
			return err
		}

		format := firstNonEmpty(convertOutputFormat, output.DetectFormat(convertOutput))
		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(convertOutput, records); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d records to %s (%s)\n", len(records), convertOutput, format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Seed file to read (.json or .db)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path")
	convertCmd.Flags().StringVar(&convertInputFormat, "from", "", "Input format: json|sqlite (optional, inferred from extension)")
	convertCmd.Flags().StringVar(&convertOutputFormat, "to", "", "Output format: json|csv|excel|sqlite (optional, inferred from extension)")

	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}
