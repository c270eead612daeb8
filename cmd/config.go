package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage assetseed configuration file values.",
	Long: `Create, edit, display, and delete the assetseed configuration file.

The configuration stores the extraction settings:
- input.workbook / input.header_marker / input.skip_rows_after_header
- output.path / output.format
- branch_id
- sheets[].name + sheets[].asset_type

Without a configuration file the built-in defaults are used.`,
	Example: `
  # Create default config in $HOME/.assetseed.yaml
  assetseed config create

  # Show active config and source file
  assetseed config show

  # Open active config in editor (creates example if missing)
  assetseed config edit

  # Delete active config file
  assetseed config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
