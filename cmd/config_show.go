package cmd

import (
	"assetseed/config"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.
When no file is loaded, the built-in defaults are shown.`,
	Example: `
  # Show active configuration
  assetseed config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, using defaults.")
		}
		printConfig(os.Stdout, cfg)
	},
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "input.workbook: %s\n", cfg.Input.Workbook)
	fmt.Fprintf(w, "input.header_marker: %s\n", cfg.Input.HeaderMarker)
	fmt.Fprintf(w, "input.skip_rows_after_header: %d\n", cfg.Input.SkipRowsAfterHeader)
	fmt.Fprintf(w, "output.path: %s\n", cfg.Output.Path)
	fmt.Fprintf(w, "output.format: %s\n", cfg.Output.Format)
	fmt.Fprintf(w, "branch_id: %d\n", cfg.BranchID)
	fmt.Fprintf(w, "sheets: %d\n", len(cfg.Sheets))
	for i, sheet := range cfg.Sheets {
		fmt.Fprintf(w, "sheets[%d].name: %s\n", i, sheet.Name)
		fmt.Fprintf(w, "sheets[%d].asset_type: %s\n", i, sheet.AssetType)
	}
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
