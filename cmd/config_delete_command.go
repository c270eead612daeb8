package cmd

import (
	"assetseed/config"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by assetseed.

Afterwards extraction falls back to the built-in defaults. If no configuration
file is active, the command returns an error.`,
	Example: `
  # Delete active config
  assetseed config delete

  # Delete config at a custom path
  assetseed --configFile ./assetseed.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return fmt.Errorf("no configuration file in use, nothing to delete")
		}

		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("deleting configuration file %s: %w", configPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file deleted: %s\nBuilt-in defaults now apply (%d sheets, output %s).\n",
			configPath, len(config.DefaultSheets()), config.DefaultOutputPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
