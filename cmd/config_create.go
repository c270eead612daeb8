package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file with the standard sheet mapping.",
	Long: `Create a new configuration file from the example template used by "config edit".

The template maps every sheet of the verification workbook to its asset type and
carries the default input, output and branch settings. An existing file is left
untouched; its sheet mapping is printed instead.`,
	Example: `
  # Create default config at $HOME/.assetseed.yaml
  assetseed config create

  # Create a project-local config
  assetseed --configFile ./assetseed.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig(cmd.OutOrStdout())
	},
}

func saveDefaultConfig(out io.Writer) error {
	configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "New config file created at: %s\n", configPath)
	} else {
		fmt.Fprintf(out, "Config file already exists at: %s\n", configPath)
	}

	cfg, err := loadEditedConfig(configPath)
	if err != nil {
		// An existing file may be mid-edit; creation itself succeeded.
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	printSheetMapping(out, cfg)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
