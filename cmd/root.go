package cmd

import (
	"assetseed/config"
	"assetseed/internal/logger"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assetseed",
	Short: "Extract fixed-asset seed data from a physical verification workbook.",
	Long: `
**********************************************
*              ASSET SEED                    *
**********************************************

This CLI reads a multi-sheet fixed-asset physical verification workbook, locates the
header row of every configured sheet, normalizes each equipment row and writes the
result as a JSON seed file for an asset management database.

Supported output formats:
- JSON: .json (default, assets_seed_data.json)
- CSV: .csv
- Excel: .xlsx
- SQLite: .db
`,
	Example: `
  # Create configuration file
  assetseed config create

  # Extract the configured workbook into assets_seed_data.json
  assetseed extract

  # Extract a specific workbook and print one sample record
  assetseed extract -i "./FY 2024-25.xlsx" --sample

  # Extract two sheets only
  assetseed extract --sheet Building --sheet Fire-Fighting

  # Convert an existing seed file to Excel
  assetseed convert -i assets_seed_data.json -o assets.xlsx
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.assetseed.yaml, then ./.assetseed.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
}

// initConfig reads in the config file if one is found.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".assetseed")
	}

	// Without a config file the built-in defaults describe the standard workbook.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Reading config failed: %v\n", err)
		}
	}
}

func newLogger() (*zap.Logger, error) {
	return logger.New(os.Stderr, logLevel)
}
