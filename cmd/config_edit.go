package cmd

import (
	"assetseed/config"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor and check the sheet mapping.",
	Long: `Open the active assetseed config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

If no config file exists yet, one is created from the example template with the
standard sheet to asset type mapping. After the editor exits the file is validated
(unknown asset types, duplicate sheet names, branch_id, header marker) and the
resulting sheet mapping is printed in extraction order.`,
	Example: `
  # Edit active config
  assetseed config edit

  # Edit a project-local config
  assetseed --configFile ./assetseed.yaml config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "No config file found. Created example config at: %s\n", configPath)
		}

		editorCommand, err := buildEditorCommand(resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR")), configPath)
		if err != nil {
			return err
		}
		editorCommand.Stdin = os.Stdin
		editorCommand.Stdout = os.Stdout
		editorCommand.Stderr = os.Stderr
		if err := editorCommand.Run(); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		cfg, err := loadEditedConfig(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration saved and validated: %s\n", configPath)
		printSheetMapping(out, cfg)
		return nil
	},
}

// loadEditedConfig validates the file as written by the editor, independent
// of the config already loaded into viper.
func loadEditedConfig(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading edited config failed: %w", err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

func printSheetMapping(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Sheets (%d, branch_id %d):\n", len(cfg.Sheets), cfg.BranchID)
	for i, sheet := range cfg.Sheets {
		fmt.Fprintf(w, "  %d. %q -> %s\n", i+1, sheet.Name, strings.ToUpper(strings.TrimSpace(sheet.AssetType)))
	}
}

func resolveConfigEditPath(configFileFlag, configFileUsed string) (string, error) {
	if path := firstNonEmpty(configFileFlag, configFileUsed); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".assetseed.yaml"), nil
}

// ensureConfigFileWithTemplate writes the example config when path does not
// exist yet and reports whether it did.
func ensureConfigFileWithTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("creating example config failed: %w", err)
	}
	return true, nil
}

func resolveEditorValue(visual, editor string) string {
	if value := firstNonEmpty(visual, editor); value != "" {
		return value
	}
	return "vi"
}

func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(editorValue)
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	return exec.Command(fields[0], append(fields[1:], configPath)...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
