package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestSaveDefaultConfigCreatesExampleTemplate(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	tmpConfig := filepath.Join(t.TempDir(), "create-template.yaml")
	cfgFile = tmpConfig
	viper.Reset()

	var out bytes.Buffer
	if err := saveDefaultConfig(&out); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, "# assetseed configuration") {
		t.Fatalf("expected example header in config file, got:\n%s", text)
	}
	if !strings.Contains(text, `name: "Furnitures-Fixtures-Misc"`) || !strings.Contains(text, `asset_type: "FURNITURE"`) {
		t.Fatalf("expected sheet mapping example in config file, got:\n%s", text)
	}
	if !strings.Contains(text, `name: "not working  obsolute  "`) || !strings.Contains(text, `asset_type: "OTHER"`) {
		t.Fatalf("expected untrimmed not-working sheet in config file, got:\n%s", text)
	}
	if !strings.Contains(out.String(), "New config file created at: "+tmpConfig) || !strings.Contains(out.String(), "Sheets (8, branch_id 1):") {
		t.Fatalf("unexpected command output:\n%s", out.String())
	}
}

func TestSaveDefaultConfigDoesNotOverwriteExistingFile(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	tmpConfig := filepath.Join(t.TempDir(), "existing.yaml")
	original := "branch_id: 4\nsheets:\n  - name: \"Building\"\n    asset_type: \"BUILDING\"\n"
	if err := os.WriteFile(tmpConfig, []byte(original), 0o644); err != nil {
		t.Fatalf("failed writing initial config: %v", err)
	}

	cfgFile = tmpConfig
	viper.Reset()

	var out bytes.Buffer
	if err := saveDefaultConfig(&out); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("failed reading existing config after create: %v", err)
	}
	if string(content) != original {
		t.Fatalf("expected existing config to remain unchanged")
	}
	if !strings.Contains(out.String(), "already exists") || !strings.Contains(out.String(), "1. \"Building\" -> BUILDING") {
		t.Fatalf("unexpected command output:\n%s", out.String())
	}
}
