package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assetseed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEditedConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported asset type",
			content: "sheets:\n  - name: \"Vehicles\"\n    asset_type: \"VEHICLE\"\n",
			wantErr: `asset_type "VEHICLE" is not supported`,
		},
		{
			name:    "duplicate sheet",
			content: "sheets:\n  - name: \"Building\"\n    asset_type: \"BUILDING\"\n  - name: \"Building \"\n    asset_type: \"OTHER\"\n",
			wantErr: `duplicate sheet name "Building"`,
		},
		{
			name:    "invalid branch",
			content: "branch_id: 0\n",
			wantErr: "validation failed",
		},
		{
			name:    "broken yaml",
			content: "sheets: [\n",
			wantErr: "read config content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := loadEditedConfig(path)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) || !strings.Contains(err.Error(), path) {
				t.Fatalf("unexpected error: expected %q for %s, got %v", tt.wantErr, path, err)
			}
		})
	}
}

func TestLoadEditedConfigPrintsSheetMapping(t *testing.T) {
	path := writeConfigFile(t, "branch_id: 2\nsheets:\n  - name: \"Fire-Fighting\"\n    asset_type: \"firefighting\"\n  - name: \"not working  obsolute  \"\n    asset_type: \"OTHER\"\n")

	cfg, err := loadEditedConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	printSheetMapping(&out, cfg)
	want := "Sheets (2, branch_id 2):\n" +
		"  1. \"Fire-Fighting\" -> FIREFIGHTING\n" +
		"  2. \"not working  obsolute  \" -> OTHER\n"
	if out.String() != want {
		t.Fatalf("unexpected mapping:\nexpected:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestEnsureConfigFileWithTemplateWritesValidMapping(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "assetseed.yaml")

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		t.Fatalf("unexpected error creating template config: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("unexpected error stat config file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected config file mode 0600, got %o", info.Mode().Perm())
	}

	cfg, err := loadEditedConfig(configPath)
	if err != nil {
		t.Fatalf("expected template to validate: %v", err)
	}
	if len(cfg.Sheets) != 8 || cfg.Sheets[7].AssetType != "OTHER" {
		t.Fatalf("unexpected template sheets: %+v", cfg.Sheets)
	}

	created, err = ensureConfigFileWithTemplate(configPath)
	if err != nil {
		t.Fatalf("unexpected error on existing config file: %v", err)
	}
	if created {
		t.Fatalf("did not expect existing file to be recreated")
	}
}

func TestResolveConfigEditPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveConfigEditPath(" ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, ".assetseed.yaml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if got, _ := resolveConfigEditPath("", "/tmp/active.yaml"); got != "/tmp/active.yaml" {
		t.Fatalf("expected active config path, got %q", got)
	}
}

func TestBuildEditorCommand(t *testing.T) {
	cmd, err := buildEditorCommand(resolveEditorValue("", "code --wait"), "/tmp/assetseed.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "--wait" || cmd.Args[2] != "/tmp/assetseed.yaml" {
		t.Fatalf("unexpected command args: %#v", cmd.Args)
	}
	if resolveEditorValue("", "") != "vi" {
		t.Fatalf("expected vi as default editor")
	}
	if _, err := buildEditorCommand("   ", "/tmp/assetseed.yaml"); err == nil {
		t.Fatalf("expected error for empty editor")
	}
}
