package config

import (
	"assetseed/asset"
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyInputWorkbook       = "input.workbook"
	KeyInputHeaderMarker   = "input.header_marker"
	KeyInputSkipAfterHeads = "input.skip_rows_after_header"
	KeyOutputPath          = "output.path"
	KeyOutputFormat        = "output.format"
	KeyBranchID            = "branch_id"
	KeySheets              = "sheets"

	DefaultWorkbook     = "public/Fixed Assets Physical verification-Hyderabad FY 2024-25-latest.xlsx"
	DefaultHeaderMarker = "Name of the Equipment"
	DefaultOutputPath   = "assets_seed_data.json"
	DefaultOutputFormat = "json"

	NotWorkingSheet = "not working  obsolute  "
)

type Config struct {
	Input    InputConfig  `mapstructure:"input"`
	Output   OutputConfig `mapstructure:"output"`
	BranchID int          `mapstructure:"branch_id" validate:"min=1"`
	Sheets   []Sheet      `mapstructure:"sheets" validate:"required,min=1,dive"`
}

type InputConfig struct {
	Workbook            string `mapstructure:"workbook"`
	HeaderMarker        string `mapstructure:"header_marker" validate:"required"`
	SkipRowsAfterHeader int    `mapstructure:"skip_rows_after_header" validate:"min=0"`
}

type OutputConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json csv excel xlsx sqlite"`
}

// Sheet binds one workbook sheet to the asset type its rows are tagged with.
type Sheet struct {
	Name      string `mapstructure:"name" validate:"required"`
	AssetType string `mapstructure:"asset_type" validate:"required"`
}

func DefaultSheets() []Sheet {
	return []Sheet{
		{Name: "HSDC-Equipments", AssetType: string(asset.TypeHSDC)},
		{Name: "Computers-peripherals", AssetType: string(asset.TypeComputer)},
		{Name: "Electrical-Equipments", AssetType: string(asset.TypeElectrical)},
		{Name: "Office Equipments", AssetType: string(asset.TypeOffice)},
		{Name: "Furnitures-Fixtures-Misc", AssetType: string(asset.TypeFurniture)},
		{Name: "Fire-Fighting", AssetType: string(asset.TypeFireFighting)},
		{Name: "Building", AssetType: string(asset.TypeBuilding)},
		// Trailing spaces are part of the sheet name in the workbook.
		{Name: NotWorkingSheet, AssetType: string(asset.TypeOther)},
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	var b strings.Builder
	b.WriteString(`# assetseed configuration
input:
  workbook: "` + DefaultWorkbook + `"
  header_marker: "` + DefaultHeaderMarker + `"
  skip_rows_after_header: 0

output:
  path: "` + DefaultOutputPath + `"
  format: "` + DefaultOutputFormat + `"

branch_id: 1

sheets:
`)
	for _, sheet := range DefaultSheets() {
		fmt.Fprintf(&b, "  - name: %q\n    asset_type: %q\n", sheet.Name, sheet.AssetType)
	}
	return b.String()
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSheets(cfg.Sheets); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInputWorkbook, DefaultWorkbook)
	v.SetDefault(KeyInputHeaderMarker, DefaultHeaderMarker)
	v.SetDefault(KeyInputSkipAfterHeads, 0)
	v.SetDefault(KeyOutputPath, DefaultOutputPath)
	v.SetDefault(KeyOutputFormat, DefaultOutputFormat)
	v.SetDefault(KeyBranchID, asset.DefaultBranchID)

	sheets := make([]map[string]any, 0, len(DefaultSheets()))
	for _, sheet := range DefaultSheets() {
		sheets = append(sheets, map[string]any{"name": sheet.Name, "asset_type": sheet.AssetType})
	}
	v.SetDefault(KeySheets, sheets)
}

func validateSheets(sheets []Sheet) error {
	seen := make(map[string]struct{}, len(sheets))
	for i, sheet := range sheets {
		name := strings.TrimSpace(sheet.Name)
		if name == "" {
			return fmt.Errorf("validation failed: sheets[%d].name is required", i)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("validation failed: duplicate sheet name %q", name)
		}
		seen[name] = struct{}{}
		if _, err := asset.ParseType(sheet.AssetType); err != nil {
			return fmt.Errorf("validation failed: sheets[%d].asset_type %q is not supported", i, sheet.AssetType)
		}
	}
	return nil
}
