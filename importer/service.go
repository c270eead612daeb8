package importer

import (
	"assetseed/asset"
	"assetseed/config"
	"assetseed/internal/ui"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// SheetResult holds the per-sheet counters reported after a run.
type SheetResult struct {
	Name        string
	AssetType   asset.Type
	Found       bool
	HeaderFound bool
	HeaderRow   int
	RowsRead    int
	RowsMapped  int
	RowsSkipped int
	RowsFailed  int
}

type Result struct {
	SheetsProcessed int
	RowsRead        int
	RowsMapped      int
	RowsSkipped     int
	RowsFailed      int
	Sheets          []SheetResult
	Records         []asset.Record
}

type RunOptions struct {
	// Sheets restricts the run to these configured sheet names.
	Sheets   []string
	Reader   Reader
	Logger   *zap.Logger
	Progress io.Writer

	assemble assembleFunc
}

// Run extracts asset records from every configured sheet of the workbook at
// path, in configuration order. Only a workbook that cannot be opened fails
// the run; missing sheets, missing headers and broken rows are logged and
// skipped.
func Run(path string, cfg config.Config, options RunOptions) (*Result, error) {
	log := options.Logger
	if log == nil {
		log = zap.NewNop()
	}

	specs, err := resolveSheetSpecs(cfg, options.Sheets)
	if err != nil {
		return nil, err
	}

	reader := options.Reader
	if reader == nil {
		reader, err = ReaderForFormat(strings.TrimPrefix(filepath.Ext(path), "."))
		if err != nil {
			return nil, err
		}
	}
	workbook, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	assemble := options.assemble
	if assemble == nil {
		assemble = AssembleRow
	}

	result := &Result{Records: make([]asset.Record, 0, 256)}
	for _, spec := range specs {
		sheetLog := log.With(zap.String("sheet", spec.Name))
		sheetResult, records := runSheet(workbook, spec, cfg.Input, assemble, sheetLog, options.Progress)
		result.Sheets = append(result.Sheets, sheetResult)
		if !sheetResult.Found {
			continue
		}

		result.SheetsProcessed++
		result.RowsRead += sheetResult.RowsRead
		result.RowsMapped += sheetResult.RowsMapped
		result.RowsSkipped += sheetResult.RowsSkipped
		result.RowsFailed += sheetResult.RowsFailed
		result.Records = append(result.Records, records...)
	}

	return result, nil
}

func runSheet(workbook Workbook, spec SheetSpec, input config.InputConfig, assemble assembleFunc, log *zap.Logger, progress io.Writer) (SheetResult, []asset.Record) {
	sheetResult := SheetResult{Name: spec.Name, AssetType: spec.AssetType}

	rows, err := workbook.SheetRows(spec.Name)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			log.Warn("sheet not found, skipping", zap.Strings("available", workbook.SheetNames()))
		} else {
			log.Error("read sheet failed, skipping", zap.Error(err))
		}
		return sheetResult, nil
	}
	sheetResult.Found = true

	headerIdx, ok := LocateHeader(rows, input.HeaderMarker)
	if !ok {
		log.Warn("header row not found, sheet yields no records", zap.String("marker", input.HeaderMarker))
		return sheetResult, nil
	}
	sheetResult.HeaderFound = true
	sheetResult.HeaderRow = headerIdx + 1

	columns := ResolveColumns(rows[headerIdx])
	if !columns.Has(RoleName) {
		log.Warn("no equipment name column in header row", zap.Int("header_row", sheetResult.HeaderRow))
	}
	log.Debug("resolved columns", zap.Int("header_row", sheetResult.HeaderRow), zap.Any("columns", columns))

	start := headerIdx + 1 + input.SkipRowsAfterHeader
	if start > len(rows) {
		start = len(rows)
	}
	dataRows := rows[start:]

	bar := ui.NewProgressBar(spec.Name, len(dataRows), progress)
	defer bar.Finish()

	records := make([]asset.Record, 0, len(dataRows))
	for i, cells := range dataRows {
		bar.Increment()
		row := Row{Sheet: spec.Name, Number: start + i + 1, Cells: cells}
		if row.IsBlank() {
			continue
		}

		sheetResult.RowsRead++
		record, mapped, err := assembleRowSafe(assemble, spec, columns, row)
		if err != nil {
			sheetResult.RowsFailed++
			log.Error("row skipped", zap.Int("row", row.Number), zap.Error(err))
			continue
		}
		if !mapped {
			sheetResult.RowsSkipped++
			continue
		}

		sheetResult.RowsMapped++
		records = append(records, record)
	}

	log.Info("sheet processed",
		zap.Int("records", sheetResult.RowsMapped),
		zap.Int("skipped", sheetResult.RowsSkipped),
		zap.Int("failed", sheetResult.RowsFailed),
	)
	return sheetResult, records
}

func resolveSheetSpecs(cfg config.Config, only []string) ([]SheetSpec, error) {
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			wanted[trimmed] = false
		}
	}

	specs := make([]SheetSpec, 0, len(cfg.Sheets))
	for _, sheet := range cfg.Sheets {
		key := strings.TrimSpace(sheet.Name)
		if len(wanted) > 0 {
			if _, ok := wanted[key]; !ok {
				continue
			}
			wanted[key] = true
		}

		assetType, err := asset.ParseType(sheet.AssetType)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
		specs = append(specs, SheetSpec{Name: sheet.Name, AssetType: assetType, BranchID: cfg.BranchID})
	}

	missing := make([]string, 0)
	for name, matched := range wanted {
		if !matched {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("sheets not configured: %s", strings.Join(missing, ", "))
	}

	return specs, nil
}
