package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct{}

func (r *ExcelReader) Open(path string) (Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}

	date1904 := false
	if props, err := file.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	return &excelWorkbook{
		file:        file,
		date1904:    date1904,
		dateStyleID: make(map[int]bool),
	}, nil
}

type excelWorkbook struct {
	file        *excelize.File
	date1904    bool
	dateStyleID map[int]bool
}

func (w *excelWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// SheetRows returns the sheet as a grid of raw cell strings. Cells carrying a
// date number format are rendered as YYYY-MM-DD instead of their serial value.
func (w *excelWorkbook) SheetRows(name string) ([][]string, error) {
	if idx, err := w.file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	rows, err := w.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", name, err)
	}

	for r, row := range rows {
		for c, value := range row {
			serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			if !w.isDateCell(name, cell) {
				continue
			}
			parsed, err := excelize.ExcelDateToTime(serial, w.date1904)
			if err != nil {
				continue
			}
			rows[r][c] = parsed.Format(isoDateLayout)
		}
	}

	return rows, nil
}

func (w *excelWorkbook) Close() error {
	return w.file.Close()
}

func (w *excelWorkbook) isDateCell(sheet, cell string) bool {
	styleID, err := w.file.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := w.dateStyleID[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := w.file.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	w.dateStyleID[styleID] = isDate
	return isDate
}

var numFmtLiteralPattern = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)

func isDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil && strings.TrimSpace(*custom) != "" {
		code := strings.ToLower(numFmtLiteralPattern.ReplaceAllString(*custom, ""))
		if code == "general" {
			return false
		}
		return strings.ContainsAny(code, "dy")
	}

	switch {
	case numFmt >= 14 && numFmt <= 17, numFmt == 22:
		return true
	case numFmt >= 27 && numFmt <= 36, numFmt >= 50 && numFmt <= 58:
		return true
	default:
		return false
	}
}
