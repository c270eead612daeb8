package importer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSheetNotFound = errors.New("sheet not found")

// Workbook gives access to the sheets of an opened spreadsheet file.
type Workbook interface {
	SheetNames() []string
	SheetRows(name string) ([][]string, error)
	Close() error
}

type Reader interface {
	Open(path string) (Workbook, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "", "excel", "xlsx", "xlsm":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}
