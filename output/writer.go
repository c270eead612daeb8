package output

import (
	"assetseed/asset"
	"fmt"
	"path/filepath"
	"strings"
)

type Writer interface {
	Write(path string, records []asset.Record) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "", "json":
		return &JSONWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	case "sqlite", "db":
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from a file extension, defaulting to
// json.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "csv":
		return "csv"
	case "xlsx", "xlsm":
		return "excel"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "json"
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
