package output

import (
	"assetseed/asset"
	"assetseed/storage"
	"fmt"
	"os"
	"path/filepath"
)

// SQLiteWriter emits the records as a standalone SQLite seed file with one
// "assets" table. An existing file at path is replaced.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(path string, records []asset.Record) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpName)

	store, err := storage.OpenSQLite(tmpName)
	if err != nil {
		return err
	}
	if _, err := store.InsertAssets(records); err != nil {
		_ = store.Close()
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("close sqlite output %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename output %s: %w", path, err)
	}
	return nil
}

// ReadRecords loads records from a seed file in json or sqlite format; the
// format is inferred from the extension when empty.
func ReadRecords(path, format string) ([]asset.Record, error) {
	if normalizeFormat(format) == "" {
		format = DetectFormat(path)
	}

	switch normalizeFormat(format) {
	case "json":
		return ReadJSON(path)
	case "sqlite", "db":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open sqlite input %s: %w", path, err)
		}
		store, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.ListAssets()
	default:
		return nil, fmt.Errorf("unsupported input format: %s (supported: json, sqlite)", format)
	}
}
