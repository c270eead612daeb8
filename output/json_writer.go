package output

import (
	"assetseed/asset"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// JSONWriter writes the seed file: a 2-space indented UTF-8 array with
// non-ASCII text kept as is. The file only appears once fully written.
type JSONWriter struct{}

func (w *JSONWriter) Write(path string, records []asset.Record) error {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, records); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// EncodeJSON renders records exactly as they appear in the seed file.
func EncodeJSON(w io.Writer, records []asset.Record) error {
	if records == nil {
		records = []asset.Record{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	return nil
}

// ReadJSON loads a seed file written by JSONWriter.
func ReadJSON(path string) ([]asset.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json input %s: %w", path, err)
	}

	var records []asset.Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("decode json input %s: %w", path, err)
	}
	return records, nil
}

func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod output %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename output %s: %w", path, err)
	}
	return nil
}
