package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles persists each record as <id>.json under dir, creating dir if
// needed. Returns the written paths in record order.
func WriteFiles(records []Record, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	paths := make([]string, 0, len(records))
	for _, rec := range records {
		path := filepath.Join(dir, rec.ID()+".json")
		if err := writeJSON(path, rec); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteSingle persists all records as one JSON array file.
func WriteSingle(records []Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return writeJSON(path, records)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
