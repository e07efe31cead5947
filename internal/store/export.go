// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the full history to <data dir>/history.yaml and returns
// the path written.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	entries, err := s.List(ctx, exportLimit)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dir, "history.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full history to <data dir>/history.json and returns
// the path written.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	entries, err := s.List(ctx, exportLimit)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dir, "history.json")
	return path, os.WriteFile(path, data, 0o644)
}
