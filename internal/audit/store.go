// Package audit persists generation results as JSON artifacts for later
// inspection. Records are written atomically (temp file, then rename) so a
// crashed write never leaves a half-written artifact behind.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"scenarist/pkg/schema"
)

// Store writes and reads generation results under a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir. The directory is created on
// the first Save.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes a generation result and returns its record name.
func (s *Store) Save(result *schema.GenerationResult) (string, error) {
	id, err := schema.NewAuditRecordID()
	if err != nil {
		return "", fmt.Errorf("new record id: %w", err)
	}
	name := id + ".json"

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", fmt.Errorf("create audit directory: %w", err)
	}

	path := filepath.Join(s.baseDir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("commit record: %w", err)
	}

	return name, nil
}

// Load reads a previously saved record by name.
func (s *Store) Load(name string) (*schema.GenerationResult, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", name, err)
	}

	var result schema.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", name, err)
	}

	return &result, nil
}

// List returns record names, newest first. The timestamp prefix in the
// record name makes lexical order chronological.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read audit directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
