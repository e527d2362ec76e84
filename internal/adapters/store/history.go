// Package store provides adapters for usage-history persistence backends.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// FileHistory implements domain.HistoryStore over a JSON array file.
// A missing or unreadable file loads as an empty history so a corrupt log
// never blocks tracking; the next save rewrites it whole.
type FileHistory struct {
	path string
}

// NewFileHistory creates a FileHistory backed by the given file path.
func NewFileHistory(path string) *FileHistory {
	return &FileHistory{path: path}
}

// Load returns all entries in insertion order. Missing, unreadable or
// corrupt files load as an empty history rather than an error.
func (s *FileHistory) Load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []domain.HistoryEntry{}, nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []domain.HistoryEntry{}, nil
	}
	return entries, nil
}

// Save writes the full history, replacing the previous contents.
func (s *FileHistory) Save(entries []domain.HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
