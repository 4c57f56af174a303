// Package file stores the ledger document as a flat file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iho/budgetbook/internal/domain"
)

// DocumentStore reads and overwrites one JSON file.
type DocumentStore struct {
	path string
}

// NewDocumentStore creates a new DocumentStore for path.
func NewDocumentStore(path string) *DocumentStore {
	return &DocumentStore{path: path}
}

// ReadDocument returns the whole file.
func (s *DocumentStore) ReadDocument(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrStorage, domain.ErrDocumentNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	return data, nil
}

// WriteDocument truncates the file and writes data in full.
// The parent directory is created when missing.
func (s *DocumentStore) WriteDocument(ctx context.Context, data []byte) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	return nil
}

// Location describes where the document lives.
func (s *DocumentStore) Location() string {
	return s.path
}
