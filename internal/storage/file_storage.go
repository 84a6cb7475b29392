package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound indicates no stored document exists under the given name.
var ErrNotFound = errors.New("document not found")

// DocumentStore keeps uploaded documents on the local file system so the
// UI can display the source next to its matched quotes.
type DocumentStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewDocumentStore creates a file-backed document store rooted at baseDir.
func NewDocumentStore(baseDir string) (*DocumentStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &DocumentStore{
		baseDir: baseDir,
	}, nil
}

// Save writes the uploaded bytes under a sanitized version of name and
// returns the name it was stored as.
func (s *DocumentStore) Save(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := safeFilename(name)
	path := filepath.Join(s.baseDir, stored)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return stored, nil
}

// Open reads a stored document back. Names are sanitized the same way as
// in Save, so path traversal cannot escape the store directory.
func (s *DocumentStore) Open(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.baseDir, safeFilename(name))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// safeFilename reduces an uploaded filename to a safe base name, keeping
// alphanumerics, dots, dashes and underscores.
func safeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	safe := strings.TrimLeft(b.String(), ".")
	if safe == "" {
		safe = "document"
	}
	// Limit length
	if len(safe) > 100 {
		safe = safe[len(safe)-100:]
	}
	return safe
}
