// Package storage keeps uploaded and generated CSV files under one
// local directory. It is the only filesystem surface of the service;
// the analytics core never touches disk itself.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store manages files inside a single upload directory.
type Store struct {
	dir string
}

// New creates the upload directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory path.
func (s *Store) Dir() string { return s.dir }

// Save writes data under a collision-free name derived from the
// original filename plus a timestamp and short uuid, and returns the
// stored path.
func (s *Store) Save(name string, data []byte) (string, error) {
	base := sanitize(filepath.Base(name))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stored := fmt.Sprintf("%s_%s_%s%s",
		stem,
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		ext,
	)
	path := filepath.Join(s.dir, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", path, err)
	}
	return path, nil
}

// SaveAs writes data under the exact given base name, overwriting any
// previous file. Used for generated sample datasets with stable names.
func (s *Store) SaveAs(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, sanitize(filepath.Base(name)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file %s: %w", path, err)
	}
	return path, nil
}

// Resolve maps a client-supplied filepath to a file inside the upload
// directory. Only the base name is honored, so traversal outside the
// directory is not possible. The returned path exists.
func (s *Store) Resolve(clientPath string) (string, error) {
	if clientPath == "" {
		return "", fmt.Errorf("empty filepath: %w", os.ErrNotExist)
	}
	// Accept both native and foreign separators in client paths.
	normalized := strings.ReplaceAll(clientPath, "\\", "/")
	path := filepath.Join(s.dir, sanitize(filepath.Base(filepath.FromSlash(normalized))))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("resolve %s: %w", clientPath, err)
	}
	return path, nil
}

// Open opens a stored file via Resolve.
func (s *Store) Open(clientPath string) (*os.File, error) {
	path, err := s.Resolve(clientPath)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
