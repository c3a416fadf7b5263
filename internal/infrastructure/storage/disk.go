package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the named file does not exist in the store.
var ErrNotFound = errors.New("file not found")

// DiskStore keeps uploaded files in a flat local directory. Names are always
// reduced to their base component, so callers cannot escape the root.
type DiskStore struct {
	root string
}

// NewDiskStore constructs a store rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &DiskStore{root: dir}, nil
}

// Save streams r into a file with the given name, replacing any existing
// file. The partially written file is removed when the copy fails.
func (s *DiskStore) Save(name string, r io.Reader) error {
	path := s.path(name)
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}

// Open returns a reader over the named file.
func (s *DiskStore) Open(name string) (io.ReadCloser, error) {
	file, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return file, nil
}

// Remove deletes the named file.
func (s *DiskStore) Remove(name string) error {
	err := os.Remove(s.path(name))
	if err != nil && os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Exists reports whether the named file is present.
func (s *DiskStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

func (s *DiskStore) path(name string) string {
	return filepath.Join(s.root, SanitizeName(name))
}

// SanitizeName strips path components and characters that are unsafe in a
// stored filename.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}
