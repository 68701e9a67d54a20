// Package storage is the upload-storage collaborator. The rest of the
// service only ever stores and passes the opaque references it hands out.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore stores uploaded image bytes and resolves opaque references.
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
	Open(reference string) (io.ReadCloser, error)
}

// LocalImageStore implements ImageStore on the local filesystem
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore creates a LocalImageStore rooted at dir
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save writes the bytes under a fresh reference and returns it. The original
// filename only contributes its extension.
func (s *LocalImageStore) Save(filename string, r io.Reader) (string, error) {
	reference := uuid.NewString() + filepath.Ext(filepath.Base(filename))
	f, err := os.Create(filepath.Join(s.dir, reference))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return reference, nil
}

// Open resolves a reference to its bytes.
func (s *LocalImageStore) Open(reference string) (io.ReadCloser, error) {
	// Base strips any path components a crafted reference could smuggle in.
	return os.Open(filepath.Join(s.dir, filepath.Base(reference)))
}
