// Package storage stores uploaded product images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// ErrImageNotFound is returned when a lookup names a file that is absent.
var ErrImageNotFound = errors.New("image not found")

// URLPrefix is the public path prefix under which images are served.
const URLPrefix = "/uploads"

// ImageStore saves uploaded images and resolves stored filenames to disk
// paths.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Resolve(filename string) (string, error)
}

// LocalImageStore implements ImageStore on a local directory.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore creates the upload directory if needed and returns a
// store over it.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a timestamped name keeping the
// original extension, and returns the public URL path for it.
func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("image-%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file %s: %w", name, err)
	}
	return URLPrefix + "/" + name, nil
}

// Resolve maps a stored filename to its path on disk. Directory components
// in the input are stripped so lookups cannot escape the upload directory.
func (s *LocalImageStore) Resolve(filename string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("failed to stat image %s: %w", filename, err)
	}
	return path, nil
}
