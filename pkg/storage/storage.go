package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage is the screenshot bucket: files are written under a base
// directory and served back to clients at a public base URL. Save with
// overwrite gives the upsert semantics the payment flow relies on
// (re-uploading a screenshot replaces the previous one for that
// reservation).
type FileStorage interface {
	Save(path string, data io.Reader, overwrite bool) error
	PublicURL(path string) string
	Delete(path string) error
	Exists(path string) bool
}

type fileStorage struct {
	basePath      string
	publicBaseURL string
}

func NewFileStorage(basePath, publicBaseURL string) FileStorage {
	return &fileStorage{
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *fileStorage) Save(path string, data io.Reader, overwrite bool) error {
	fullPath := filepath.Join(s.basePath, path)

	if !overwrite && s.Exists(path) {
		return fmt.Errorf("file %s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}

	return nil
}

func (s *fileStorage) PublicURL(path string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(filepath.ToSlash(path), "/")
}

func (s *fileStorage) Delete(path string) error {
	return os.Remove(filepath.Join(s.basePath, path))
}

func (s *fileStorage) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	return !os.IsNotExist(err)
}
