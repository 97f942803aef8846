package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes images to a directory served statically under /images.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage ensures the upload directory exists and returns a store
// whose URLs start with baseURL.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory images are written to, for static serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes the image to disk and returns its public URL.
func (s *LocalStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	name = filepath.Base(name)
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return s.baseURL + urlPrefix + name, nil
}

// Remove deletes the file a stored URL points at. A file already gone is not
// an error.
func (s *LocalStorage) Remove(_ context.Context, url string) error {
	name, err := objectName(url)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
