// Package upload stores binary assets (menu photos, hero media) on local
// disk under random names.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore saves uploads into a single flat directory, served back to
// clients under /uploads/.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes content under a fresh random name, keeping the original
// extension (defaulting to jpg), and returns the stored filename.
func (s *LocalStore) Save(originalName string, content io.Reader) (string, error) {
	originalName = filepath.Base(originalName)
	ext := "jpg"
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		ext = originalName[i+1:]
	}
	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return filename, nil
}

// Dir returns the directory uploads are stored in.
func (s *LocalStore) Dir() string {
	return s.dir
}
