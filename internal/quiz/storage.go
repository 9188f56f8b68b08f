package quiz

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists uploaded documents after a successful generation run.
type FileStore interface {
	Save(name string, data []byte) (string, error)
	Delete(path string) error
}

type localFileStore struct {
	baseDir string
}

// NewLocalFileStore stores documents on the local filesystem under baseDir.
func NewLocalFileStore(baseDir string) FileStore {
	return &localFileStore{baseDir: baseDir}
}

func (s *localFileStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return path, nil
}

func (s *localFileStore) Delete(path string) error {
	return os.Remove(path)
}
