package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore implements Store on the local file system, one file per key
// under a root directory. There is a single writer per process, so plain
// write-and-truncate is sufficient.
type FileStore struct {
	rootDir string
}

// NewFileStore creates a file-backed store rooted at rootDir, creating the
// directory if needed.
func NewFileStore(rootDir string) (*FileStore, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{rootDir: rootDir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.rootDir, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", s.path(key), err)
	}
	return string(content), true, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path(key), err)
	}
	return nil
}

func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.rootDir); err != nil {
		return fmt.Errorf("store dir %q is not accessible: %w", s.rootDir, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
