package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"thumbnailgen/internal/domain"
)

// FileStore persists generated thumbnails onto the local filesystem, rooted
// at the configured output directory.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath, creating the
// directory if it does not exist yet.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, fmt.Errorf("%w: output directory is required", domain.ErrConfig)
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure output directory: %v", domain.ErrStorage, err)
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Write persists the provided bytes under the given file name and returns
// the full path. Names must be plain file names; anything that would escape
// the output directory is rejected. Existing files are overwritten.
func (s *FileStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	if s == nil {
		return "", fmt.Errorf("%w: no store configured", domain.ErrConfig)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	cleanName, err := sanitizeName(name)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, cleanName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write file: %v", domain.ErrStorage, err)
	}
	return fullPath, nil
}

// sanitizeName rejects names that are empty or carry path components.
func sanitizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: file name is required", domain.ErrStorage)
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid file name %q", domain.ErrStorage, name)
	}
	return name, nil
}
