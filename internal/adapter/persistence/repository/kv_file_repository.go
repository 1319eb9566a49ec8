package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"plan_appetit/internal/usecase/interfaces"
	"strings"
)

// KVFileRepository stores each key in its own file under basePath/<namespace>/.
type KVFileRepository struct {
	dir string
}

var _ interfaces.IKeyValueStore = (*KVFileRepository)(nil)

// NewKVFileRepository creates the namespace directory if needed.
func NewKVFileRepository(basePath, namespace string) (*KVFileRepository, error) {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = defaultNamespace
	}

	dir := filepath.Join(basePath, sanitizeFileName(namespace))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &KVFileRepository{dir: dir}, nil
}

func (r *KVFileRepository) path(key string) string {
	return filepath.Join(r.dir, sanitizeFileName(key)+".json")
}

func (r *KVFileRepository) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key file: %w", err)
	}
	return string(data), true, nil
}

// Set writes through a temporary file and renames it so readers never see a
// half-written document.
func (r *KVFileRepository) Set(_ context.Context, key, value string) error {
	target := r.path(key)

	tmp, err := os.CreateTemp(r.dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close key file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace key file: %w", err)
	}
	return nil
}

// sanitizeFileName makes a key safe for filenames.
func sanitizeFileName(s string) string {
	return strings.NewReplacer("/", "_", "\\", "_", ":", "-", "..", "_").Replace(s)
}
