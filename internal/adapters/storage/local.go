// internal/adapters/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage implements StorageClient on the local filesystem. It
// backs development runs without MinIO and keeps the export pipeline
// testable without network access.
type LocalStorage struct {
	basePath string
	logger   *slog.Logger
}

// NewLocalStorage creates a new local storage client rooted at basePath
func NewLocalStorage(basePath string, logger *slog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: basePath,
		logger:   logger.With(slog.String("storage", "local")),
	}, nil
}

func (l *LocalStorage) path(key string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(key))
}

// Upload writes the data to a file under the base path
func (l *LocalStorage) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	path := l.path(key)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", key, err)
	}

	l.logger.InfoContext(ctx, "file stored locally", slog.String("key", key))
	return path, nil
}

// Download reads a stored file back
func (l *LocalStorage) Download(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(l.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", key, err)
	}
	return data, nil
}

// Delete removes a stored file
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}

// DeleteMultiple removes a batch of stored files
func (l *LocalStorage) DeleteMultiple(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := l.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// GetPresignedURL returns a file:// URL. Local storage has no notion of
// expiry; the duration is accepted for interface compatibility.
func (l *LocalStorage) GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	if _, err := os.Stat(l.path(key)); err != nil {
		return "", fmt.Errorf("file %s not found: %w", key, err)
	}
	return "file://" + l.path(key), nil
}

// List returns keys under a prefix
func (l *LocalStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	root := l.basePath
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list local files: %w", err)
	}

	return keys, nil
}

// ListWithAge returns keys under a prefix whose files are older than
// the cutoff
func (l *LocalStorage) ListWithAge(ctx context.Context, prefix string, olderThan time.Time) ([]string, error) {
	keys, err := l.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var old []string
	for _, key := range keys {
		info, err := os.Stat(l.path(key))
		if err != nil {
			continue
		}
		if info.ModTime().Before(olderThan) {
			old = append(old, key)
		}
	}
	return old, nil
}

// Exists checks whether a file is present
func (l *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(l.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
