package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists each key as <dir>/<key>.json. It is the default
// backend: a single-session local store with no external service to run.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Keys are fixed store names, but sanitize anyway so a key can never
// escape the data directory.
func safeName(key string) string {
	return strings.ReplaceAll(key, string(os.PathSeparator), "_")
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, safeName(key)+".json")
}

// Load reads the document for key. A missing or unreadable file is
// reported as absent, not as an error.
func (fs *FileStore) Load(ctx context.Context, key string) (json.RawMessage, bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	raw, err := os.ReadFile(fs.path(key))
	if err != nil {
		return nil, false, nil
	}
	return raw, true, nil
}

// Save writes the document atomically via a temp file and rename, so a
// crash mid-write never leaves a truncated record behind.
func (fs *FileStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	target := fs.path(key)
	tmp, err := os.CreateTemp(fs.dir, safeName(key)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}
