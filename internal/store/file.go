package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File implements Provider with one JSON file per key under a data
// directory. Writes are atomic: tmp file, fsync, rename.
type File struct {
	root string // absolute path to the data directory
}

// NewFile creates a file-backed store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	return &File{root: abs}, nil
}

// Root returns the absolute data directory, for watchers.
func (f *File) Root() string {
	return f.root
}

// keyPath maps a key to its file. Keys are opaque identifiers, not paths;
// separators and traversal sequences are rejected outright.
func (f *File) keyPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("store: empty key")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("store: invalid key %q", key)
	}
	return filepath.Join(f.root, key+".json"), nil
}

// KeyForFile returns the store key a data file corresponds to, or ok=false
// for files that are not key files (temp files, stray content).
func KeyForFile(path string) (string, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}

// Load reads the value at key.
func (f *File) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path, err := f.keyPath(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, true, nil
}

// Save atomically replaces the value at key: tmp file, fsync, rename.
func (f *File) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".tessera-tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}

// Clear removes every key file. Non-key files in the directory survive.
func (f *File) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := KeyForFile(e.Name()); !ok {
			continue
		}
		if err := os.Remove(filepath.Join(f.root, e.Name())); err != nil {
			return fmt.Errorf("store: clear %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *File) Close() error {
	return nil
}
