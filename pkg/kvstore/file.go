package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON file. Every mutation rewrites the
// file before returning, so a process restart observes the last completed
// write. Suited for desktop/CLI frontends where browser storage would have
// been used.
type File struct {
	path  string
	items map[string]string
	mu    sync.Mutex
}

// NewFile opens (or creates) a file-backed store at path. An unreadable or
// corrupt file is treated as empty rather than failing: persisted client
// state is always recoverable by starting over.
func NewFile(path string) (*File, error) {
	f := &File{
		path:  path,
		items: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, errors.Join(ErrReadFailed, err)
	}

	if err := json.Unmarshal(data, &f.items); err != nil {
		// Corrupt state file: start fresh.
		f.items = make(map[string]string)
	}

	return f, nil
}

// Get retrieves the value stored under key.
func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key and flushes the file.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items[key] = value
	return f.flush()
}

// Remove deletes key and flushes the file.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[key]; !ok {
		return nil
	}
	delete(f.items, key)
	return f.flush()
}

// flush writes the current map atomically via a temp file rename.
// Caller must hold the mutex.
func (f *File) flush() error {
	data, err := json.Marshal(f.items)
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

var _ Store = (*File)(nil)
