// Package filekv provides a durable storage.KV backend with one file per key.
package filekv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"todostate/pkg/storage"
)

// Store persists each key as a JSON file inside a directory.
type Store struct {
	dir string
}

// New creates a file-backed store rooted at dir.
// The directory is created with mode 0700 if it does not exist.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Get implements storage.KV.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set implements storage.KV. Values are written with mode 0600.
func (s *Store) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0600)
}

// Delete implements storage.KV.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Close implements storage.KV.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
