// file: internals/helpers/storage/local_store.go
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore = AssetStore berbasis disk lokal (untuk dev & test).
// Key tetap relatif, path fisik = root + key.
type LocalStore struct {
	Root       string
	PublicBase string
}

func NewLocalStore(root, publicBase string) *LocalStore {
	return &LocalStore{Root: root, PublicBase: strings.TrimRight(publicBase, "/")}
}

func (s *LocalStore) Put(ctx context.Context, data []byte, dir, filename string) (string, error) {
	key := strings.Trim(dir, "/") + "/" + filename
	full := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return key, nil
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.Root, filepath.FromSlash(key)))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(key)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	return "/" + key
}
