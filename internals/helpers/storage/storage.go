// file: internals/helpers/storage/storage.go
package storage

import (
	"context"
	"os"
	"strings"
)

// AssetStore = blob storage untuk gambar pengumuman. Key relatif
// (mis. "announcements/xxx.webp") yang disimpan di kolom image_path.
type AssetStore interface {
	// Put menyimpan data dan mengembalikan object key-nya.
	Put(ctx context.Context, data []byte, dir, filename string) (key string, err error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// NewAssetStoreFromEnv memilih backend dari STORAGE_DRIVER:
// "local" → disk lokal (dev), selain itu → Aliyun OSS.
func NewAssetStoreFromEnv() (AssetStore, error) {
	if strings.EqualFold(os.Getenv("STORAGE_DRIVER"), "local") {
		dir := os.Getenv("STORAGE_LOCAL_DIR")
		if dir == "" {
			dir = "./storage/public"
		}
		return NewLocalStore(dir, os.Getenv("STORAGE_PUBLIC_BASE")), nil
	}
	return NewOSSStoreFromEnv()
}
