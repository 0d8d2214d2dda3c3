// file: internals/features/announcements/service/announcement_lifecycle_service_test.go
package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengumumanku_backend/internals/helpers/storage"
)

func testImage(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

// Ganti gambar saat belum ada gambar lama: cukup simpan yang baru.
func TestReplaceImage_NoOldKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocalStore(t.TempDir(), "")

	key, err := ReplaceImage(ctx, store, nil, testImage(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "announcements/"))

	ok, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Protokol store-then-link: blob baru tersimpan, blob lama terhapus.
func TestReplaceImage_OldKeyCleanedUp(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocalStore(t.TempDir(), "")

	oldKey, err := store.Put(ctx, []byte("lama"), "announcements", "lama.webp")
	require.NoError(t, err)

	newKey, err := ReplaceImage(ctx, store, &oldKey, testImage(t))
	require.NoError(t, err)
	assert.NotEqual(t, oldKey, newKey)

	ok, err := store.Exists(ctx, newKey)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, oldKey)
	require.NoError(t, err)
	assert.False(t, ok, "blob lama harus sudah dihapus")
}

// Upload gagal (blob bukan gambar) tidak boleh menyentuh blob lama.
func TestReplaceImage_BadImageKeepsOld(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocalStore(t.TempDir(), "")

	oldKey, err := store.Put(ctx, []byte("lama"), "announcements", "lama.webp")
	require.NoError(t, err)

	_, err = ReplaceImage(ctx, store, &oldKey, []byte("bukan gambar"))
	require.Error(t, err)

	ok, err := store.Exists(ctx, oldKey)
	require.NoError(t, err)
	assert.True(t, ok, "blob lama tidak boleh tersentuh saat upload gagal")
}

func TestCleanupImage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocalStore(t.TempDir(), "")

	key, err := store.Put(ctx, []byte("x"), "announcements", "x.webp")
	require.NoError(t, err)

	CleanupImage(ctx, store, key)
	ok, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// Key yang sudah tidak ada: no-op tanpa panic.
	CleanupImage(ctx, store, key)
	CleanupImage(ctx, store, "announcements/tidak-pernah-ada.webp")
}
