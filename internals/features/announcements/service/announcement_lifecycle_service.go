// file: internals/features/announcements/service/announcement_lifecycle_service.go
package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	dto "pengumumanku_backend/internals/features/announcements/dto"
	model "pengumumanku_backend/internals/features/announcements/model"
	"pengumumanku_backend/internals/helpers/storage"
)

const imageDir = "announcements"

// CreateAnnouncement: upload gambar dulu (kalau ada), baru insert record
// dengan key-nya. Kalau insert gagal setelah upload sukses, blob yang sudah
// tersimpan dibiarkan (perilaku lama; tidak ada compensating delete).
func CreateAnnouncement(ctx context.Context, db *gorm.DB, store storage.AssetStore, req dto.CreateAnnouncementRequest, image []byte) (*model.AnnouncementModel, error) {
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	if len(image) > 0 {
		key, err := storeImage(ctx, store, image)
		if err != nil {
			return nil, err
		}
		m.ImagePath = &key
	}

	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateAnnouncement: NotFound dicek sebelum kerja lain. Merge field
// per-key, lalu satu kali Updates. Penggantian gambar mengikuti protokol
// store-then-link: simpan blob baru → hapus blob lama (kalau masih ada) →
// assign key baru. Jangan pernah hapus duluan.
func UpdateAnnouncement(ctx context.Context, db *gorm.DB, store storage.AssetStore, id uint64, req dto.UpdateAnnouncementRequest, image []byte) (*model.AnnouncementModel, error) {
	existing, err := FindAnnouncement(db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	updates, err := req.BuildUpdates()
	if err != nil {
		return nil, err
	}

	if len(image) > 0 {
		newKey, err := ReplaceImage(ctx, store, existing.ImagePath, image)
		if err != nil {
			return nil, err
		}
		updates["image_path"] = newKey
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	// Reload agar updated_at terbaru ikut
	return FindAnnouncement(db.WithContext(ctx), existing.ID)
}

// DeleteAnnouncement: hapus blob gambar (best-effort) lalu record.
// Gagal hapus blob tidak membatalkan penghapusan record.
func DeleteAnnouncement(ctx context.Context, db *gorm.DB, store storage.AssetStore, id uint64) error {
	existing, err := FindAnnouncement(db.WithContext(ctx), id)
	if err != nil {
		return err
	}

	if existing.ImagePath != nil {
		CleanupImage(ctx, store, *existing.ImagePath)
	}

	return db.WithContext(ctx).Delete(&model.AnnouncementModel{}, "id = ?", existing.ID).Error
}

/* ===================== Image asset protocol ===================== */

// ReplaceImage menjalankan urutan ganti-gambar yang aman terhadap kegagalan:
// blob baru harus tersimpan dulu sebelum blob lama disentuh, sehingga gagal
// upload tidak pernah menghancurkan gambar lama yang masih valid.
func ReplaceImage(ctx context.Context, store storage.AssetStore, oldKey *string, image []byte) (string, error) {
	newKey, err := storeImage(ctx, store, image)
	if err != nil {
		return "", err
	}
	if oldKey != nil && *oldKey != "" {
		CleanupImage(ctx, store, *oldKey)
	}
	return newKey, nil
}

// CleanupImage menghapus blob kalau memang ada; kegagalan hanya dicatat.
func CleanupImage(ctx context.Context, store storage.AssetStore, key string) {
	ok, err := store.Exists(ctx, key)
	if err != nil {
		log.Printf("[WARN] cek blob %s gagal: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := store.Delete(ctx, key); err != nil {
		log.Printf("[WARN] hapus blob %s gagal: %v", key, err)
	}
}

func storeImage(ctx context.Context, store storage.AssetStore, image []byte) (string, error) {
	blob, filename, err := storage.PrepareImage(image)
	if err != nil {
		return "", err
	}
	return store.Put(ctx, blob, imageDir, filename)
}
