package announcements

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"pengumumanku_backend/internals/features/announcements/model"
)

type AnnouncementSeed struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"` // rich-text HTML, simulasi hasil text editor
	PublishAt *string `json:"publish_at"`
	IsActive  bool    `json:"is_active"`
}

func SeedAnnouncementsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file announcements:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []AnnouncementSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	// Kalau sudah ada isinya, jangan dobel
	var count int64
	if err := db.Model(&model.AnnouncementModel{}).Count(&count).Error; err != nil {
		log.Fatalf("❌ Gagal cek announcements existing: %v", err)
	}
	if count > 0 {
		log.Printf("ℹ️ Tabel announcements sudah berisi %d baris, seed dilewati.", count)
		return
	}

	var rows []model.AnnouncementModel
	for _, s := range seeds {
		row := model.AnnouncementModel{
			Title:    s.Title,
			Content:  s.Content,
			IsActive: s.IsActive,
		}
		if s.PublishAt != nil && *s.PublishAt != "" {
			if t, err := time.Parse("2006-01-02 15:04:05", *s.PublishAt); err == nil {
				row.PublishAt = &t
			} else {
				log.Printf("⚠️ publish_at tidak valid (%s), dikosongkan", *s.PublishAt)
			}
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			log.Fatalf("❌ Gagal insert announcements: %v", err)
		}
		log.Printf("✅ Berhasil insert %d announcements", len(rows))
	} else {
		log.Println("ℹ️ Tidak ada data announcement untuk diinsert.")
	}
}
