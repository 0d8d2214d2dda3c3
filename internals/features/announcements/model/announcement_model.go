// file: internals/features/announcements/model/announcement_model.go
package model

import (
	"time"
)

// AnnouncementModel memetakan tabel announcements.
// Nama kolom & key JSON sengaja tanpa prefix mengikuti skema lama
// supaya payload API tetap kompatibel dengan klien yang sudah ada.
type AnnouncementModel struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title   string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content string `gorm:"column:content;type:text;not null" json:"content"` // rich-text HTML, disimpan verbatim

	ImagePath *string    `gorm:"column:image_path;type:varchar(255)" json:"image_path"`
	PublishAt *time.Time `gorm:"column:publish_at;type:timestamptz" json:"publish_at"`
	// Default "aktif" hidup di DTO (ToModel), BUKAN di tag default GORM:
	// tag default membuat GORM menganggap false sebagai "belum diisi" dan
	// menimpanya dengan true saat insert.
	IsActive bool `gorm:"column:is_active;type:boolean;not null" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
