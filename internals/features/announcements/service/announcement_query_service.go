// file: internals/features/announcements/service/announcement_query_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	model "pengumumanku_backend/internals/features/announcements/model"
	helper "pengumumanku_backend/internals/helpers"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type ListResult struct {
	Items []model.AnnouncementModel
	Total int64
}

// ListAnnouncements membangun listing terfilter + tersortir + terpaginasi.
// Parameter sudah dinormalisasi oleh helper.ParseListParams, jadi SortBy /
// SortOrder dijamin aman dipakai langsung di ORDER BY.
func ListAnnouncements(db *gorm.DB, p helper.ListParams) (ListResult, error) {
	q := db.Model(&model.AnnouncementModel{})

	// Search: substring case-insensitive di title ATAU content
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	items := make([]model.AnnouncementModel, 0, p.PerPage)
	if err := q.
		Order(p.OrderClause()).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total}, nil
}

// FindAnnouncement mengambil satu record; ErrAnnouncementNotFound kalau tidak ada.
func FindAnnouncement(db *gorm.DB, id uint64) (*model.AnnouncementModel, error) {
	var m model.AnnouncementModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &m, nil
}
