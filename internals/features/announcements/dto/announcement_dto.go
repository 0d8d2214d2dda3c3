// file: internals/features/announcements/dto/announcement_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	model "pengumumanku_backend/internals/features/announcements/model"
)

/* ===================== REQUESTS ===================== */

// Create: image TIDAK lewat DTO ini — file multipart ditangani controller.
type CreateAnnouncementRequest struct {
	Title     string  `json:"title" form:"title" validate:"required,max=255"`
	Content   string  `json:"content" form:"content" validate:"required"`
	PublishAt *string `json:"publish_at" form:"publish_at" validate:"omitempty"`
	IsActive  *bool   `json:"is_active" form:"is_active" validate:"omitempty"`
}

// ToModel: builder untuk create — image_path diisi controller setelah upload.
func (r CreateAnnouncementRequest) ToModel() (*model.AnnouncementModel, error) {
	m := &model.AnnouncementModel{
		Title:    strings.TrimSpace(r.Title),
		Content:  r.Content,
		IsActive: true, // default aktif
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.PublishAt != nil && strings.TrimSpace(*r.PublishAt) != "" {
		t, err := ParseDateTime(*r.PublishAt)
		if err != nil {
			return nil, err
		}
		m.PublishAt = &t
	}
	return m, nil
}

/* ===================== UPDATE (partial) ===================== */

// Semua field opsional. publish_at punya semantik khusus: kalau KEY-nya
// dikirim (meski null/kosong) maka nilai lama ditimpa — PublishAtSet
// membedakan "tidak dikirim" dari "dikirim kosong".
type UpdateAnnouncementRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	Content   *string `json:"content" validate:"omitempty"`
	PublishAt *string `json:"publish_at" validate:"omitempty"`
	IsActive  *bool   `json:"is_active" validate:"omitempty"`

	PublishAtSet bool `json:"-"`
}

// FromMap membangun request update dari body yang sudah di-decode ke map,
// supaya presence key bisa dicek (BodyParser biasa tidak bisa membedakan
// field absen vs null).
func UpdateRequestFromMap(raw map[string]any) (UpdateAnnouncementRequest, error) {
	var req UpdateAnnouncementRequest

	if v, ok := raw["title"]; ok {
		s, err := asString(v, "title")
		if err != nil {
			return req, err
		}
		req.Title = &s
	}
	if v, ok := raw["content"]; ok {
		s, err := asString(v, "content")
		if err != nil {
			return req, err
		}
		req.Content = &s
	}
	if v, ok := raw["publish_at"]; ok {
		req.PublishAtSet = true
		if v != nil {
			s, err := asString(v, "publish_at")
			if err != nil {
				return req, err
			}
			if strings.TrimSpace(s) != "" {
				req.PublishAt = &s
			}
		}
	}
	if v, ok := raw["is_active"]; ok && v != nil {
		b, err := asBool(v)
		if err != nil {
			return req, err
		}
		req.IsActive = &b
	}
	return req, nil
}

// BuildUpdates menyusun map kolom→nilai untuk satu kali GORM Updates.
// Merge per-field: title/content hanya kalau dikirim non-kosong,
// publish_at ditimpa kalau key-nya ada (kosong = clear), is_active kalau ada.
func (r UpdateAnnouncementRequest) BuildUpdates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if r.Title != nil && strings.TrimSpace(*r.Title) != "" {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil && *r.Content != "" {
		updates["content"] = *r.Content
	}
	if r.PublishAtSet {
		if r.PublishAt == nil {
			updates["publish_at"] = nil // clear
		} else {
			t, err := ParseDateTime(*r.PublishAt)
			if err != nil {
				return nil, err
			}
			updates["publish_at"] = t
		}
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates, nil
}

/* ===================== UTIL ===================== */

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDateTime menerima beberapa format tanggal umum dari form/JSON.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format tanggal tidak valid: %q", s)
}

func asString(v any, field string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s harus string", field)
	}
	return s, nil
}

func asBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		if strings.EqualFold(t, "true") || t == "1" {
			return true, nil
		}
		if strings.EqualFold(t, "false") || t == "0" {
			return false, nil
		}
	case float64:
		return t != 0, nil
	}
	return false, fmt.Errorf("field is_active harus boolean")
}
