// file: internals/features/announcements/controller/announcement_controller_test.go
package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	annDTO "pengumumanku_backend/internals/features/announcements/dto"
)

func strPtr(s string) *string { return &s }

func TestUpdateValidation_TitleRuneLimit(t *testing.T) {
	// 255 karakter multibyte (>255 byte) harus lolos — batasnya per
	// karakter, konsisten dengan rule max=255 di create.
	req := annDTO.UpdateAnnouncementRequest{Title: strPtr(strings.Repeat("ñ", 255))}
	assert.Nil(t, updateValidationMessages(req))

	req = annDTO.UpdateAnnouncementRequest{Title: strPtr(strings.Repeat("ñ", 256))}
	verrs := updateValidationMessages(req)
	assert.Contains(t, verrs, "title")
	assert.Contains(t, verrs["title"], "The title may not be greater than 255 characters.")
}

func TestUpdateValidation_SometimesRequired(t *testing.T) {
	// Key dikirim tapi kosong = gagal.
	req := annDTO.UpdateAnnouncementRequest{Title: strPtr("   ")}
	verrs := updateValidationMessages(req)
	assert.Contains(t, verrs["title"], "The title field is required.")

	req = annDTO.UpdateAnnouncementRequest{Content: strPtr("")}
	verrs = updateValidationMessages(req)
	assert.Contains(t, verrs["content"], "The content field is required.")

	// Key tidak dikirim sama sekali = lolos.
	assert.Nil(t, updateValidationMessages(annDTO.UpdateAnnouncementRequest{}))
}

func TestUpdateValidation_PublishAt(t *testing.T) {
	req := annDTO.UpdateAnnouncementRequest{PublishAt: strPtr("besok pagi"), PublishAtSet: true}
	verrs := updateValidationMessages(req)
	assert.Contains(t, verrs["publish_at"], "The publish at is not a valid date.")

	req = annDTO.UpdateAnnouncementRequest{PublishAt: strPtr("2025-08-17 07:00:00"), PublishAtSet: true}
	assert.Nil(t, updateValidationMessages(req))
}
