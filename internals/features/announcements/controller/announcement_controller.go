// file: internals/features/announcements/controller/announcement_controller.go
package controller

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annDTO "pengumumanku_backend/internals/features/announcements/dto"
	annService "pengumumanku_backend/internals/features/announcements/service"
	helper "pengumumanku_backend/internals/helpers"
	"pengumumanku_backend/internals/helpers/storage"
)

type AnnouncementController struct {
	DB     *gorm.DB
	Assets storage.AssetStore
}

func NewAnnouncementController(db *gorm.DB, assets storage.AssetStore) *AnnouncementController {
	return &AnnouncementController{DB: db, Assets: assets}
}

var validateAnnouncement = validator.New()

// ===================== LIST =====================
// GET /api/announcements
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	// Semua query param liar dinormalisasi di sini; listing tidak pernah
	// gagal karena input jelek.
	p := helper.ParseListParams(c)

	res, err := annService.ListAnnouncements(h.DB.WithContext(c.UserContext()), p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	pagination := helper.BuildPagination(res.Total, p.Page, p.PerPage, len(res.Items))
	return helper.JsonList(c, res.Items, pagination)
}

// ===================== SHOW =====================
// GET /api/announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	m, err := annService.FindAnnouncement(h.DB.WithContext(c.UserContext()), id)
	if err != nil {
		if errors.Is(err, annService.ErrAnnouncementNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}
	return helper.JsonOK(c, m)
}

// ===================== CREATE =====================
// POST /api/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req annDTO.CreateAnnouncementRequest
	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))

	// -------- Parse body --------
	if strings.HasPrefix(ct, "multipart/form-data") {
		req.Title = strings.TrimSpace(c.FormValue("title"))
		req.Content = c.FormValue("content")
		if v := strings.TrimSpace(c.FormValue("publish_at")); v != "" {
			req.PublishAt = &v
		}
		if v := strings.TrimSpace(c.FormValue("is_active")); v != "" {
			b := strings.EqualFold(v, "true") || v == "1"
			req.IsActive = &b
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
	}

	// -------- Validasi field --------
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}
	if req.PublishAt != nil {
		if _, err := annDTO.ParseDateTime(*req.PublishAt); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"publish_at": {"The publish at is not a valid date."},
			})
		}
	}

	// -------- Validasi gambar (mime + size) di boundary --------
	image, fieldErrs := readImageFile(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := annService.CreateAnnouncement(c.UserContext(), h.DB, h.Assets, req, image)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	return helper.JsonCreated(c, "Announcement created successfully", m)
}

// ===================== UPDATE =====================
// PUT /api/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	var req annDTO.UpdateAnnouncementRequest
	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))

	// parse payload (multipart / json) — presence key penting untuk publish_at
	if strings.HasPrefix(ct, "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
		if vals, ok := form.Value["title"]; ok && len(vals) > 0 {
			v := strings.TrimSpace(vals[0])
			req.Title = &v
		}
		if vals, ok := form.Value["content"]; ok && len(vals) > 0 {
			req.Content = &vals[0]
		}
		if vals, ok := form.Value["publish_at"]; ok {
			req.PublishAtSet = true
			if len(vals) > 0 {
				if v := strings.TrimSpace(vals[0]); v != "" {
					req.PublishAt = &v
				}
			}
		}
		if vals, ok := form.Value["is_active"]; ok && len(vals) > 0 {
			if v := strings.TrimSpace(vals[0]); v != "" {
				b := strings.EqualFold(v, "true") || v == "1"
				req.IsActive = &b
			}
		}
	} else {
		var raw map[string]any
		if err := c.BodyParser(&raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
		req, err = annDTO.UpdateRequestFromMap(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	if verrs := updateValidationMessages(req); verrs != nil {
		return helper.JsonValidationError(c, verrs)
	}

	image, fieldErrs := readImageFile(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := annService.UpdateAnnouncement(c.UserContext(), h.DB, h.Assets, id, req, image)
	if err != nil {
		if errors.Is(err, annService.ErrAnnouncementNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}

	return helper.JsonUpdated(c, "Announcement updated successfully", m)
}

// ===================== DELETE =====================
// DELETE /api/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	if err := annService.DeleteAnnouncement(c.UserContext(), h.DB, h.Assets, id); err != nil {
		if errors.Is(err, annService.ErrAnnouncementNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}

	return helper.JsonDeleted(c, "Announcement deleted successfully")
}

/* ===================== Utils ===================== */

// updateValidationMessages = validasi "sometimes" untuk update: key yang
// dikirim tapi kosong = gagal. Batas judul dihitung per karakter (rune),
// sama dengan rule max=255 milik validator di create. nil = lolos semua.
func updateValidationMessages(req annDTO.UpdateAnnouncementRequest) map[string][]string {
	verrs := map[string][]string{}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		verrs["title"] = append(verrs["title"], "The title field is required.")
	}
	if req.Title != nil && utf8.RuneCountInString(*req.Title) > 255 {
		verrs["title"] = append(verrs["title"], "The title may not be greater than 255 characters.")
	}
	if req.Content != nil && *req.Content == "" {
		verrs["content"] = append(verrs["content"], "The content field is required.")
	}
	if req.PublishAt != nil {
		if _, err := annDTO.ParseDateTime(*req.PublishAt); err != nil {
			verrs["publish_at"] = append(verrs["publish_at"], "The publish at is not a valid date.")
		}
	}
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

// readImageFile mengambil file "image" dari multipart (kalau ada) dan
// memvalidasi tipe + ukuran di boundary. nil, nil = tidak ada file.
func readImageFile(c *fiber.Ctx) ([]byte, map[string][]string) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil, nil
	}

	if fh.Size > storage.MaxImageSize {
		return nil, map[string][]string{
			"image": {"The image may not be greater than 2048 kilobytes."},
		}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, map[string][]string{"image": {"The image failed to upload."}}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, map[string][]string{"image": {"The image failed to upload."}}
	}

	if _, ok := storage.SniffImageType(data); !ok {
		return nil, map[string][]string{
			"image": {"The image must be a file of type: jpeg, png, jpg, gif, webp."},
		}
	}
	return data, nil
}

// validationMessages menerjemahkan error validator ke pesan per-field
// bergaya lama (klien sudah menampilkan string ini apa adanya).
func validationMessages(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["payload"] = []string{"Invalid input"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = append(out[field], "The "+field+" field is required.")
		case "max":
			out[field] = append(out[field], "The "+field+" may not be greater than "+fe.Param()+" characters.")
		default:
			out[field] = append(out[field], "The "+field+" is invalid.")
		}
	}
	return out
}
