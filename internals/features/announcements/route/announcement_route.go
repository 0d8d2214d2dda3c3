// file: internals/features/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annCtl "pengumumanku_backend/internals/features/announcements/controller"
	"pengumumanku_backend/internals/helpers/storage"
)

// Rute PUBLIC: semua orang boleh melihat pengumuman
func AnnouncementPublicRoutes(r fiber.Router, db *gorm.DB, assets storage.AssetStore) {
	ann := annCtl.NewAnnouncementController(db, assets)

	r.Get("/announcements", ann.List)
	r.Get("/announcements/:id", ann.GetByID)
}

// Rute ADMIN. Path-nya sama dengan rute public (beda method), jadi auth
// dipasang per-route, bukan lewat group, supaya GET tetap terbuka.
func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB, assets storage.AssetStore, authMW fiber.Handler) {
	ann := annCtl.NewAnnouncementController(db, assets)

	r.Post("/announcements", authMW, ann.Create)
	r.Put("/announcements/:id", authMW, ann.Update)
	r.Delete("/announcements/:id", authMW, ann.Delete)
}
