// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annRoute "pengumumanku_backend/internals/features/announcements/route"
	authRoute "pengumumanku_backend/internals/features/users/auth/route"
	"pengumumanku_backend/internals/helpers/storage"
	authMiddleware "pengumumanku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// AssetStore dari ENV (OSS di produksi, local disk utk dev)
	assets, err := storage.NewAssetStoreFromEnv()
	if err != nil {
		log.Fatalf("❌ AssetStore tidak siap: %v", err)
	}

	api := app.Group("/api")

	// Welcome (public)
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Digital Announce System API",
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	authRoute.AuthPublicRoutes(api, db)
	annRoute.AnnouncementPublicRoutes(api, db, assets)

	// ===================== PROTECTED (JWT per-route) =====================
	// Path write sama dengan path read (beda method), jadi middleware auth
	// dipasang per-route, bukan per-group.
	log.Println("[INFO] Setting up PROTECTED routes...")
	authMW := authMiddleware.AuthMiddleware(db)
	authRoute.AuthProtectedRoutes(api, db, authMW)
	annRoute.AnnouncementAdminRoutes(api, db, assets, authMW)
}
