// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pengumumanku_backend/internals/features/users/auth/controller"
	rateLimiter "pengumumanku_backend/internals/middlewares"
)

// AuthPublicRoutes: login (rate-limited ketat)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	r.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
}

// AuthProtectedRoutes: logout (di belakang auth middleware)
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB, authMW fiber.Handler) {
	authController := controller.NewAuthController(db)

	r.Post("/logout", authMW, authController.Logout)
}
