// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "pengumumanku_backend/internals/features/users/auth/model"
	userModel "pengumumanku_backend/internals/features/users/user/model"
	helper "pengumumanku_backend/internals/helpers"
)

// ========================== LOGIN ==========================
// POST /api/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if input.Email == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var user userModel.UserModel
	if err := db.Where("user_email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, expiresAt, err := helper.IssueAccessToken(user.UserID, user.UserName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonSuccessMessage(c, "Login successful", fiber.Map{
		"token":      token,
		"expires_at": expiresAt,
		"user": fiber.Map{
			"id":    user.UserID,
			"name":  user.UserName,
			"email": user.UserEmail,
		},
	})
}

// ========================== LOGOUT ==========================
// POST /api/logout (di belakang auth middleware)
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken, _ := c.Locals("access_token").(string)
	if accessToken == "" {
		// idempotent: tanpa token tetap dianggap sukses
		log.Println("[INFO] Logout tanpa access token")
		return helper.JsonSuccessMessage(c, "Logout successful", nil)
	}

	entry := authModel.TokenBlacklistModel{
		Token:     accessToken,
		ExpiredAt: helper.TokenExpiry(accessToken).Add(time.Minute),
	}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist → tetap sukses
		log.Printf("[WARN] Failed to blacklist token: %v", err)
	}

	return helper.JsonSuccessMessage(c, "Logout successful", nil)
}
