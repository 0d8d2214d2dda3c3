package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pengumumanku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"` // plaintext di file seed, di-hash saat insert
	UserIsActive bool   `json:"user_is_active"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file users:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []UserSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var existing model.UserModel
		if err := db.Where("user_email = ?", s.UserEmail).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User %s sudah ada, lewati...", s.UserEmail)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Gagal hash password utk %s: %v", s.UserEmail, err)
		}

		newUser := model.UserModel{
			UserName:     s.UserName,
			UserEmail:    s.UserEmail,
			UserPassword: string(hash),
			UserIsActive: s.UserIsActive,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user %s: %v", s.UserEmail, err)
		} else {
			log.Printf("✅ Berhasil insert user %s", newUser.UserEmail)
		}
	}
}
