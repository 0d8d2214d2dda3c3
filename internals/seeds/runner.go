package seeds

import (
	"gorm.io/gorm"

	announcements "pengumumanku_backend/internals/seeds/announcements"
	users "pengumumanku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* Users (admin)
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Announcements (contoh konten rich-text)
	announcements.SeedAnnouncementsFromJSON(db, "internals/seeds/announcements/data_announcements.json")
}
