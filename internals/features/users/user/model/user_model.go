// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserIsActive bool      `gorm:"column:user_is_active;type:boolean;not null" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
