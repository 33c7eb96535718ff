// Package model contains GORM-specific database models.
// These models include GORM tags and are used exclusively by the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the users table. It carries the
// credential pair alongside the directory profile fields.
type UserModel struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	Email             string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string    `gorm:"column:password_hash;type:varchar(64);not null"`
	PasswordSalt      string    `gorm:"column:password_salt;type:varchar(32);not null"`
	Role              string    `gorm:"column:role;type:varchar(20);not null"`
	DisplayName       string    `gorm:"column:display_name;type:varchar(255);not null"`
	PhoneNumber       string    `gorm:"column:phone_number;type:varchar(50)"`
	Address           string    `gorm:"column:address;type:varchar(500)"`
	ProfilePictureURL string    `gorm:"column:profile_picture_url;type:varchar(500)"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
