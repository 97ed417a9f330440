// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menyimpan access token yang sudah logout sebelum expired.
type TokenBlacklist struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string         `json:"token" gorm:"type:text;not null;index"`
	ExpiredAt time.Time      `json:"expired_at" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
