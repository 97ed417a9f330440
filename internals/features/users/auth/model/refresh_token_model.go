// file: internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefreshToken struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subject   string         `json:"subject" gorm:"type:varchar(50);not null;index"` // NIS siswa atau username admin
	Token     string         `json:"token" gorm:"type:text;not null;uniqueIndex"`
	ExpiredAt time.Time      `json:"expired_at" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
