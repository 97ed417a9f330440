// file: internals/features/users/auth/model/pengguna_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   PenggunaModel — akun non-siswa (admin/wali kelas)
   Siswa login lewat tabel siswa (fitur school/students).
   ======================================================= */

type PenggunaModel struct {
	PenggunaID       uuid.UUID      `json:"pengguna_id" gorm:"type:uuid;primaryKey;column:pengguna_id;default:gen_random_uuid()"`
	PenggunaUsername string         `json:"pengguna_username" gorm:"type:varchar(50);not null;uniqueIndex;column:pengguna_username"`
	PenggunaNama     string         `json:"pengguna_nama" gorm:"type:varchar(100);not null;column:pengguna_nama"`
	PenggunaPassword string         `json:"-" gorm:"type:text;not null;column:pengguna_password"`
	PenggunaRole     string         `json:"pengguna_role" gorm:"type:varchar(20);not null;default:'admin';column:pengguna_role"`
	PenggunaIsActive bool           `json:"pengguna_is_active" gorm:"type:boolean;not null;default:true;column:pengguna_is_active"`
	CreatedAt        time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"column:deleted_at;index"`
}

func (PenggunaModel) TableName() string {
	return "pengguna"
}
