// file: internals/features/school/students/model/siswa_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   SiswaModel — roster siswa per kelas
   NIS dipakai sebagai identitas login & kunci kehadiran.
   ======================================================= */

type SiswaModel struct {
	SiswaID       uuid.UUID      `json:"siswa_id" gorm:"type:uuid;primaryKey;column:siswa_id;default:gen_random_uuid()"`
	SiswaNIS      string         `json:"siswa_nis" gorm:"type:varchar(20);not null;uniqueIndex;column:siswa_nis"`
	SiswaNISN     string         `json:"siswa_nisn" gorm:"type:varchar(20);column:siswa_nisn"`
	SiswaNama     string         `json:"siswa_nama" gorm:"type:varchar(100);not null;column:siswa_nama"`
	SiswaKelas    string         `json:"siswa_kelas" gorm:"type:varchar(50);not null;index;column:siswa_kelas"`
	SiswaPassword string         `json:"-" gorm:"type:text;not null;column:siswa_password"`
	SiswaIsActive bool           `json:"siswa_is_active" gorm:"type:boolean;not null;default:true;column:siswa_is_active"`
	CreatedAt     time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"column:deleted_at;index"`
}

func (SiswaModel) TableName() string {
	return "siswa"
}
