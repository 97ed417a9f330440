// file: internals/features/school/schedules/model/jadwal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   JadwalModel — jadwal pelajaran per kelas & hari
   Keterangan berisi rentang jam bebas-teks ("07:00–08:30");
   parsing dilakukan di service, bukan di DB.
   ======================================================= */

type JadwalModel struct {
	JadwalID         uuid.UUID      `json:"jadwal_id" gorm:"type:uuid;primaryKey;column:jadwal_id;default:gen_random_uuid()"`
	JadwalKelas      string         `json:"jadwal_kelas" gorm:"type:varchar(50);not null;index;column:jadwal_kelas"`
	JadwalHari       string         `json:"jadwal_hari" gorm:"type:varchar(10);not null;index;column:jadwal_hari"` // Senin..Jumat
	JadwalMapel      string         `json:"jadwal_mapel" gorm:"type:varchar(100);not null;column:jadwal_mapel"`
	JadwalGuru       string         `json:"jadwal_guru" gorm:"type:varchar(100);column:jadwal_guru"`
	JadwalBanyakJam  int            `json:"jadwal_banyak_jam" gorm:"type:int;not null;default:1;column:jadwal_banyak_jam"`
	JadwalKeterangan string         `json:"jadwal_keterangan" gorm:"type:text;column:jadwal_keterangan"`
	CreatedAt        time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"column:deleted_at;index"`
}

func (JadwalModel) TableName() string {
	return "jadwal"
}
