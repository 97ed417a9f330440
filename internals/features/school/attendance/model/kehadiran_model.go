// file: internals/features/school/attendance/model/kehadiran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type KehadiranModel struct {
	KehadiranID         uuid.UUID `json:"kehadiran_id" gorm:"type:uuid;primaryKey;column:kehadiran_id;default:gen_random_uuid()"`
	KehadiranNIS        string    `json:"kehadiran_nis" gorm:"type:varchar(30);not null;index;column:kehadiran_nis"`
	KehadiranNama       string    `json:"kehadiran_nama" gorm:"type:varchar(100);not null;column:kehadiran_nama"`
	KehadiranKelas      string    `json:"kehadiran_kelas" gorm:"type:varchar(50);not null;index;column:kehadiran_kelas"`
	KehadiranStatus     string    `json:"kehadiran_status" gorm:"type:varchar(30);not null;column:kehadiran_status"`
	KehadiranWaktuAbsen time.Time `json:"kehadiran_waktu_absen" gorm:"column:kehadiran_waktu_absen;not null;index"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
}

func (KehadiranModel) TableName() string {
	return "kehadiran"
}
