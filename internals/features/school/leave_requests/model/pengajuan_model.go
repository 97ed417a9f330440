// file: internals/features/school/leave_requests/model/pengajuan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   PengajuanModel — pengajuan izin/sakit siswa
   Status: pending → approved / rejected (bisa direset admin).
   ======================================================= */

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type PengajuanModel struct {
	PengajuanID               uuid.UUID      `json:"pengajuan_id" gorm:"type:uuid;primaryKey;column:pengajuan_id;default:gen_random_uuid()"`
	PengajuanNIS              string         `json:"pengajuan_nis" gorm:"type:varchar(30);not null;index;column:pengajuan_nis"`
	PengajuanTanggalMulai     time.Time      `json:"pengajuan_tanggal_mulai" gorm:"type:date;not null;column:pengajuan_tanggal_mulai"`
	PengajuanTanggalSelesai   time.Time      `json:"pengajuan_tanggal_selesai" gorm:"type:date;not null;column:pengajuan_tanggal_selesai"`
	PengajuanAlasan           string         `json:"pengajuan_alasan" gorm:"type:varchar(50);not null;column:pengajuan_alasan"` // izin | sakit
	PengajuanKeterangan       string         `json:"pengajuan_keterangan" gorm:"type:text;column:pengajuan_keterangan"`
	PengajuanFilePendukung    string         `json:"pengajuan_file_pendukung" gorm:"type:text;column:pengajuan_file_pendukung"`
	PengajuanLampiranMeta     datatypes.JSON `json:"pengajuan_lampiran_meta" gorm:"type:jsonb;column:pengajuan_lampiran_meta"` // {nama_file, ukuran, content_type}
	PengajuanStatus           string         `json:"pengajuan_status" gorm:"type:varchar(20);not null;default:'pending';index;column:pengajuan_status"`
	PengajuanTanggalPengajuan time.Time      `json:"pengajuan_tanggal_pengajuan" gorm:"column:pengajuan_tanggal_pengajuan;not null;autoCreateTime"`
	PengajuanDisetujuiOleh    *string        `json:"pengajuan_disetujui_oleh" gorm:"type:varchar(30);column:pengajuan_disetujui_oleh"`
	PengajuanTanggalDisetujui *time.Time     `json:"pengajuan_tanggal_disetujui" gorm:"column:pengajuan_tanggal_disetujui"`
	CreatedAt                 time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt                 time.Time      `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt                 gorm.DeletedAt `json:"deleted_at" gorm:"column:deleted_at;index"`
}

func (PengajuanModel) TableName() string {
	return "pengajuan_izin"
}
