// file: internals/features/school/leave_requests/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ReportModel — proyeksi izin yang sudah disetujui
   Diisi otomatis saat approval; laporan membaca tabel ini,
   bukan pengajuan_izin langsung.
   ======================================================= */

type ReportModel struct {
	ReportID             uuid.UUID `json:"report_id" gorm:"type:uuid;primaryKey;column:report_id;default:gen_random_uuid()"`
	ReportPengajuanID    uuid.UUID `json:"report_pengajuan_id" gorm:"type:uuid;not null;uniqueIndex;column:report_pengajuan_id"`
	ReportNIS            string    `json:"report_nis" gorm:"type:varchar(30);not null;index;column:report_nis"`
	ReportNama           string    `json:"report_nama" gorm:"type:varchar(100);not null;column:report_nama"`
	ReportKelas          string    `json:"report_kelas" gorm:"type:varchar(50);not null;index;column:report_kelas"`
	ReportIzin           bool      `json:"report_izin" gorm:"type:boolean;not null;default:true;column:report_izin"`
	ReportTanggalMulai   time.Time `json:"report_tanggal_mulai" gorm:"type:date;not null;column:report_tanggal_mulai"`
	ReportTanggalSelesai time.Time `json:"report_tanggal_selesai" gorm:"type:date;not null;column:report_tanggal_selesai"`
	CreatedAt            time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
}

func (ReportModel) TableName() string {
	return "report"
}
