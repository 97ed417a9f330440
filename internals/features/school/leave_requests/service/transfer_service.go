// file: internals/features/school/leave_requests/service/transfer_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/features/school/leave_requests/model"
	siswaModel "absensiku_backend/internals/features/school/students/model"
)

/* =======================================================
   Transfer pengajuan yang disetujui ke tabel report
   ======================================================= */

var ErrNotApproved = errors.New("pengajuan belum berstatus approved")

// TransferApprovedToReport menyalin satu pengajuan approved menjadi baris
// report (sumber hitungan izin di laporan). Idempoten: dipanggil ulang
// untuk pengajuan yang sama tidak membuat baris kedua.
func TransferApprovedToReport(db *gorm.DB, pengajuanID uuid.UUID) error {
	var p model.PengajuanModel
	if err := db.First(&p, "pengajuan_id = ?", pengajuanID).Error; err != nil {
		return fmt.Errorf("cari pengajuan: %w", err)
	}
	if p.PengajuanStatus != model.StatusApproved {
		return ErrNotApproved
	}

	var siswa siswaModel.SiswaModel
	if err := db.Where("siswa_nis = ?", p.PengajuanNIS).First(&siswa).Error; err != nil {
		return fmt.Errorf("cari siswa %s: %w", p.PengajuanNIS, err)
	}

	row := model.ReportModel{
		ReportPengajuanID:    p.PengajuanID,
		ReportNIS:            siswa.SiswaNIS,
		ReportNama:           siswa.SiswaNama,
		ReportKelas:          siswa.SiswaKelas,
		ReportIzin:           true,
		ReportTanggalMulai:   p.PengajuanTanggalMulai,
		ReportTanggalSelesai: p.PengajuanTanggalSelesai,
	}
	// Konflik di report_pengajuan_id berarti sudah ditransfer; biarkan.
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_pengajuan_id"}},
		DoNothing: true,
	}).Create(&row).Error
}

// RemoveFromReport membuang proyeksi saat approval dibatalkan (reset ke
// pending atau ditolak setelah sempat disetujui).
func RemoveFromReport(db *gorm.DB, pengajuanID uuid.UUID) error {
	return db.Where("report_pengajuan_id = ?", pengajuanID).
		Delete(&model.ReportModel{}).Error
}
