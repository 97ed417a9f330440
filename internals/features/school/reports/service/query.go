// file: internals/features/school/reports/service/query.go
package service

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	attendanceModel "absensiku_backend/internals/features/school/attendance/model"
	attendanceService "absensiku_backend/internals/features/school/attendance/service"
	leaveModel "absensiku_backend/internals/features/school/leave_requests/model"
	siswaModel "absensiku_backend/internals/features/school/students/model"
	helper "absensiku_backend/internals/helpers"
)

/* =======================================================
   Pengambilan data agregasi dari database
   ======================================================= */

// BuildSummary mengambil roster, kehadiran, dan izin disetujui untuk satu
// kelas lalu menjalankan agregasi di memori.
func BuildSummary(db *gorm.DB, kelas string, start, end time.Time) (Summary, error) {
	variants := helper.KelasVariants(kelas)
	loc := helper.JakartaLoc()

	var roster []string
	if err := db.Model(&siswaModel.SiswaModel{}).
		Where("siswa_kelas = ANY(?)", pq.Array(variants)).
		Pluck("siswa_nis", &roster).Error; err != nil {
		return Summary{}, err
	}
	if len(roster) == 0 {
		return Summary{}, nil
	}

	var kehadiran []attendanceModel.KehadiranModel
	if err := db.
		Where("kehadiran_kelas = ANY(?)", pq.Array(variants)).
		Where("kehadiran_waktu_absen >= ? AND kehadiran_waktu_absen < ?", start, end).
		Limit(5000).
		Find(&kehadiran).Error; err != nil {
		return Summary{}, err
	}
	records := make([]AttendanceRecord, 0, len(kehadiran))
	for _, k := range kehadiran {
		records = append(records, AttendanceRecord{
			NIS:        k.KehadiranNIS,
			Status:     k.KehadiranStatus,
			WaktuAbsen: k.KehadiranWaktuAbsen,
		})
	}

	var reportRows []leaveModel.ReportModel
	if err := db.
		Where("report_kelas = ANY(?)", pq.Array(variants)).
		Where("report_izin = ?", true).
		Find(&reportRows).Error; err != nil {
		return Summary{}, err
	}
	leaves := make([]LeaveSpan, 0, len(reportRows))
	for _, r := range reportRows {
		leaves = append(leaves, LeaveSpan{
			NIS:     r.ReportNIS,
			Mulai:   r.ReportTanggalMulai,
			Selesai: r.ReportTanggalSelesai,
		})
	}

	mapper := attendanceService.LoadStatusMapper(db)
	return Summarize(roster, SchoolDays(start, end), records, leaves, mapper, loc), nil
}

// ListClasses mengembalikan daftar kelas unik dari tabel siswa; kalau
// kosong atau gagal, jatuh ke kolom kelas di kehadiran.
func ListClasses(db *gorm.DB, limit int) ([]string, error) {
	var classes []string
	err := db.Model(&siswaModel.SiswaModel{}).
		Distinct("siswa_kelas").
		Where("siswa_kelas <> ''").
		Order("siswa_kelas ASC").
		Limit(limit).
		Pluck("siswa_kelas", &classes).Error
	if err == nil && len(classes) > 0 {
		return classes, nil
	}

	var fallback []string
	if err2 := db.Model(&attendanceModel.KehadiranModel{}).
		Distinct("kehadiran_kelas").
		Where("kehadiran_kelas <> ''").
		Order("kehadiran_kelas ASC").
		Limit(limit).
		Pluck("kehadiran_kelas", &fallback).Error; err2 != nil {
		if err != nil {
			return nil, err
		}
		return classes, nil
	}
	return fallback, nil
}

// ListApprovedLeaves mengembalikan baris report (izin disetujui) satu
// kelas yang beririsan dengan [from, to].
func ListApprovedLeaves(db *gorm.DB, kelas string, from, to time.Time) ([]leaveModel.ReportModel, error) {
	var rows []leaveModel.ReportModel
	err := db.
		Where("report_kelas = ANY(?)", pq.Array(helper.KelasVariants(kelas))).
		Where("report_izin = ?", true).
		Where("report_tanggal_mulai <= ? AND report_tanggal_selesai >= ?", to, from).
		Order("report_tanggal_mulai ASC").
		Find(&rows).Error
	return rows, err
}
