// file: internals/databases/migrate.go
package database

import (
	"log"

	attendanceModel "absensiku_backend/internals/features/school/attendance/model"
	leaveModel "absensiku_backend/internals/features/school/leave_requests/model"
	scheduleModel "absensiku_backend/internals/features/school/schedules/model"
	siswaModel "absensiku_backend/internals/features/school/students/model"
	authModel "absensiku_backend/internals/features/users/auth/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel aplikasi. Dipanggil
// saat boot kalau RUN_MIGRATIONS=true; di produksi skema dikelola manual.
func Migrate() {
	err := DB.AutoMigrate(
		&authModel.PenggunaModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},
		&siswaModel.SiswaModel{},
		&scheduleModel.JadwalModel{},
		&attendanceModel.KehadiranModel{},
		&attendanceModel.StatusMappingModel{},
		&leaveModel.PengajuanModel{},
		&leaveModel.ReportModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
