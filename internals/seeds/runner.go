// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	schoolSeeds "absensiku_backend/internals/seeds/schools"
	userSeeds "absensiku_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data awal: akun admin, roster siswa, jadwal, dan
// pemetaan status kehadiran. Semua seeder idempoten.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeds...")

	userSeeds.SeedPenggunaFromJSON(db, "internals/seeds/users/data_pengguna.json")
	schoolSeeds.SeedSiswaFromJSON(db, "internals/seeds/schools/data_siswa.json")
	schoolSeeds.SeedJadwalFromJSON(db, "internals/seeds/schools/data_jadwal.json")
	schoolSeeds.SeedStatusMappings(db)

	log.Println("🌱 Seeds selesai")
}
