// file: internals/seeds/schools/seed_jadwal.go
package schools

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/schedules/model"
)

type JadwalSeed struct {
	Kelas      string `json:"kelas"`
	Hari       string `json:"hari"`
	Mapel      string `json:"mapel"`
	Guru       string `json:"guru"`
	BanyakJam  int    `json:"banyak_jam"`
	Keterangan string `json:"keterangan"`
}

// SeedJadwalFromJSON mengisi jadwal pelajaran. Kombinasi kelas+hari+mapel
// yang sudah ada dilewati.
func SeedJadwalFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file jadwal:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []JadwalSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.JadwalModel
		if err := db.Where(
			"jadwal_kelas = ? AND jadwal_hari = ? AND jadwal_mapel = ?",
			data.Kelas, data.Hari, data.Mapel,
		).First(&existing).Error; err == nil {
			continue
		}

		banyakJam := data.BanyakJam
		if banyakJam < 1 {
			banyakJam = 1
		}
		row := model.JadwalModel{
			JadwalKelas:      data.Kelas,
			JadwalHari:       data.Hari,
			JadwalMapel:      data.Mapel,
			JadwalGuru:       data.Guru,
			JadwalBanyakJam:  banyakJam,
			JadwalKeterangan: data.Keterangan,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal simpan jadwal %s/%s/%s: %v", data.Kelas, data.Hari, data.Mapel, err)
			continue
		}
	}
	log.Printf("✅ Seed jadwal selesai (%d baris diproses)", len(inputs))
}
