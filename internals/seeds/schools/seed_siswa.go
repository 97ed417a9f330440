// file: internals/seeds/schools/seed_siswa.go
package schools

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/students/model"
)

type SiswaSeed struct {
	NIS      string `json:"nis"`
	NISN     string `json:"nisn"`
	Nama     string `json:"nama"`
	Kelas    string `json:"kelas"`
	Password string `json:"password"`
}

// SeedSiswaFromJSON mengisi roster siswa awal. NIS yang sudah terdaftar
// dilewati.
func SeedSiswaFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file siswa:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []SiswaSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.SiswaModel
		if err := db.Where("siswa_nis = ?", data.NIS).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Siswa NIS '%s' sudah ada, dilewati.", data.NIS)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk NIS '%s': %v", data.NIS, err)
			continue
		}

		row := model.SiswaModel{
			SiswaNIS:      data.NIS,
			SiswaNISN:     data.NISN,
			SiswaNama:     data.Nama,
			SiswaKelas:    data.Kelas,
			SiswaPassword: string(hashed),
			SiswaIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal simpan siswa '%s': %v", data.NIS, err)
			continue
		}
		log.Printf("✅ Siswa '%s' kelas %s berhasil dibuat", data.Nama, data.Kelas)
	}
}
