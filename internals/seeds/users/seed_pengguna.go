// file: internals/seeds/users/seed_pengguna.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/model"
)

type PenggunaSeed struct {
	Username string `json:"username"`
	Nama     string `json:"nama"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedPenggunaFromJSON mengisi akun non-siswa (admin). Akun yang sudah
// ada dilewati, tidak ditimpa.
func SeedPenggunaFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file pengguna:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []PenggunaSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.PenggunaModel
		if err := db.Where("pengguna_username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Pengguna '%s' sudah ada, dilewati.", data.Username)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Username, err)
			continue
		}

		row := model.PenggunaModel{
			PenggunaUsername: data.Username,
			PenggunaNama:     data.Nama,
			PenggunaPassword: string(hashed),
			PenggunaRole:     data.Role,
			PenggunaIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal simpan pengguna '%s': %v", data.Username, err)
			continue
		}
		log.Printf("✅ Pengguna '%s' (%s) berhasil dibuat", data.Username, data.Role)
	}
}
