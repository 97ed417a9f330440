// file: internals/seeds/schools/seed_status_mappings.go
package schools

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/attendance/model"
)

// SeedStatusMappings mengisi tabel pemetaan status kehadiran dengan alias
// bawaan. Kategori yang sudah punya baris dilewati supaya kustomisasi
// admin tidak tertimpa.
func SeedStatusMappings(db *gorm.DB) {
	defaults := map[string][]string{
		"hadir": {"hadir", "present", "masuk", "terlambat"},
		"izin":  {"izin", "sakit", "permission", "leave"},
		"alpha": {"alpha", "absent", "bolos", "tidak_hadir"},
	}

	for category, aliases := range defaults {
		var existing model.StatusMappingModel
		if err := db.Where("status_mapping_category = ?", category).First(&existing).Error; err == nil {
			continue
		}

		raw, err := json.Marshal(aliases)
		if err != nil {
			log.Printf("❌ Gagal encode alias %s: %v", category, err)
			continue
		}
		row := model.StatusMappingModel{
			StatusMappingCategory: category,
			StatusMappingAliases:  datatypes.JSON(raw),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal simpan status mapping '%s': %v", category, err)
			continue
		}
		log.Printf("✅ Status mapping '%s' dibuat (%d alias)", category, len(aliases))
	}
}
