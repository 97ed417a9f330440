// file: internals/features/school/attendance/service/status.go
package service

import (
	"encoding/json"
	"log"
	"strings"

	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/attendance/model"
)

/* =======================================================
   Normalisasi status kehadiran → hadir / izin / alpha / other
   ======================================================= */

const (
	StatusHadir = "hadir"
	StatusIzin  = "izin"
	StatusAlpha = "alpha"
	StatusOther = "other"
)

// StatusMapper memetakan string status bebas dari sumber data ke tiga
// kategori laporan. Alias di luar tabel jatuh ke "other" dan tidak
// dihitung di bucket manapun.
type StatusMapper struct {
	aliasToCategory map[string]string
}

// DefaultStatusMapper berisi alias bawaan; dipakai saat tabel
// status_mappings kosong atau tidak bisa dibaca.
func DefaultStatusMapper() *StatusMapper {
	return NewStatusMapper(map[string][]string{
		StatusHadir: {"hadir", "present", "masuk", "terlambat"},
		StatusIzin:  {"izin", "sakit", "permission", "leave"},
		StatusAlpha: {"alpha", "absent", "bolos", "tidak_hadir"},
	})
}

func NewStatusMapper(byCategory map[string][]string) *StatusMapper {
	m := &StatusMapper{aliasToCategory: make(map[string]string)}
	for cat, aliases := range byCategory {
		for _, a := range aliases {
			m.aliasToCategory[strings.ToLower(strings.TrimSpace(a))] = cat
		}
	}
	return m
}

// LoadStatusMapper membaca tabel status_mappings dan menggabungkannya di
// atas alias bawaan. Baris rusak cuma dicatat, tidak menggagalkan request.
func LoadStatusMapper(db *gorm.DB) *StatusMapper {
	mapper := DefaultStatusMapper()

	var rows []model.StatusMappingModel
	if err := db.Find(&rows).Error; err != nil {
		log.Printf("[ATTENDANCE] gagal baca status_mappings, pakai bawaan: %v", err)
		return mapper
	}
	for _, row := range rows {
		var aliases []string
		if err := json.Unmarshal(row.StatusMappingAliases, &aliases); err != nil {
			log.Printf("[ATTENDANCE] alias status_mappings %s rusak: %v", row.StatusMappingCategory, err)
			continue
		}
		cat := strings.ToLower(strings.TrimSpace(row.StatusMappingCategory))
		if cat != StatusHadir && cat != StatusIzin && cat != StatusAlpha {
			continue
		}
		for _, a := range aliases {
			mapper.aliasToCategory[strings.ToLower(strings.TrimSpace(a))] = cat
		}
	}
	return mapper
}

// Normalize mengembalikan kategori untuk satu string status mentah.
func (m *StatusMapper) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusOther
	}
	if cat, ok := m.aliasToCategory[s]; ok {
		return cat
	}
	return StatusOther
}
