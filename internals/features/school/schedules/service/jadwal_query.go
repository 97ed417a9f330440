// file: internals/features/school/schedules/service/jadwal_query.go
package service

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/schedules/model"
	helper "absensiku_backend/internals/helpers"
)

/* =======================================================
   Query jadwal: cocokkan varian penulisan kelas dulu,
   baru fallback pencarian parsial
   ======================================================= */

// FetchJadwal mengambil baris jadwal untuk satu kelas (dan hari, kalau
// diisi). Nama kelas di database tidak konsisten (spasi vs underscore vs
// strip), jadi dicoba semua varian sekaligus; kalau tetap kosong, cari
// parsial case-insensitive.
func FetchJadwal(db *gorm.DB, kelas, hari string) ([]model.JadwalModel, error) {
	var rows []model.JadwalModel

	base := func() *gorm.DB {
		q := db.Model(&model.JadwalModel{}).
			Order("jadwal_hari ASC").
			Order("jadwal_mapel ASC")
		if hari != "" {
			q = q.Where("LOWER(jadwal_hari) = LOWER(?)", strings.TrimSpace(hari))
		}
		return q
	}

	if strings.TrimSpace(kelas) == "" {
		if err := base().Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	}

	variants := helper.KelasVariants(kelas)
	if err := base().Where("jadwal_kelas = ANY(?)", pq.Array(variants)).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}

	// Fallback parsial: "%XI_SIJA_2%" dan kawan-kawan.
	for _, v := range variants {
		if err := base().Where("jadwal_kelas ILIKE ?", "%"+v+"%").Find(&rows).Error; err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return rows, nil
}

// BuildEntries mengubah baris jadwal jadi entri siap-pilih untuk pemilih
// realtime, mempertahankan urutan baris sebagai tie-break terakhir.
func BuildEntries(rows []model.JadwalModel) []ScheduleEntry {
	out := make([]ScheduleEntry, 0, len(rows))
	for i, r := range rows {
		tr, okS, okE := ParseTimeRange(r.JadwalKeterangan)
		out = append(out, ScheduleEntry{
			Mapel:      r.JadwalMapel,
			Guru:       r.JadwalGuru,
			Label:      tr.Label,
			StartMin:   tr.StartMin,
			EndMin:     tr.EndMin,
			StartOK:    okS,
			EndOK:      okE,
			FetchOrder: i,
		})
	}
	return out
}
