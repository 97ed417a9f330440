// file: internals/features/school/schedules/service/week.go
package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"absensiku_backend/internals/features/school/schedules/model"
)

/* =======================================================
   Grid jadwal mingguan: baris jadwal → 5 hari × 12 slot
   (ekspansi banyak_jam, potong/isi sampai 12)
   ======================================================= */

var dayNameToNumber = map[string]int{
	"SENIN": 1, "SELASA": 2, "RABU": 3, "KAMIS": 4, "JUMAT": 5,
	"SEN": 1, "SEL": 2, "RAB": 3, "KAM": 4, "JUM": 5,
}

var dayNumberToName = map[int]string{
	1: "Senin", 2: "Selasa", 3: "Rabu", 4: "Kamis", 5: "Jumat",
}

// NormalizeHari menerima nama hari ("Senin", "sen") atau angka "1".."5".
// 0 berarti tidak dikenal.
func NormalizeHari(hari string) int {
	s := strings.ToUpper(strings.TrimSpace(hari))
	if s == "" {
		return 0
	}
	if d, ok := dayNameToNumber[s]; ok {
		return d
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 5 {
		return n
	}
	return 0
}

// HariName mengembalikan nama hari untuk angka 1..5 ("" kalau di luar itu).
func HariName(day int) string {
	return dayNumberToName[day]
}

// WeekItem adalah satu sel pada grid mingguan.
type WeekItem struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	TimeLabel string `json:"time_label"`
}

// TransformWeek menyusun grid per hari dari baris jadwal mentah: baris
// dengan hari tak dikenal dibuang, tiap hari diurutkan seperti pemilih
// realtime (jam mulai, istirahat belakangan, lalu urutan baris), tiap
// baris diduplikasi sebanyak banyak_jam, dipotong di 12 slot. Hari
// Senin–Kamis diisi sel kosong sampai 12; Jumat dibiarkan apa adanya.
func TransformWeek(rows []model.JadwalModel) map[int][]WeekItem {
	type dayRow struct {
		row   model.JadwalModel
		idx   int
		tr    TimeRange
		okS   bool
		okE   bool
		label string
	}
	grouped := map[int][]dayRow{1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
	for idx, r := range rows {
		day := NormalizeHari(r.JadwalHari)
		if day == 0 {
			continue
		}
		tr, okS, okE := ParseTimeRange(r.JadwalKeterangan)
		grouped[day] = append(grouped[day], dayRow{row: r, idx: idx, tr: tr, okS: okS, okE: okE, label: tr.Label})
	}

	byDay := map[int][]WeekItem{1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
	for day := 1; day <= 5; day++ {
		items := grouped[day]
		sort.SliceStable(items, func(i, j int) bool {
			// Yang punya jam mulai valid dulu, menaik; tanpa jam di belakang.
			if items[i].okS && items[j].okS {
				if items[i].tr.StartMin != items[j].tr.StartMin {
					return items[i].tr.StartMin < items[j].tr.StartMin
				}
			} else if items[i].okS != items[j].okS {
				return items[i].okS
			}
			ii, ij := IsIstirahat(items[i].row.JadwalMapel), IsIstirahat(items[j].row.JadwalMapel)
			if ii != ij {
				return !ii
			}
			return items[i].idx < items[j].idx
		})

		for _, it := range items {
			repeat := it.row.JadwalBanyakJam
			if repeat < 1 {
				repeat = 1
			}
			for i := 0; i < repeat; i++ {
				if len(byDay[day]) >= slotsPerDay {
					break
				}
				id := it.row.JadwalID.String()
				if repeat > 1 {
					id = fmt.Sprintf("%s-%d", id, i+1)
				}
				byDay[day] = append(byDay[day], WeekItem{
					ID:        id,
					Subject:   it.row.JadwalMapel,
					Teacher:   it.row.JadwalGuru,
					TimeLabel: it.label,
				})
			}
		}

		// Jumat tidak diisi slot kosong; biarkan hanya jadwal nyata.
		if day == 5 {
			continue
		}
		for i := len(byDay[day]); i < slotsPerDay; i++ {
			byDay[day] = append(byDay[day], WeekItem{ID: fmt.Sprintf("empty-%d-%d", day, i)})
		}
	}
	return byDay
}
