// file: internals/features/school/reports/service/summary.go
package service

import (
	"time"

	attendanceService "absensiku_backend/internals/features/school/attendance/service"
)

/* =======================================================
   Agregasi hadir / izin / alpha per kelas & rentang
   Murni dari data yang sudah diambil; tanpa I/O.
   ======================================================= */

// AttendanceRecord adalah baris kehadiran minimum yang dibutuhkan agregasi.
type AttendanceRecord struct {
	NIS        string
	Status     string
	WaktuAbsen time.Time
}

// LeaveSpan adalah satu izin yang disetujui: rentang tanggal inklusif.
type LeaveSpan struct {
	NIS     string
	Mulai   time.Time
	Selesai time.Time
}

type Summary struct {
	Hadir           int `json:"hadir"`
	Izin            int `json:"izin"`
	Alpha           int `json:"alpha"`
	Total           int `json:"total"`
	TotalSchoolDays int `json:"total_school_days"`
}

// Summarize menghitung ringkasan kehadiran satu kelas:
//   - hadir  = jumlah baris kehadiran berkategori hadir di rentang
//   - izin   = jumlah (pengajuan, hari sekolah) yang tercakup izin disetujui
//   - alpha  = pasangan (siswa, hari sekolah) tanpa hadir dan tanpa izin;
//     siswa tanpa catatan apa pun menyumbang satu alpha per hari
//
// Hari dengan hadir sekaligus izin dihitung hadir. Roster kosong langsung
// menghasilkan ringkasan nol.
func Summarize(
	roster []string,
	schoolDays []string,
	records []AttendanceRecord,
	leaves []LeaveSpan,
	mapper *attendanceService.StatusMapper,
	loc *time.Location,
) Summary {
	if len(roster) == 0 {
		return Summary{}
	}
	if mapper == nil {
		mapper = attendanceService.DefaultStatusMapper()
	}

	daySet := make(map[string]struct{}, len(schoolDays))
	for _, d := range schoolDays {
		daySet[d] = struct{}{}
	}

	hadirCount := 0
	hadirDates := make(map[string]map[string]struct{}) // nis → set tanggal
	for _, r := range records {
		if mapper.Normalize(r.Status) != attendanceService.StatusHadir {
			continue
		}
		hadirCount++
		date := r.WaktuAbsen.In(loc).Format("2006-01-02")
		if hadirDates[r.NIS] == nil {
			hadirDates[r.NIS] = make(map[string]struct{})
		}
		hadirDates[r.NIS][date] = struct{}{}
	}

	izinCount := 0
	izinDates := make(map[string]map[string]struct{})
	for _, l := range leaves {
		for d := l.Mulai; !d.After(l.Selesai); d = d.AddDate(0, 0, 1) {
			date := d.Format("2006-01-02")
			if _, ok := daySet[date]; !ok {
				continue
			}
			if izinDates[l.NIS] == nil {
				izinDates[l.NIS] = make(map[string]struct{})
			}
			// Dua pengajuan yang menutup hari sama tidak dihitung dobel.
			if _, dup := izinDates[l.NIS][date]; dup {
				continue
			}
			izinDates[l.NIS][date] = struct{}{}
			izinCount++
		}
	}

	alphaCount := 0
	for _, nis := range roster {
		for _, date := range schoolDays {
			_, hadir := hadirDates[nis][date]
			_, izin := izinDates[nis][date]
			if !hadir && !izin {
				alphaCount++
			}
		}
	}

	return Summary{
		Hadir:           hadirCount,
		Izin:            izinCount,
		Alpha:           alphaCount,
		Total:           len(roster),
		TotalSchoolDays: len(schoolDays),
	}
}
