// file: internals/features/school/schedules/service/slice.go
package service

import (
	"sort"
	"strings"
)

/* =======================================================
   Pemilih irisan jadwal realtime (sebelumnya / sekarang /
   berikutnya) berdasarkan menit berjalan hari ini
   ======================================================= */

// ScheduleEntry adalah satu baris jadwal yang sudah diparse waktunya.
type ScheduleEntry struct {
	Mapel      string `json:"mapel"`
	Guru       string `json:"guru"`
	Label      string `json:"label"`
	StartMin   int    `json:"start_min"`
	EndMin     int    `json:"end_min"`
	StartOK    bool   `json:"-"`
	EndOK      bool   `json:"-"`
	FetchOrder int    `json:"-"`
}

// RealtimeSlice hasil pemilihan: Current bisa nil (di luar jam, atau di
// sela dua pelajaran).
type RealtimeSlice struct {
	Previous *ScheduleEntry `json:"previous"`
	Current  *ScheduleEntry `json:"current"`
	Next     *ScheduleEntry `json:"next"`
}

// IsIstirahat menandai baris jeda (bukan pelajaran).
func IsIstirahat(mapel string) bool {
	return strings.Contains(strings.ToLower(mapel), "istirahat")
}

// SelectRealtimeSlice memilih entri sebelumnya/sekarang/berikutnya untuk
// menit nowMin. Entri tanpa jam mulai yang valid dibuang. Urutan: jam mulai
// menaik; kalau sama, istirahat ditaruh setelah pelajaran; sisanya ikut
// urutan baris dari database.
func SelectRealtimeSlice(entries []ScheduleEntry, nowMin int) RealtimeSlice {
	usable := make([]ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.StartOK && e.EndOK && e.EndMin > e.StartMin {
			usable = append(usable, e)
		}
	}
	sort.SliceStable(usable, func(i, j int) bool {
		if usable[i].StartMin != usable[j].StartMin {
			return usable[i].StartMin < usable[j].StartMin
		}
		ii, ij := IsIstirahat(usable[i].Mapel), IsIstirahat(usable[j].Mapel)
		if ii != ij {
			return !ii
		}
		return usable[i].FetchOrder < usable[j].FetchOrder
	})

	var out RealtimeSlice
	if len(usable) == 0 {
		return out
	}

	for i := range usable {
		e := usable[i]
		if e.StartMin <= nowMin && nowMin < e.EndMin {
			out.Current = &usable[i]
			if i > 0 {
				out.Previous = &usable[i-1]
			}
			if i+1 < len(usable) {
				out.Next = &usable[i+1]
			}
			return out
		}
	}

	// Belum mulai: entri pertama jadi "berikutnya".
	if nowMin < usable[0].StartMin {
		out.Next = &usable[0]
		return out
	}
	// Sudah lewat semua: entri terakhir jadi "sebelumnya".
	if nowMin >= usable[len(usable)-1].EndMin {
		out.Previous = &usable[len(usable)-1]
		return out
	}
	// Di sela dua entri: tidak ada yang sedang berjalan.
	for i := 0; i+1 < len(usable); i++ {
		if nowMin >= usable[i].EndMin && nowMin < usable[i+1].StartMin {
			out.Previous = &usable[i]
			out.Next = &usable[i+1]
			return out
		}
	}
	return out
}
