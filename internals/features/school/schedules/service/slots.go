// file: internals/features/school/schedules/service/slots.go
package service

/* =======================================================
   Generator slot pelajaran harian (fallback tampilan
   saat keterangan jadwal tidak bisa diparse)
   ======================================================= */

const (
	lessonMinutes = 45
	slotsPerDay   = 12
	dayStartMin   = 7 * 60 // 07:00
)

// LessonSlot adalah satu jam pelajaran [StartMin, EndMin).
type LessonSlot struct {
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
}

type breakWindow struct {
	start int
	dur   int
}

// Senin–Kamis: dua istirahat 15 menit (10:00 dan 11:45). Jumat tanpa istirahat.
func breaksForDay(day int) []breakWindow {
	if day == 5 {
		return nil
	}
	return []breakWindow{
		{start: 10 * 60, dur: 15},
		{start: 11*60 + 45, dur: 15},
	}
}

// GenerateDaySlots menghasilkan tepat 12 slot 45 menit untuk hari 1..5
// (1=Senin). Kursor melompati jendela istirahat: kalau kursor jatuh di dalam
// istirahat, pindah ke akhirnya; kalau slot berikut bakal menabrak awal
// istirahat, geser dulu ke akhir istirahat. Hasilnya slot tidak pernah
// tumpang tindih dengan istirahat maupun sesamanya.
func GenerateDaySlots(day int) []LessonSlot {
	breaks := breaksForDay(day)
	t := dayStartMin
	out := make([]LessonSlot, 0, slotsPerDay)

	for len(out) < slotsPerDay {
		if b := breakAt(breaks, t); b != nil {
			t = b.start + b.dur
			continue
		}
		if b := breakStraddled(breaks, t); b != nil {
			t = b.start + b.dur
			continue
		}
		end := t + lessonMinutes
		out = append(out, LessonSlot{StartMin: t, EndMin: end})
		t = end
	}
	return out
}

func breakAt(breaks []breakWindow, t int) *breakWindow {
	for i := range breaks {
		if t >= breaks[i].start && t < breaks[i].start+breaks[i].dur {
			return &breaks[i]
		}
	}
	return nil
}

func breakStraddled(breaks []breakWindow, t int) *breakWindow {
	for i := range breaks {
		if t < breaks[i].start && t+lessonMinutes > breaks[i].start {
			return &breaks[i]
		}
	}
	return nil
}
