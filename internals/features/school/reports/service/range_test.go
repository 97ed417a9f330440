package service

import (
	"testing"
	"time"
)

func TestGetRangeBounds(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	// Rabu, 18 Maret 2026 10:30 WIB
	now := time.Date(2026, 3, 18, 10, 30, 0, 0, loc)

	cases := []struct {
		label      string
		start, end time.Time
	}{
		{"Today", time.Date(2026, 3, 18, 0, 0, 0, 0, loc), time.Date(2026, 3, 19, 0, 0, 0, 0, loc)},
		{"This Week", time.Date(2026, 3, 16, 0, 0, 0, 0, loc), time.Date(2026, 3, 23, 0, 0, 0, 0, loc)},
		{"This Month", time.Date(2026, 3, 1, 0, 0, 0, 0, loc), time.Date(2026, 4, 1, 0, 0, 0, 0, loc)},
		{"This Semester", time.Date(2026, 1, 1, 0, 0, 0, 0, loc), time.Date(2026, 7, 1, 0, 0, 0, 0, loc)},
		{"label aneh", time.Date(2026, 3, 1, 0, 0, 0, 0, loc), time.Date(2026, 4, 1, 0, 0, 0, 0, loc)},
		{"minggu ini", time.Date(2026, 3, 16, 0, 0, 0, 0, loc), time.Date(2026, 3, 23, 0, 0, 0, 0, loc)},
	}
	for _, c := range cases {
		start, end := GetRangeBounds(c.label, now)
		if !start.Equal(c.start) || !end.Equal(c.end) {
			t.Errorf("GetRangeBounds(%q) = [%v, %v), mau [%v, %v)", c.label, start, end, c.start, c.end)
		}
	}
}

func TestGetRangeBoundsWeekOnSunday(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	// Minggu, 22 Maret 2026: minggu berjalan tetap mulai Senin 16 Maret.
	now := time.Date(2026, 3, 22, 8, 0, 0, 0, loc)
	start, end := GetRangeBounds(RangeWeek, now)
	if start.Day() != 16 || end.Day() != 23 {
		t.Errorf("minggu dari hari Minggu = [%v, %v), mau mulai Senin 16", start, end)
	}
}

func TestGetRangeBoundsSecondSemester(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, loc)
	start, end := GetRangeBounds(RangeSemester, now)
	if start.Month() != time.July || end.Month() != time.January || end.Year() != 2027 {
		t.Errorf("semester kedua = [%v, %v), mau Juli–Januari", start, end)
	}
}

func TestSchoolDaysExcludesWeekends(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	// Senin 16 Maret s.d. Senin 23 Maret (eksklusif) = 5 hari sekolah.
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	days := SchoolDays(start, start.AddDate(0, 0, 7))
	if len(days) != 5 {
		t.Fatalf("%d hari sekolah, mau 5: %v", len(days), days)
	}
	if days[0] != "2026-03-16" || days[4] != "2026-03-20" {
		t.Errorf("rentang hari = %v, mau Senin–Jumat 16–20", days)
	}

	if got := SchoolDays(start, start); len(got) != 0 {
		t.Errorf("rentang kosong harus tanpa hari, dapat %v", got)
	}
}
