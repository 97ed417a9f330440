// file: internals/features/school/reports/service/range.go
package service

import (
	"strings"
	"time"
)

/* =======================================================
   Rentang laporan: label ramah → [start, end)
   ======================================================= */

const (
	RangeToday    = "Today"
	RangeWeek     = "This Week"
	RangeMonth    = "This Month"
	RangeSemester = "This Semester"
)

// GetRangeBounds menerjemahkan label rentang ke [start, end) di zona waktu
// now. Label tak dikenal jatuh ke "This Month". Semester dihitung kasar:
// Januari–Juni dan Juli–Desember.
func GetRangeBounds(label string, now time.Time) (start, end time.Time) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch normalizeRangeLabel(label) {
	case RangeToday:
		return today, today.AddDate(0, 0, 1)
	case RangeWeek:
		day := int(now.Weekday())
		if day == 0 {
			day = 7 // Minggu dihitung sebagai hari ke-7
		}
		start = today.AddDate(0, 0, -(day - 1))
		return start, start.AddDate(0, 0, 7)
	case RangeSemester:
		startMonth := time.January
		if now.Month() >= time.July {
			startMonth = time.July
		}
		start = time.Date(now.Year(), startMonth, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 6, 0)
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0)
	}
}

func normalizeRangeLabel(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "today", "hari ini":
		return RangeToday
	case "this week", "minggu ini":
		return RangeWeek
	case "this semester", "semester ini":
		return RangeSemester
	case "this month", "bulan ini":
		return RangeMonth
	}
	return RangeMonth
}

// SchoolDays mengembalikan tanggal Senin–Jumat di [start, end) sebagai
// string "2006-01-02" terurut. Akhir pekan tidak pernah dihitung.
func SchoolDays(start, end time.Time) []string {
	out := []string{}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd >= time.Monday && wd <= time.Friday {
			out = append(out, d.Format("2006-01-02"))
		}
	}
	return out
}
