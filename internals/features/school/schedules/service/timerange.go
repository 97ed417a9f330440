// file: internals/features/school/schedules/service/timerange.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/* =======================================================
   Parser rentang jam bebas-teks ("07:00–08:30")
   ======================================================= */

// TimeRange adalah hasil parse keterangan jadwal, dalam menit sejak 00:00.
type TimeRange struct {
	StartMin int
	EndMin   int
	Label    string // "07.00 – 08.30" (format tampilan)
}

var (
	clockRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)
	dashRe  = regexp.MustCompile(`[-–—]`)
)

// ParseTimeRange mengekstrak jam mulai/selesai dari teks bebas.
// Pemisah rentang boleh "-", "–", atau "—"; pemisah jam boleh ":" atau ".".
// Bagian yang tidak bisa diparse ditandai lewat ok=false per sisi:
// startOK=false berarti entri tidak bisa diurutkan (caller taruh paling akhir).
// Tidak pernah mengembalikan error; input jelek cuma menurunkan kualitas data.
func ParseTimeRange(keterangan string) (tr TimeRange, startOK, endOK bool) {
	cleaned := strings.Join(strings.Fields(keterangan), "")
	if cleaned == "" {
		return TimeRange{}, false, false
	}

	parts := dashRe.Split(cleaned, 2)
	first := parts[0]
	second := ""
	if len(parts) > 1 {
		second = parts[1]
	}

	start, startOK := parseClock(first)
	end, endOK := parseClock(second)

	tr = TimeRange{StartMin: start, EndMin: end}
	tr.Label = buildLabel(start, end, startOK, endOK)
	return tr, startOK, endOK
}

func parseClock(s string) (int, bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 || mm > 59 {
		return 0, false
	}
	return h*60 + mm, true
}

func buildLabel(start, end int, startOK, endOK bool) string {
	fmtMin := func(v int) string {
		return fmt.Sprintf("%02d.%02d", v/60, v%60)
	}
	switch {
	case startOK && endOK:
		return fmtMin(start) + " – " + fmtMin(end)
	case startOK:
		return fmtMin(start)
	case endOK:
		return fmtMin(end)
	}
	return ""
}
