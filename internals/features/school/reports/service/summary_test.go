package service

import (
	"testing"
	"time"

	attendanceService "absensiku_backend/internals/features/school/attendance/service"
)

var wib = time.FixedZone("WIB", 7*3600)

func hadirAt(nis string, day int) AttendanceRecord {
	return AttendanceRecord{
		NIS:        nis,
		Status:     "hadir",
		WaktuAbsen: time.Date(2026, 3, day, 7, 5, 0, 0, wib),
	}
}

// Satu minggu sekolah: Senin 16 s.d. Jumat 20 Maret 2026.
func weekDays() []string {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, wib)
	return SchoolDays(start, start.AddDate(0, 0, 7))
}

func TestSummarizeOneWeekThreeStudents(t *testing.T) {
	roster := []string{"1001", "1002", "1003"}

	// 1001 hadir penuh; 1002 hadir 3 hari + izin 2 hari; 1003 kosong total.
	records := []AttendanceRecord{
		hadirAt("1001", 16), hadirAt("1001", 17), hadirAt("1001", 18), hadirAt("1001", 19), hadirAt("1001", 20),
		hadirAt("1002", 16), hadirAt("1002", 17), hadirAt("1002", 18),
	}
	leaves := []LeaveSpan{{
		NIS:     "1002",
		Mulai:   time.Date(2026, 3, 19, 0, 0, 0, 0, wib),
		Selesai: time.Date(2026, 3, 20, 0, 0, 0, 0, wib),
	}}

	s := Summarize(roster, weekDays(), records, leaves, nil, wib)
	if s.Hadir != 8 {
		t.Errorf("hadir = %d, mau 8", s.Hadir)
	}
	if s.Izin != 2 {
		t.Errorf("izin = %d, mau 2", s.Izin)
	}
	if s.Alpha != 5 {
		t.Errorf("alpha = %d, mau 5 (siswa tanpa catatan = alpha tiap hari)", s.Alpha)
	}
	if s.Total != 3 || s.TotalSchoolDays != 5 {
		t.Errorf("total=%d hari=%d, mau 3 dan 5", s.Total, s.TotalSchoolDays)
	}
}

func TestSummarizeEmptyRoster(t *testing.T) {
	s := Summarize(nil, weekDays(), []AttendanceRecord{hadirAt("1001", 16)}, nil, nil, wib)
	if s != (Summary{}) {
		t.Errorf("roster kosong harus ringkasan nol, dapat %+v", s)
	}
}

func TestSummarizePresentWinsOverLeave(t *testing.T) {
	roster := []string{"1001"}
	records := []AttendanceRecord{hadirAt("1001", 16)}
	leaves := []LeaveSpan{{
		NIS:     "1001",
		Mulai:   time.Date(2026, 3, 16, 0, 0, 0, 0, wib),
		Selesai: time.Date(2026, 3, 16, 0, 0, 0, 0, wib),
	}}
	s := Summarize(roster, weekDays(), records, leaves, nil, wib)
	// Hari yang hadir sekaligus izin tidak menambah alpha.
	if s.Alpha != 4 {
		t.Errorf("alpha = %d, mau 4", s.Alpha)
	}
	if s.Hadir != 1 || s.Izin != 1 {
		t.Errorf("hadir=%d izin=%d, mau 1 dan 1", s.Hadir, s.Izin)
	}
}

func TestSummarizeLeaveClippedToSchoolDays(t *testing.T) {
	roster := []string{"1001"}
	// Izin Jumat 20 s.d. Senin 23: Sabtu & Minggu tidak dihitung, dan hari
	// di luar rentang laporan juga tidak.
	leaves := []LeaveSpan{{
		NIS:     "1001",
		Mulai:   time.Date(2026, 3, 20, 0, 0, 0, 0, wib),
		Selesai: time.Date(2026, 3, 23, 0, 0, 0, 0, wib),
	}}
	s := Summarize(roster, weekDays(), nil, leaves, nil, wib)
	if s.Izin != 1 {
		t.Errorf("izin = %d, mau 1 (hanya Jumat 20)", s.Izin)
	}
	if s.Alpha != 4 {
		t.Errorf("alpha = %d, mau 4", s.Alpha)
	}
}

func TestSummarizeOtherStatusExcluded(t *testing.T) {
	roster := []string{"1001"}
	records := []AttendanceRecord{{
		NIS:        "1001",
		Status:     "dispensasi",
		WaktuAbsen: time.Date(2026, 3, 16, 7, 0, 0, 0, wib),
	}}
	s := Summarize(roster, weekDays(), records, nil, attendanceService.DefaultStatusMapper(), wib)
	if s.Hadir != 0 {
		t.Errorf("status tak dikenal tidak boleh dihitung hadir, dapat %d", s.Hadir)
	}
	if s.Alpha != 5 {
		t.Errorf("alpha = %d, mau 5", s.Alpha)
	}
}

func TestSummarizeOverlappingLeavesNotDoubleCounted(t *testing.T) {
	roster := []string{"1001"}
	span := LeaveSpan{
		NIS:     "1001",
		Mulai:   time.Date(2026, 3, 16, 0, 0, 0, 0, wib),
		Selesai: time.Date(2026, 3, 17, 0, 0, 0, 0, wib),
	}
	s := Summarize(roster, weekDays(), nil, []LeaveSpan{span, span}, nil, wib)
	if s.Izin != 2 {
		t.Errorf("izin = %d, mau 2 (pengajuan tumpang tindih dihitung sekali)", s.Izin)
	}
}

func TestSummarizeConservationBound(t *testing.T) {
	roster := []string{"1001", "1002"}
	records := []AttendanceRecord{
		hadirAt("1001", 16), hadirAt("1001", 17),
		hadirAt("1002", 16),
	}
	leaves := []LeaveSpan{{
		NIS:     "1002",
		Mulai:   time.Date(2026, 3, 17, 0, 0, 0, 0, wib),
		Selesai: time.Date(2026, 3, 18, 0, 0, 0, 0, wib),
	}}
	s := Summarize(roster, weekDays(), records, leaves, nil, wib)
	if s.Hadir+s.Izin+s.Alpha > s.Total*s.TotalSchoolDays {
		t.Errorf("hadir+izin+alpha = %d melebihi total×hari = %d",
			s.Hadir+s.Izin+s.Alpha, s.Total*s.TotalSchoolDays)
	}
}
