package service

import "testing"

func mustEntry(t *testing.T, mapel, guru, keterangan string, fetchOrder int) ScheduleEntry {
	t.Helper()
	tr, okS, okE := ParseTimeRange(keterangan)
	return ScheduleEntry{
		Mapel:      mapel,
		Guru:       guru,
		Label:      tr.Label,
		StartMin:   tr.StartMin,
		EndMin:     tr.EndMin,
		StartOK:    okS,
		EndOK:      okE,
		FetchOrder: fetchOrder,
	}
}

func testEntries(t *testing.T) []ScheduleEntry {
	return []ScheduleEntry{
		mustEntry(t, "Matematika", "Bu Inung", "07:00-08:30", 0),
		mustEntry(t, "B. Jerman", "Frau Vanda", "08:30-10:00", 1),
		mustEntry(t, "Istirahat", "", "10:00-10:15", 2),
		mustEntry(t, "KK SIJA", "Bu Nisa", "10:15-11:45", 3),
	}
}

func TestSelectRealtimeSliceContainment(t *testing.T) {
	s := SelectRealtimeSlice(testEntries(t), 9*60) // 09:00, tengah B. Jerman
	if s.Current == nil || s.Current.Mapel != "B. Jerman" {
		t.Fatalf("current = %+v, mau B. Jerman", s.Current)
	}
	if s.Previous == nil || s.Previous.Mapel != "Matematika" {
		t.Errorf("previous = %+v, mau Matematika", s.Previous)
	}
	if s.Next == nil || s.Next.Mapel != "Istirahat" {
		t.Errorf("next = %+v, mau Istirahat", s.Next)
	}
}

func TestSelectRealtimeSliceBoundaries(t *testing.T) {
	entries := testEntries(t)

	// Sebelum pelajaran pertama: belum ada yang berjalan.
	s := SelectRealtimeSlice(entries, 6*60)
	if s.Current != nil || s.Previous != nil {
		t.Errorf("sebelum jam pertama: current=%v previous=%v, mau nil", s.Current, s.Previous)
	}
	if s.Next == nil || s.Next.Mapel != "Matematika" {
		t.Errorf("next = %+v, mau Matematika", s.Next)
	}

	// Setelah pelajaran terakhir selesai.
	s = SelectRealtimeSlice(entries, 13*60)
	if s.Current != nil || s.Next != nil {
		t.Errorf("setelah jam terakhir: current=%v next=%v, mau nil", s.Current, s.Next)
	}
	if s.Previous == nil || s.Previous.Mapel != "KK SIJA" {
		t.Errorf("previous = %+v, mau KK SIJA", s.Previous)
	}

	// Batas kanan half-open: tepat di menit akhir sudah pindah ke entri berikut.
	s = SelectRealtimeSlice(entries, 10*60)
	if s.Current == nil || s.Current.Mapel != "Istirahat" {
		t.Errorf("jam 10:00: current = %+v, mau Istirahat", s.Current)
	}
}

func TestSelectRealtimeSliceGapBetweenLessons(t *testing.T) {
	entries := []ScheduleEntry{
		mustEntry(t, "Fisika", "", "07:00-08:30", 0),
		mustEntry(t, "PKK", "", "09:00-10:30", 1),
	}
	s := SelectRealtimeSlice(entries, 8*60+45)
	if s.Current != nil {
		t.Fatalf("di sela dua pelajaran current harus nil, dapat %+v", s.Current)
	}
	if s.Previous == nil || s.Previous.Mapel != "Fisika" {
		t.Errorf("previous = %+v, mau Fisika", s.Previous)
	}
	if s.Next == nil || s.Next.Mapel != "PKK" {
		t.Errorf("next = %+v, mau PKK", s.Next)
	}
}

func TestSelectRealtimeSliceIstirahatTieBreak(t *testing.T) {
	// Jam mulai sama: pelajaran menang urutan atas istirahat walau
	// istirahat diambil lebih dulu dari database.
	entries := []ScheduleEntry{
		mustEntry(t, "Istirahat", "", "10:00 – 10:15", 0),
		mustEntry(t, "Bahasa Indonesia", "Bu Nisa", "10:00-11:30", 1),
	}
	s := SelectRealtimeSlice(entries, 10*60+5)
	if s.Current == nil || s.Current.Mapel != "Bahasa Indonesia" {
		t.Fatalf("current = %+v, mau Bahasa Indonesia", s.Current)
	}
	if s.Next == nil || s.Next.Mapel != "Istirahat" {
		t.Errorf("next = %+v, mau Istirahat di belakang pelajaran", s.Next)
	}
}

func TestSelectRealtimeSliceDropsUnparseable(t *testing.T) {
	entries := []ScheduleEntry{
		mustEntry(t, "Matematika", "", "07:00-08:30", 0),
		mustEntry(t, "Upacara", "", "pagi hari", 1),
	}
	s := SelectRealtimeSlice(entries, 7*60+30)
	if s.Current == nil || s.Current.Mapel != "Matematika" {
		t.Fatalf("current = %+v, mau Matematika", s.Current)
	}
	if s.Next != nil {
		t.Errorf("entri tanpa jam valid harus dibuang, next = %+v", s.Next)
	}

	empty := SelectRealtimeSlice(nil, 7*60)
	if empty.Previous != nil || empty.Current != nil || empty.Next != nil {
		t.Errorf("daftar kosong harus menghasilkan irisan kosong: %+v", empty)
	}
}
