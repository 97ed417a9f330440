package service

import (
	"testing"

	"github.com/google/uuid"

	"absensiku_backend/internals/features/school/schedules/model"
)

func jadwalRow(hari, mapel, guru string, jam int, ket string) model.JadwalModel {
	return model.JadwalModel{
		JadwalID:         uuid.New(),
		JadwalKelas:      "XI_SIJA_2",
		JadwalHari:       hari,
		JadwalMapel:      mapel,
		JadwalGuru:       guru,
		JadwalBanyakJam:  jam,
		JadwalKeterangan: ket,
	}
}

func TestTransformWeekExpansionAndPadding(t *testing.T) {
	rows := []model.JadwalModel{
		jadwalRow("Senin", "Matematika", "Bu Inung", 2, "07:00-08:30"),
		jadwalRow("Senin", "B. Jerman", "Frau Vanda", 1, "08:30-09:15"),
		jadwalRow("Jumat", "KK SIJA", "Bu Nisa", 3, "07:00-09:15"),
	}
	byDay := TransformWeek(rows)

	senin := byDay[1]
	if len(senin) != 12 {
		t.Fatalf("Senin %d sel, mau 12 (diisi sel kosong)", len(senin))
	}
	if senin[0].Subject != "Matematika" || senin[1].Subject != "Matematika" {
		t.Errorf("banyak_jam=2 harus jadi dua sel: %q, %q", senin[0].Subject, senin[1].Subject)
	}
	if senin[0].ID == senin[1].ID {
		t.Errorf("sel hasil ekspansi harus punya id berbeda")
	}
	if senin[2].Subject != "B. Jerman" {
		t.Errorf("sel ketiga = %q, mau B. Jerman", senin[2].Subject)
	}
	if senin[3].Subject != "" || senin[3].Teacher != "" {
		t.Errorf("sel keempat harus kosong: %+v", senin[3])
	}

	jumat := byDay[5]
	if len(jumat) != 3 {
		t.Errorf("Jumat tidak diisi sel kosong, %d sel, mau 3", len(jumat))
	}
}

func TestTransformWeekTruncatesAtTwelve(t *testing.T) {
	rows := []model.JadwalModel{
		jadwalRow("Selasa", "Fisika", "", 20, "07:00-08:30"),
	}
	byDay := TransformWeek(rows)
	if len(byDay[2]) != 12 {
		t.Fatalf("Selasa %d sel, mau dipotong di 12", len(byDay[2]))
	}
	for i, it := range byDay[2] {
		if it.Subject != "Fisika" {
			t.Errorf("sel %d = %q, mau Fisika", i, it.Subject)
		}
	}
}

func TestTransformWeekSkipsUnknownDayAndSorts(t *testing.T) {
	rows := []model.JadwalModel{
		jadwalRow("Minggu", "Ekstrakurikuler", "", 1, "08:00-09:00"),
		jadwalRow("Rabu", "PKK", "", 1, "08:30-10:00"),
		jadwalRow("3", "Bahasa Indonesia", "", 1, "07:00-08:30"),
	}
	byDay := TransformWeek(rows)
	rabu := byDay[3]
	if rabu[0].Subject != "Bahasa Indonesia" || rabu[1].Subject != "PKK" {
		t.Errorf("urutan Rabu = %q, %q; mau urut jam mulai", rabu[0].Subject, rabu[1].Subject)
	}
	for day := 1; day <= 5; day++ {
		for _, it := range byDay[day] {
			if it.Subject == "Ekstrakurikuler" {
				t.Errorf("baris dengan hari tak dikenal harus dibuang")
			}
		}
	}
}

func TestNormalizeHari(t *testing.T) {
	cases := map[string]int{
		"Senin": 1, "SELASA": 2, " rabu ": 3, "kam": 4, "5": 5,
		"Sabtu": 0, "": 0, "7": 0,
	}
	for in, want := range cases {
		if got := NormalizeHari(in); got != want {
			t.Errorf("NormalizeHari(%q) = %d, mau %d", in, got, want)
		}
	}
}
