package service

import "testing"

func TestDefaultStatusMapperNormalize(t *testing.T) {
	m := DefaultStatusMapper()
	cases := map[string]string{
		"hadir":       StatusHadir,
		"Present":     StatusHadir,
		"  MASUK  ":   StatusHadir,
		"terlambat":   StatusHadir,
		"izin":        StatusIzin,
		"sakit":       StatusIzin,
		"permission":  StatusIzin,
		"leave":       StatusIzin,
		"alpha":       StatusAlpha,
		"absent":      StatusAlpha,
		"bolos":       StatusAlpha,
		"tidak_hadir": StatusAlpha,
		"":            StatusOther,
		"dispensasi":  StatusOther,
	}
	for in, want := range cases {
		if got := m.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, mau %q", in, got, want)
		}
	}
}

func TestNewStatusMapperOverride(t *testing.T) {
	m := NewStatusMapper(map[string][]string{
		StatusIzin: {"dispensasi"},
	})
	if got := m.Normalize("Dispensasi"); got != StatusIzin {
		t.Errorf("alias tambahan harus dikenali, dapat %q", got)
	}
	if got := m.Normalize("hadir"); got != StatusOther {
		t.Errorf("mapper kosong tidak mewarisi bawaan, dapat %q", got)
	}
}
