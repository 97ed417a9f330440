package helper

import "testing"

func TestNormalizeKelas(t *testing.T) {
	cases := map[string]string{
		"XI SIJA 2":   "XI_SIJA_2",
		"xi sija 2":   "XI_SIJA_2",
		"XI-SIJA-2":   "XI_SIJA_2",
		" XI  SIJA 2": "XI_SIJA_2",
		"XI_SIJA_2":   "XI_SIJA_2",
		"":            "",
	}
	for in, want := range cases {
		if got := NormalizeKelas(in); got != want {
			t.Errorf("NormalizeKelas(%q) = %q, mau %q", in, got, want)
		}
	}
}

func TestKelasVariants(t *testing.T) {
	variants := KelasVariants("XI Sija 2")

	want := []string{"XI SIJA 2", "xi sija 2", "XI_SIJA_2", "XISIJA2", "XI-SIJA-2"}
	has := func(v string) bool {
		for _, got := range variants {
			if got == v {
				return true
			}
		}
		return false
	}
	for _, v := range want {
		if !has(v) {
			t.Errorf("varian %q tidak dihasilkan: %v", v, variants)
		}
	}

	seen := map[string]bool{}
	for _, v := range variants {
		if seen[v] {
			t.Errorf("varian duplikat %q", v)
		}
		seen[v] = true
	}

	if got := KelasVariants("  "); got != nil {
		t.Errorf("input kosong harus nil, dapat %v", got)
	}
}
