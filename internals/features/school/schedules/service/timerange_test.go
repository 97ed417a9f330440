package service

import "testing"

func TestParseTimeRangeRoundTrip(t *testing.T) {
	cases := []struct {
		in         string
		start, end int
	}{
		{"07:00-08:30", 420, 510},
		{"07.00-08.30", 420, 510},
		{"07:00 – 08:30", 420, 510},
		{"10:00—10:15", 600, 615},
		{"0:05-23:59", 5, 1439},
	}
	for _, c := range cases {
		tr, okS, okE := ParseTimeRange(c.in)
		if !okS || !okE {
			t.Fatalf("ParseTimeRange(%q) okS=%v okE=%v", c.in, okS, okE)
		}
		if tr.StartMin != c.start || tr.EndMin != c.end {
			t.Errorf("ParseTimeRange(%q) = [%d,%d), mau [%d,%d)", c.in, tr.StartMin, tr.EndMin, c.start, c.end)
		}
	}
}

func TestParseTimeRangePartial(t *testing.T) {
	tr, okS, okE := ParseTimeRange("07:00-selesai")
	if !okS || okE {
		t.Fatalf("okS=%v okE=%v, mau start saja yang valid", okS, okE)
	}
	if tr.StartMin != 420 {
		t.Errorf("StartMin = %d, mau 420", tr.StartMin)
	}
	if tr.Label != "07.00" {
		t.Errorf("Label = %q, mau %q", tr.Label, "07.00")
	}

	_, okS, okE = ParseTimeRange("")
	if okS || okE {
		t.Errorf("string kosong harus gagal dua sisi")
	}

	_, okS, okE = ParseTimeRange("upacara pagi")
	if okS || okE {
		t.Errorf("teks tanpa jam harus gagal dua sisi")
	}

	// Jam di luar batas 24 jam ditolak, bukan di-wrap.
	_, okS, _ = ParseTimeRange("25:00-26:00")
	if okS {
		t.Errorf("25:00 tidak boleh dianggap valid")
	}
}

func TestParseTimeRangeLabel(t *testing.T) {
	tr, _, _ := ParseTimeRange("7:05-8:00")
	if tr.Label != "07.05 – 08.00" {
		t.Errorf("Label = %q, mau %q", tr.Label, "07.05 – 08.00")
	}
}
