package service

import "testing"

func TestGenerateDaySlotsCount(t *testing.T) {
	for day := 1; day <= 5; day++ {
		slots := GenerateDaySlots(day)
		if len(slots) != 12 {
			t.Errorf("hari %d: %d slot, mau 12", day, len(slots))
		}
	}
}

func TestGenerateDaySlotsNonOverlap(t *testing.T) {
	for day := 1; day <= 5; day++ {
		slots := GenerateDaySlots(day)
		for i := range slots {
			if slots[i].EndMin-slots[i].StartMin != 45 {
				t.Errorf("hari %d slot %d: durasi %d menit", day, i, slots[i].EndMin-slots[i].StartMin)
			}
			if i == 0 {
				continue
			}
			if slots[i].StartMin < slots[i-1].EndMin {
				t.Errorf("hari %d: slot %d [%d,%d) tumpang tindih slot %d [%d,%d)",
					day, i, slots[i].StartMin, slots[i].EndMin, i-1, slots[i-1].StartMin, slots[i-1].EndMin)
			}
			if slots[i].StartMin <= slots[i-1].StartMin {
				t.Errorf("hari %d: jam mulai tidak menaik di slot %d", day, i)
			}
		}
	}
}

func TestGenerateDaySlotsAvoidBreaks(t *testing.T) {
	breaks := []struct{ start, end int }{{600, 615}, {705, 720}}
	for day := 1; day <= 4; day++ {
		for i, s := range GenerateDaySlots(day) {
			for _, b := range breaks {
				if s.StartMin < b.end && s.EndMin > b.start {
					t.Errorf("hari %d slot %d [%d,%d) menabrak istirahat [%d,%d)",
						day, i, s.StartMin, s.EndMin, b.start, b.end)
				}
			}
		}
	}
}

func TestGenerateDaySlotsFridayContiguous(t *testing.T) {
	slots := GenerateDaySlots(5)
	if slots[0].StartMin != 420 || slots[0].EndMin != 465 {
		t.Fatalf("slot pertama = [%d,%d), mau [420,465)", slots[0].StartMin, slots[0].EndMin)
	}
	if slots[11].StartMin != 915 || slots[11].EndMin != 960 {
		t.Fatalf("slot terakhir = [%d,%d), mau [915,960)", slots[11].StartMin, slots[11].EndMin)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].StartMin != slots[i-1].EndMin {
			t.Errorf("Jumat harus rapat tanpa jeda, slot %d mulai %d setelah %d", i, slots[i].StartMin, slots[i-1].EndMin)
		}
	}
}
