package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func builtinMapper() *FloorMapper {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewFloorMapper(LoadFloorMapping("", log))
}

func TestSuggestFloor(t *testing.T) {
	mapper := builtinMapper()

	tests := []struct {
		specialty string
		floor     int
		ok        bool
	}{
		{"Pediatría", 5, true},
		{"pediatria", 5, true},
		{"Traumatología", 8, true},
		{"Cardiología", 4, true},
		{"Medicina Interna", 4, true},
		{"Broncopulmonar", 8, true},
		{"Cirugía General", 12, true},
		{"Odontología", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		floor, ok := mapper.SuggestFloor(tc.specialty)
		if ok != tc.ok || floor != tc.floor {
			t.Errorf("SuggestFloor(%q) = (%d, %v), want (%d, %v)", tc.specialty, floor, ok, tc.floor, tc.ok)
		}
	}
}

func TestLoadFloorMappingFallsBack(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mapping := LoadFloorMapping("testdata/missing.yaml", log)
	if len(mapping.Entries) == 0 {
		t.Fatal("expected built-in table when file is unreadable")
	}

	if floor, ok := NewFloorMapper(mapping).SuggestFloor("Dermatología"); !ok || floor != 9 {
		t.Errorf("built-in table SuggestFloor(Dermatología) = (%d, %v)", floor, ok)
	}
}
