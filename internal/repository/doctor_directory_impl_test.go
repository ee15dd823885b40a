package repository

import (
	"math"
	"reflect"
	"testing"

	"box-scheduler-backend/internal/domain/entity"
)

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			RUT:       "11111111-1",
			Name:      "Dr. Abarca",
			Specialty: "Pediatría",
			Schedule: []entity.ScheduleBlock{
				{Weekday: "lunes", StartTime: "08:00", EndTime: "09:00", Room: "101"},
				{Weekday: "miercoles", StartTime: "10:00", EndTime: "11:00", Room: "99"},
			},
		},
		{
			RUT:       "22222222-2",
			Name:      "Dra. Beltrán",
			Specialty: "pediatria",
			Schedule: []entity.ScheduleBlock{
				{Weekday: "martes", StartTime: "09:00", EndTime: "10:00", Room: "101"},
			},
		},
		{
			RUT:       "33333333-3",
			Name:      "Dr. Castro",
			Specialty: "Cardiología Infantil",
			Schedule: []entity.ScheduleBlock{
				{Weekday: "viernes", StartTime: "14:00", EndTime: "15:00", Room: "A-2"},
			},
		},
	}
}

func TestSearchByText(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	tests := []struct {
		name string
		text string
		want int
	}{
		{"name substring", "abarca", 1},
		{"rut substring", "2222", 1},
		{"no match", "zzz", 0},
		{"empty matches all", "", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := directory.Search(entity.DoctorFilter{Text: tc.text})
			if len(got) != tc.want {
				t.Errorf("Search(text=%q) returned %d doctors, want %d", tc.text, len(got), tc.want)
			}
		})
	}
}

func TestSearchBySpecialtyContains(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	// An exact specialty and a doctor specialty containing the filter
	// both count.
	if got := directory.Search(entity.DoctorFilter{Specialty: "cardiología"}); len(got) != 1 {
		t.Errorf("contains match returned %d doctors, want 1", len(got))
	}
	if got := directory.Search(entity.DoctorFilter{Specialty: "Cardiología Infantil"}); len(got) != 1 {
		t.Errorf("exact match returned %d doctors, want 1", len(got))
	}
}

func TestSearchByWeekdayAccentInsensitive(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	accented := directory.Search(entity.DoctorFilter{Weekday: "Miércoles"})
	plain := directory.Search(entity.DoctorFilter{Weekday: "miercoles"})

	if len(accented) != 1 || len(plain) != 1 {
		t.Fatalf("weekday search: accented=%d plain=%d, want 1 and 1", len(accented), len(plain))
	}
	if accented[0].RUT != plain[0].RUT {
		t.Errorf("accented and plain spellings matched different doctors")
	}
}

func TestSearchByRoomExact(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	if got := directory.Search(entity.DoctorFilter{Room: "101"}); len(got) != 2 {
		t.Errorf("room 101 returned %d doctors, want 2", len(got))
	}
	if got := directory.Search(entity.DoctorFilter{Room: "10"}); len(got) != 0 {
		t.Errorf("room label must match exactly, got %d doctors for %q", len(got), "10")
	}
}

func TestFindByRUT(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	if d := directory.FindByRUT("33333333-3"); d == nil || d.Name != "Dr. Castro" {
		t.Errorf("FindByRUT returned %+v", d)
	}
	if d := directory.FindByRUT("99999999-9"); d != nil {
		t.Errorf("expected nil for unknown rut, got %+v", d)
	}
}

func TestSpecialtiesNormalizedAndSorted(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	got := directory.Specialties()
	want := []string{"Cardiología infantil", "Pediatría"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Specialties() = %v, want %v", got, want)
	}
}

func TestSpecialtiesAccentCorrections(t *testing.T) {
	directory := NewDoctorDirectory([]entity.Doctor{
		{RUT: "1-9", Name: "A", Specialty: "TRAUMATOLOGIA"},
		{RUT: "2-7", Name: "B", Specialty: "ginecologia"},
	})

	got := directory.Specialties()
	want := []string{"Ginecología", "Traumatología"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Specialties() = %v, want %v", got, want)
	}
}

func TestRoomsNumericSort(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	got := directory.Rooms()
	want := []string{"99", "101", "A-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rooms() = %v, want %v", got, want)
	}
}

func TestSpecialtyStats(t *testing.T) {
	directory := NewDoctorDirectory(sampleDoctors())

	stats := directory.SpecialtyStats()
	if len(stats) != 3 {
		t.Fatalf("expected 3 specialties, got %d", len(stats))
	}

	// Counts are over raw trimmed specialties, sorted by count then name.
	if stats[0].Specialty != "Cardiología Infantil" || stats[0].Count != 1 {
		t.Errorf("unexpected leading stat: %+v", stats[0])
	}

	var total float64
	for _, s := range stats {
		if s.Count != 1 {
			t.Errorf("specialty %q count = %d, want 1", s.Specialty, s.Count)
		}
		total += s.Percentage
	}
	if math.Abs(total-100.0) > 0.2 {
		t.Errorf("percentages sum to %.2f, want about 100", total)
	}
}

func TestSpecialtyStatsEmptyDirectory(t *testing.T) {
	directory := NewDoctorDirectory(nil)
	if stats := directory.SpecialtyStats(); len(stats) != 0 {
		t.Errorf("expected no stats for empty directory, got %v", stats)
	}
}
