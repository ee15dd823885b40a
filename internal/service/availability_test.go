package service

import (
	"testing"

	"box-scheduler-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"8:5", 485, false},
		{"19:30", 1170, false},
		{" 09:15 ", 555, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseClock(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.input, err)
			continue
		}
		if got != tc.minutes {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.input, got, tc.minutes)
		}
	}
}

func TestDefaultEnd(t *testing.T) {
	end, err := DefaultEnd("09:00")
	if err != nil {
		t.Fatalf("DefaultEnd returned error: %v", err)
	}
	if end != "10:00" {
		t.Errorf("DefaultEnd(09:00) = %q, want 10:00", end)
	}

	if _, err := DefaultEnd("late"); err == nil {
		t.Error("expected error for malformed start time")
	}
}

func TestFindConflict(t *testing.T) {
	engine := NewAvailabilityEngine(SlotMinutesHourly)
	occupantID := uuid.New()
	existing := []entity.Assignment{
		{ID: occupantID, StartTime: "09:00", EndTime: "10:00"},
	}

	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"same window", "09:00", "10:00", true},
		{"overlapping tail", "09:30", "10:30", true},
		{"overlapping head", "08:30", "09:30", true},
		{"containing", "08:00", "11:00", true},
		{"contained", "09:15", "09:45", true},
		{"abutting after", "10:00", "11:00", false},
		{"abutting before", "08:00", "09:00", false},
		{"disjoint", "11:00", "12:00", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, err := engine.FindConflict(existing, tc.start, tc.end, uuid.Nil)
			if err != nil {
				t.Fatalf("FindConflict returned error: %v", err)
			}
			if (hit != nil) != tc.conflict {
				t.Errorf("[%s, %s): conflict = %v, want %v", tc.start, tc.end, hit != nil, tc.conflict)
			}
		})
	}
}

func TestFindConflictExcludesSelf(t *testing.T) {
	engine := NewAvailabilityEngine(SlotMinutesHourly)
	id := uuid.New()
	existing := []entity.Assignment{
		{ID: id, StartTime: "09:00", EndTime: "10:00"},
	}

	// Editing an assignment must not conflict with its own prior window.
	hit, err := engine.FindConflict(existing, "09:00", "11:00", id)
	if err != nil {
		t.Fatalf("FindConflict returned error: %v", err)
	}
	if hit != nil {
		t.Errorf("edit conflicted with its own prior state: %+v", hit)
	}
}

func TestFindConflictRejectsInvertedRange(t *testing.T) {
	engine := NewAvailabilityEngine(SlotMinutesHourly)
	if _, err := engine.FindConflict(nil, "10:00", "09:00", uuid.Nil); err == nil {
		t.Error("expected error for end before start")
	}
	if _, err := engine.FindConflict(nil, "10:00", "10:00", uuid.Nil); err == nil {
		t.Error("expected error for zero-length window")
	}
}

func TestBuildGridHourly(t *testing.T) {
	engine := NewAvailabilityEngine(SlotMinutesHourly)
	slots := engine.BuildGrid([]entity.Assignment{
		{StartTime: "09:00", EndTime: "10:00"},
	})

	if len(slots) != 12 {
		t.Fatalf("hourly grid has %d slots, want 12", len(slots))
	}
	if slots[0].Time != "08:00" || slots[len(slots)-1].Time != "19:00" {
		t.Errorf("grid spans %s..%s, want 08:00..19:00", slots[0].Time, slots[len(slots)-1].Time)
	}

	for i, slot := range slots {
		occupied := slot.Time == "09:00"
		if slot.Occupied != occupied {
			t.Errorf("slot %d (%s): occupied = %v, want %v", i, slot.Time, slot.Occupied, occupied)
		}
	}
}

func TestBuildGridHalfHour(t *testing.T) {
	engine := NewAvailabilityEngine(SlotMinutesHalfHour)
	slots := engine.BuildGrid([]entity.Assignment{
		{StartTime: "09:00", EndTime: "10:00"},
	})

	if len(slots) != 24 {
		t.Fatalf("half-hour grid has %d slots, want 24", len(slots))
	}
	if slots[len(slots)-1].Time != "19:30" {
		t.Errorf("last slot is %s, want 19:30", slots[len(slots)-1].Time)
	}

	// A booking covers its starting slot and the next one, matching the
	// one-hour default duration.
	for _, slot := range slots {
		occupied := slot.Time == "09:00" || slot.Time == "09:30"
		if slot.Occupied != occupied {
			t.Errorf("slot %s: occupied = %v, want %v", slot.Time, slot.Occupied, occupied)
		}
	}
}

func TestBuildGridIgnoresOutOfRangeStarts(t *testing.T) {
	engine := NewAvailabilityEngine(SlotMinutesHourly)
	slots := engine.BuildGrid([]entity.Assignment{
		{StartTime: "07:00", EndTime: "08:00"},
		{StartTime: "21:00", EndTime: "22:00"},
		{StartTime: "bad", EndTime: "worse"},
	})

	for _, slot := range slots {
		if slot.Occupied {
			t.Errorf("slot %s marked occupied by out-of-range assignment", slot.Time)
		}
	}
}

func TestNewAvailabilityEngineDefaultsToHourly(t *testing.T) {
	if got := NewAvailabilityEngine(45).SlotMinutes(); got != SlotMinutesHourly {
		t.Errorf("unsupported granularity resolved to %d, want %d", got, SlotMinutesHourly)
	}
	if got := NewAvailabilityEngine(SlotMinutesHalfHour).SlotMinutes(); got != SlotMinutesHalfHour {
		t.Errorf("half-hour granularity resolved to %d", got)
	}
}
