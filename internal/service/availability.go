package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"box-scheduler-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Supported occupancy-grid granularities. The granularity is a deployment
// configuration constant, not a per-request parameter.
const (
	SlotMinutesHourly   = 60
	SlotMinutesHalfHour = 30
)

// The hourly grid offers starting slots 08:00..19:00, the half-hour grid
// 08:00..19:30 (bookable day ends at 20:00).
const (
	gridStartMinutes       = 8 * 60
	gridEndMinutesHourly   = 19 * 60
	gridEndMinutesHalfHour = 20 * 60
	defaultDurationMinutes = 60
)

// ErrInvalidClock is returned for time strings not in HH:MM form.
var ErrInvalidClock = errors.New("invalid time, expected HH:MM")

// TimeSlot is one cell of the weekly occupancy grid.
type TimeSlot struct {
	Time     string `json:"time"`
	Occupied bool   `json:"occupied"`
}

// AvailabilityEngine decides whether a prospective assignment may be
// created or edited, and builds the occupancy view for one (room, weekday).
type AvailabilityEngine struct {
	slotMinutes int
}

func NewAvailabilityEngine(slotMinutes int) *AvailabilityEngine {
	if slotMinutes != SlotMinutesHalfHour {
		slotMinutes = SlotMinutesHourly
	}
	return &AvailabilityEngine{slotMinutes: slotMinutes}
}

func (e *AvailabilityEngine) SlotMinutes() int {
	return e.slotMinutes
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidClock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DefaultEnd returns start plus the default one-hour consultation.
func DefaultEnd(startTime string) (string, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	return FormatClock(start + defaultDurationMinutes), nil
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Abutting intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// FindConflict returns the first assignment in the (room, weekday)
// conflict set that overlaps [startTime, endTime). The assignment with
// excludeID is skipped so an edit never conflicts with its own prior
// state. Entries with unparsable times are ignored.
func (e *AvailabilityEngine) FindConflict(existing []entity.Assignment, startTime, endTime string, excludeID uuid.UUID) (*entity.Assignment, error) {
	newStart, err := ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	newEnd, err := ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	if newEnd <= newStart {
		return nil, ErrInvalidClock
	}

	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		start, err := ParseClock(existing[i].StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(existing[i].EndTime)
		if err != nil {
			continue
		}
		if Overlaps(newStart, newEnd, start, end) {
			return &existing[i], nil
		}
	}
	return nil, nil
}

// BuildGrid produces the occupancy array for one (room, weekday) from its
// existing assignments. Each assignment marks its starting slot; under
// half-hour granularity it also marks the following slot to cover the
// one-hour default duration.
func (e *AvailabilityEngine) BuildGrid(existing []entity.Assignment) []TimeSlot {
	lastStart := gridEndMinutesHourly
	if e.slotMinutes == SlotMinutesHalfHour {
		lastStart = gridEndMinutesHalfHour - e.slotMinutes
	}

	var slots []TimeSlot
	for at := gridStartMinutes; at <= lastStart; at += e.slotMinutes {
		slots = append(slots, TimeSlot{Time: FormatClock(at)})
	}

	for _, assignment := range existing {
		start, err := ParseClock(assignment.StartTime)
		if err != nil {
			continue
		}
		idx := (start - gridStartMinutes) / e.slotMinutes
		if idx < 0 || idx >= len(slots) {
			continue
		}
		slots[idx].Occupied = true
		if e.slotMinutes == SlotMinutesHalfHour && idx+1 < len(slots) {
			slots[idx+1].Occupied = true
		}
	}
	return slots
}
