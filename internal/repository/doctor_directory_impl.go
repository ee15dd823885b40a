package repository

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"box-scheduler-backend/internal/domain/entity"
	domainRepo "box-scheduler-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// accentCorrections fixes the spellings the export most commonly carries
// without their accent.
var accentCorrections = map[string]string{
	"Traumatologia": "Traumatología",
	"Ginecologia":   "Ginecología",
	"Oftalmologia":  "Oftalmología",
	"Pediatria":     "Pediatría",
}

type doctorDirectory struct {
	doctors  []entity.Doctor
	collator *collate.Collator
}

// NewDoctorDirectory wraps a parsed snapshot. The slice is taken as-is
// and must not be mutated afterwards.
func NewDoctorDirectory(doctors []entity.Doctor) domainRepo.DoctorDirectory {
	return &doctorDirectory{
		doctors:  doctors,
		collator: collate.New(language.Spanish),
	}
}

func (d *doctorDirectory) GetAll() []entity.Doctor {
	return d.doctors
}

func (d *doctorDirectory) FindByRUT(rut string) *entity.Doctor {
	for i := range d.doctors {
		if d.doctors[i].RUT == rut {
			return &d.doctors[i]
		}
	}
	return nil
}

func (d *doctorDirectory) Search(filter entity.DoctorFilter) []entity.Doctor {
	if filter.IsZero() {
		return d.doctors
	}
	results := make([]entity.Doctor, 0, len(d.doctors))
	for _, doctor := range d.doctors {
		if matches(&doctor, filter) {
			results = append(results, doctor)
		}
	}
	return results
}

func matches(doctor *entity.Doctor, filter entity.DoctorFilter) bool {
	if filter.Text != "" {
		term := strings.ToLower(filter.Text)
		if !strings.Contains(strings.ToLower(doctor.Name), term) &&
			!strings.Contains(strings.ToLower(doctor.RUT), term) {
			return false
		}
	}
	if filter.Specialty != "" {
		// Exact match or the doctor's specialty containing the filter
		// text both count. Kept as designed in the source system.
		want := strings.ToLower(filter.Specialty)
		have := strings.ToLower(doctor.Specialty)
		if have == "" || (have != want && !strings.Contains(have, want)) {
			return false
		}
	}
	if filter.Weekday != "" && !doctor.AttendsOn(filter.Weekday) {
		return false
	}
	if filter.Room != "" && !doctor.UsesRoom(filter.Room) {
		return false
	}
	return true
}

// Specialties returns the deduplicated specialty set, normalized to
// first-letter-uppercase with known accent corrections applied, sorted
// with Spanish collation.
func (d *doctorDirectory) Specialties() []string {
	seen := make(map[string]struct{})
	var specialties []string
	for _, doctor := range d.doctors {
		name := normalizeSpecialty(doctor.Specialty)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			specialties = append(specialties, name)
		}
	}
	d.collator.SortStrings(specialties)
	return specialties
}

func normalizeSpecialty(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	name = string(runes)
	if corrected, ok := accentCorrections[name]; ok {
		return corrected
	}
	return name
}

// Rooms returns the deduplicated room labels across all schedule blocks,
// sorted numerically when both labels parse as integers.
func (d *doctorDirectory) Rooms() []string {
	seen := make(map[string]struct{})
	var rooms []string
	for _, doctor := range d.doctors {
		for _, block := range doctor.Schedule {
			if block.Room == "" {
				continue
			}
			if _, ok := seen[block.Room]; !ok {
				seen[block.Room] = struct{}{}
				rooms = append(rooms, block.Room)
			}
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		a, errA := strconv.Atoi(rooms[i])
		b, errB := strconv.Atoi(rooms[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return rooms[i] < rooms[j]
	})
	return rooms
}

// SpecialtyStats counts doctors per trimmed specialty. Percentages are
// over the full doctor count, rounded to one decimal place.
func (d *doctorDirectory) SpecialtyStats() []entity.SpecialtyStat {
	counts := make(map[string]int)
	for _, doctor := range d.doctors {
		specialty := strings.TrimSpace(doctor.Specialty)
		if specialty != "" {
			counts[specialty]++
		}
	}

	total := decimal.NewFromInt(int64(len(d.doctors)))
	stats := make([]entity.SpecialtyStat, 0, len(counts))
	for specialty, count := range counts {
		percentage := 0.0
		if len(d.doctors) > 0 {
			percentage = decimal.NewFromInt(int64(count)).
				Mul(decimal.NewFromInt(100)).
				Div(total).
				Round(1).
				InexactFloat64()
		}
		stats = append(stats, entity.SpecialtyStat{
			Specialty:  specialty,
			Count:      count,
			Percentage: percentage,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Specialty < stats[j].Specialty
	})
	return stats
}
