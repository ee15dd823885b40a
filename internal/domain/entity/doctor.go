package entity

// Doctor is one row of the schedule export. The directory snapshot is
// read-only after ingestion; rows with the same RUT are kept as separate
// entries (input fidelity, the parser does not deduplicate).
type Doctor struct {
	RUT       string          `json:"rut"`
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	Status    string          `json:"status"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Schedule  []ScheduleBlock `json:"schedule"`
}

// ScheduleBlock is one weekday's attendance window as declared in the
// export. A doctor has at most one block per weekday.
type ScheduleBlock struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"` // HH:MM, 24h
	EndTime   string `json:"end_time"`   // HH:MM, 24h
	Room      string `json:"room"`       // room label as printed, e.g. "502"
}

// SpecialtyStat aggregates how many doctors hold one specialty.
// Percentage is over the full doctor count, rounded to one decimal.
type SpecialtyStat struct {
	Specialty  string  `json:"specialty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AttendsOn reports whether the doctor has a schedule block on the given
// weekday, accepting accented and unaccented spellings.
func (d *Doctor) AttendsOn(weekday string) bool {
	want := FoldAccents(weekday)
	for _, block := range d.Schedule {
		if FoldAccents(block.Weekday) == want {
			return true
		}
	}
	return false
}

// UsesRoom reports whether any schedule block is held in the given room
// (exact label match).
func (d *Doctor) UsesRoom(room string) bool {
	for _, block := range d.Schedule {
		if block.Room == room {
			return true
		}
	}
	return false
}
