package entity

// DoctorFilter is a domain-level filter for querying the doctor directory.
// Used by the directory layer to avoid coupling with delivery DTOs.
// Supplied fields are combined with AND; empty fields impose no constraint.
type DoctorFilter struct {
	Text      string // substring match against name OR rut, case-insensitive
	Specialty string // exact match OR substring of the doctor's specialty
	Weekday   string // any schedule block on this weekday (accent-insensitive)
	Room      string // any schedule block in this room (exact label)
}

// IsZero reports whether no filter field is set.
func (f DoctorFilter) IsZero() bool {
	return f.Text == "" && f.Specialty == "" && f.Weekday == "" && f.Room == ""
}
