package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Weekday values as they appear in the schedule export (Spanish, lowercase).
const (
	WeekdayMonday    = "lunes"
	WeekdayTuesday   = "martes"
	WeekdayWednesday = "miercoles"
	WeekdayThursday  = "jueves"
	WeekdayFriday    = "viernes"
	WeekdaySaturday  = "sabado"
	WeekdaySunday    = "domingo"
)

// Weekdays lists valid weekday values in week order. The export only
// carries monday..saturday columns; sunday is accepted for assignments.
var Weekdays = []string{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents lowercases s and strips diacritics, so "Miércoles" and
// "miercoles" compare equal.
func FoldAccents(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(diacriticFold, lowered)
	if err != nil {
		return lowered
	}
	return folded
}

// NormalizeWeekday maps any accepted spelling of a weekday to its
// canonical unaccented lowercase form. Returns "" when s is not a weekday.
func NormalizeWeekday(s string) string {
	folded := FoldAccents(s)
	for _, day := range Weekdays {
		if folded == day {
			return day
		}
	}
	return ""
}
