package usecase

import "testing"

func TestNormalizeWindow(t *testing.T) {
	tests := []struct {
		name      string
		weekday   string
		start     string
		end       string
		wantDay   string
		wantStart string
		wantEnd   string
		wantErr   error
	}{
		{"explicit window", "lunes", "09:00", "10:30", "lunes", "09:00", "10:30", nil},
		{"accented weekday", "Miércoles", "08:00", "09:00", "miercoles", "08:00", "09:00", nil},
		{"default one hour end", "martes", "14:00", "", "martes", "14:00", "15:00", nil},
		{"start reformatted", "jueves", "8:5", "9:30", "jueves", "08:05", "09:30", nil},
		{"bad weekday", "feriado", "09:00", "10:00", "", "", "", ErrInvalidWeekday},
		{"bad start", "lunes", "late", "10:00", "", "", "", ErrInvalidTimeFormat},
		{"bad end", "lunes", "09:00", "never", "", "", "", ErrInvalidTimeFormat},
		{"inverted range", "lunes", "10:00", "09:00", "", "", "", ErrInvalidTimeRange},
		{"zero length", "lunes", "10:00", "10:00", "", "", "", ErrInvalidTimeRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			day, start, end, err := normalizeWindow(tc.weekday, tc.start, tc.end)
			if err != tc.wantErr {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if day != tc.wantDay || start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)", day, start, end, tc.wantDay, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
