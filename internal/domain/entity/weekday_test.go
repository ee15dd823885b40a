package entity

import "testing"

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Miércoles", "miercoles"},
		{"SÁBADO", "sabado"},
		{"  lunes ", "lunes"},
		{"Pediatría", "pediatria"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := FoldAccents(tc.input); got != tc.want {
			t.Errorf("FoldAccents(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"lunes", "lunes"},
		{"Miércoles", "miercoles"},
		{"miercoles", "miercoles"},
		{"SÁBADO", "sabado"},
		{"domingo", "domingo"},
		{"feriado", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizeWeekday(tc.input); got != tc.want {
			t.Errorf("NormalizeWeekday(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
