package ingest

import (
	"io"
	"strings"
	"testing"

	"box-scheduler-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newTestParser() *Parser {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewParser(log)
}

const namedHeader = "Rut;Nombre;Especialidad;Estado;Horario Lunes;Horario Martes;Horario Miércoles;Horario Jueves;Horario Viernes;Horario Sábado;Email;Telefono"

func TestParseNamedHeader(t *testing.T) {
	input := strings.Join([]string{
		"// export semanal",
		namedHeader,
		"",
		"11111111-1;Dr. Abarca;Pediatría;Activo;08:00 a 09:00 (101);Sin agenda;;No disponible;10:00 a 12:00 (202);;correo@x.cl;+56911111111",
	}, "\n")

	doctors, err := newTestParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doctors) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(doctors))
	}

	d := doctors[0]
	if d.RUT != "11111111-1" || d.Name != "Dr. Abarca" || d.Specialty != "Pediatría" || d.Status != "Activo" {
		t.Errorf("unexpected identity fields: %+v", d)
	}
	if d.Email != "correo@x.cl" || d.Phone != "+56911111111" {
		t.Errorf("unexpected contact fields: email=%q phone=%q", d.Email, d.Phone)
	}

	want := []entity.ScheduleBlock{
		{Weekday: "lunes", StartTime: "08:00", EndTime: "09:00", Room: "101"},
		{Weekday: "viernes", StartTime: "10:00", EndTime: "12:00", Room: "202"},
	}
	if len(d.Schedule) != len(want) {
		t.Fatalf("expected %d schedule blocks, got %d: %+v", len(want), len(d.Schedule), d.Schedule)
	}
	for i, block := range want {
		if d.Schedule[i] != block {
			t.Errorf("block %d: got %+v, want %+v", i, d.Schedule[i], block)
		}
	}
}

func TestParseSkipsRowsWithoutIdentity(t *testing.T) {
	input := strings.Join([]string{
		namedHeader,
		";Dr. Sin Rut;Cardiología;Activo;;;;;;;a@b.cl;+5691",
		"22222222-2;;Cardiología;Activo;;;;;;;a@b.cl;+5691",
		"33333333-3;Dra. Rojas;Cardiología;Activo;;;;;;;rojas@x.cl;+5692",
	}, "\n")

	doctors, err := newTestParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doctors) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(doctors))
	}
	if doctors[0].RUT != "33333333-3" {
		t.Errorf("kept wrong row: %+v", doctors[0])
	}
}

func TestParseKeepsDuplicateRUTs(t *testing.T) {
	input := strings.Join([]string{
		namedHeader,
		"44444444-4;Dr. Pardo;Oftalmología;Activo;09:00 a 10:00 (301);;;;;;p@x.cl;+5693",
		"44444444-4;Dr. Pardo;Oftalmología;Activo;;10:00 a 11:00 (301);;;;;p@x.cl;+5693",
	}, "\n")

	doctors, err := newTestParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected both duplicate rows kept, got %d", len(doctors))
	}
}

func TestParseScheduleTextGating(t *testing.T) {
	tests := []struct {
		name   string
		monday string
		blocks int
	}{
		{"well-formed window", "08:00 a 09:30 (502)", 1},
		{"extra text around window", "turno 08:00 a 09:30 (502) confirmado", 1},
		{"sin agenda", "Sin agenda", 0},
		{"sin agenda accented case", "SIN AGENDA", 0},
		{"empty", "", 0},
		{"no parseable window", "mañana", 0},
		{"window without room", "08:00 a 09:30", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := "55555555-5;Dra. Vidal;Dermatología;Activo;" + tc.monday + ";;;;;;v@x.cl;+5694"
			doctors, err := newTestParser().Parse(strings.NewReader(namedHeader + "\n" + row))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if len(doctors) != 1 {
				t.Fatalf("expected 1 doctor, got %d", len(doctors))
			}
			if len(doctors[0].Schedule) != tc.blocks {
				t.Errorf("got %d blocks, want %d: %+v", len(doctors[0].Schedule), tc.blocks, doctors[0].Schedule)
			}
		})
	}
}

func TestParsePositionalFallback(t *testing.T) {
	// A header with unrecognizable names forces the historical column
	// positions: 0=rut, 1=name, 2=specialty, 9=status, 20..25=schedule
	// texts, then email and phone as the trailing pair.
	header := make([]string, 28)
	for i := range header {
		header[i] = "col"
	}

	row := make([]string, 28)
	row[0] = "66666666-6"
	row[1] = "Dr. Fuentes"
	row[2] = "Neurología"
	row[9] = "Activo"
	row[20] = "14:00 a 16:00 (803)"
	row[26] = "f@x.cl"
	row[27] = "+5695"

	input := strings.Join(header, ";") + "\n" + strings.Join(row, ";")
	doctors, err := newTestParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doctors) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(doctors))
	}

	d := doctors[0]
	if d.Specialty != "Neurología" || d.Status != "Activo" {
		t.Errorf("positional fields not resolved: %+v", d)
	}
	if d.Email != "f@x.cl" || d.Phone != "+5695" {
		t.Errorf("trailing contact fields not resolved: email=%q phone=%q", d.Email, d.Phone)
	}
	if len(d.Schedule) != 1 || d.Schedule[0].Weekday != "lunes" || d.Schedule[0].Room != "803" {
		t.Errorf("unexpected schedule: %+v", d.Schedule)
	}
}

func TestParseEmptyInput(t *testing.T) {
	doctors, err := newTestParser().Parse(strings.NewReader("// solo comentarios\n\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doctors) != 0 {
		t.Fatalf("expected empty result, got %d", len(doctors))
	}
}

func TestLoadMissingFile(t *testing.T) {
	doctors, err := newTestParser().Load("testdata/does-not-exist.csv")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if len(doctors) != 0 {
		t.Fatalf("expected no doctors on load failure, got %d", len(doctors))
	}
}
