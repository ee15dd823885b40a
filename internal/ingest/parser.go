package ingest

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"box-scheduler-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// The export is ;-delimited. Lines starting with "//" are comments, the
// first remaining line is the header. These positions are the historical
// layout of the file and act as the fallback when a header cannot be
// matched by name.
const (
	colRUT       = 0
	colName      = 1
	colSpecialty = 2
	colStatus    = 9
)

const (
	colAttendanceFirst   = 14 // "Lunes".."Sabado" attendance flags
	colScheduleTextFirst = 20 // "Horario Lunes".."Horario Sabado"
)

// scheduleTextRe matches the free-text time window "HH:MM a HH:MM (ROOM)".
var scheduleTextRe = regexp.MustCompile(`(\d+:\d+)\s*a\s*(\d+:\d+)\s*\(([^)]+)\)`)

// noSchedule marks a day without agenda in the export, e.g. "Sin agenda".
const noSchedule = "sin agenda"

// Parser reads the doctor schedule export. Malformed rows reduce data
// completeness instead of failing the load: rows without identity or name
// are skipped, unparsable time windows yield no schedule block.
type Parser struct {
	log *logrus.Logger
}

func NewParser(log *logrus.Logger) *Parser {
	return &Parser{log: log}
}

// Load parses the export at path. A missing or unreadable file returns an
// empty list together with the error so the caller can degrade to an
// empty directory instead of crashing.
func (p *Parser) Load(path string) ([]entity.Doctor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse consumes the raw export content. Doctors come back in file order;
// duplicate identity strings are kept as duplicate entries.
func (p *Parser) Parse(r io.Reader) ([]entity.Doctor, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []entity.Doctor{}, nil
	}

	layout := layoutFromHeader(strings.Split(lines[0], ";"))

	doctors := make([]entity.Doctor, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := strings.Split(line, ";")

		rut := field(fields, layout.rut)
		name := field(fields, layout.name)
		if rut == "" || name == "" {
			p.log.Debugf("schedule export: skipping row %d, missing rut or name", i+2)
			continue
		}

		doctor := entity.Doctor{
			RUT:       rut,
			Name:      name,
			Specialty: field(fields, layout.specialty),
			Status:    field(fields, layout.status),
			Email:     field(fields, len(fields)-2),
			Phone:     field(fields, len(fields)-1),
			Schedule:  parseSchedule(fields, layout),
		}
		doctors = append(doctors, doctor)
	}

	return doctors, nil
}

// parseSchedule extracts at most one block per weekday. The attendance
// flag columns are part of the layout but do not gate block creation:
// only a well-formed time window produces a block.
func parseSchedule(fields []string, layout columnLayout) []entity.ScheduleBlock {
	var blocks []entity.ScheduleBlock
	for i, weekday := range entity.Weekdays[:6] {
		text := field(fields, layout.scheduleText[i])
		if text == "" || strings.Contains(entity.FoldAccents(text), noSchedule) {
			continue
		}
		m := scheduleTextRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		blocks = append(blocks, entity.ScheduleBlock{
			Weekday:   weekday,
			StartTime: m[1],
			EndTime:   m[2],
			Room:      m[3],
		})
	}
	return blocks
}

// columnLayout resolves which column holds which field for one export.
type columnLayout struct {
	rut          int
	name         int
	specialty    int
	status       int
	scheduleText [6]int
}

// layoutFromHeader matches columns by header name and falls back to the
// historical positions for anything it cannot identify.
func layoutFromHeader(headers []string) columnLayout {
	layout := columnLayout{
		rut:       colRUT,
		name:      colName,
		specialty: colSpecialty,
		status:    colStatus,
	}
	for i := range layout.scheduleText {
		layout.scheduleText[i] = colScheduleTextFirst + i
	}

	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = entity.FoldAccents(h)
	}

	if i := findColumn(folded, "rut"); i >= 0 {
		layout.rut = i
	}
	if i := findColumn(folded, "nombre", "medico"); i >= 0 {
		layout.name = i
	}
	if i := findColumn(folded, "especialidad"); i >= 0 {
		layout.specialty = i
	}
	if i := findColumn(folded, "estado"); i >= 0 {
		layout.status = i
	}
	for d, weekday := range entity.Weekdays[:6] {
		if i := findColumn(folded, "horario "+weekday); i >= 0 {
			layout.scheduleText[d] = i
		}
	}

	return layout
}

func findColumn(folded []string, candidates ...string) int {
	for i, h := range folded {
		for _, c := range candidates {
			if h == c {
				return i
			}
		}
	}
	return -1
}

func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
