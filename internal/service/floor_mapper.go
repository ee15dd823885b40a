package service

import (
	"strings"

	"box-scheduler-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// FloorMappingEntry maps one specialty keyword fragment to a floor.
type FloorMappingEntry struct {
	Keyword string `mapstructure:"keyword"`
	Floor   int    `mapstructure:"floor"`
}

// FloorMapping is the versioned specialty-keyword table supplied as an
// external configuration document.
type FloorMapping struct {
	Version int                 `mapstructure:"version"`
	Entries []FloorMappingEntry `mapstructure:"mappings"`
}

// defaultFloorMapping covers the floors in use when no external table is
// supplied.
var defaultFloorMapping = FloorMapping{
	Version: 1,
	Entries: []FloorMappingEntry{
		{Keyword: "cardio", Floor: 4},
		{Keyword: "medicina interna", Floor: 4},
		{Keyword: "pediatr", Floor: 5},
		{Keyword: "ginecolog", Floor: 6},
		{Keyword: "obstetricia", Floor: 6},
		{Keyword: "oftalmolog", Floor: 7},
		{Keyword: "traumatolog", Floor: 8},
		{Keyword: "bronco", Floor: 8},
		{Keyword: "dermatolog", Floor: 9},
		{Keyword: "otorrino", Floor: 10},
		{Keyword: "cirugia", Floor: 12},
		{Keyword: "neurolog", Floor: 13},
	},
}

// LoadFloorMapping reads the keyword table from a YAML document. An empty
// path or a read failure falls back to the built-in table.
func LoadFloorMapping(path string, log *logrus.Logger) FloorMapping {
	if path == "" {
		return defaultFloorMapping
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Warnf("Floor mapping %s unreadable, using built-in table: %v", path, err)
		return defaultFloorMapping
	}

	var mapping FloorMapping
	if err := v.Unmarshal(&mapping); err != nil || len(mapping.Entries) == 0 {
		log.Warnf("Floor mapping %s invalid, using built-in table: %v", path, err)
		return defaultFloorMapping
	}
	return mapping
}

// FloorMapper suggests a floor for a chosen specialty by case-insensitive
// substring match against the keyword table. No match leaves the floor
// unset rather than erroring.
type FloorMapper struct {
	entries []FloorMappingEntry
}

func NewFloorMapper(mapping FloorMapping) *FloorMapper {
	entries := make([]FloorMappingEntry, len(mapping.Entries))
	for i, e := range mapping.Entries {
		entries[i] = FloorMappingEntry{Keyword: entity.FoldAccents(e.Keyword), Floor: e.Floor}
	}
	return &FloorMapper{entries: entries}
}

// SuggestFloor returns (floor, true) for the first keyword fragment
// contained in the specialty, or (0, false) when nothing matches.
func (m *FloorMapper) SuggestFloor(specialty string) (int, bool) {
	folded := entity.FoldAccents(specialty)
	if folded == "" {
		return 0, false
	}
	for _, e := range m.entries {
		if strings.Contains(folded, e.Keyword) {
			return e.Floor, true
		}
	}
	return 0, false
}
