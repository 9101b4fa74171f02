// internal/workout/table.go
package workout

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Table хранит статическую таблицу "упражнение -> ккал в минуту",
// загружаемую один раз из yaml-конфигурации.
type Table struct {
	exercises map[string]float64
}

func NewTable(exercises map[string]float64) *Table {
	return &Table{exercises: exercises}
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises config: %w", err)
	}

	exercises := make(map[string]float64)
	if err := yaml.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("failed to parse exercises config: %w", err)
	}

	return NewTable(exercises), nil
}

// Rate returns the calories burned per minute, 0 for an unknown exercise.
func (t *Table) Rate(name string) float64 {
	return t.exercises[name]
}

// Burned computes calories burned for the given duration.
func (t *Table) Burned(name string, minutes float64) float64 {
	return t.Rate(name) * minutes
}

// Names returns all known exercise names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.exercises))
	for name := range t.exercises {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
