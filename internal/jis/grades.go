package jis

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Structural steel grades (JIS G 3136 / JIS G 3106)

// Grade identifies a structural steel grade.
type Grade string

const (
	SN400 Grade = "SN400"
	SN490 Grade = "SN490"
	SM490 Grade = "SM490"
	SM520 Grade = "SM520"
)

// ErrUnsupportedGrade is returned for grades outside the material table.
var ErrUnsupportedGrade = errors.New("unsupported steel grade")

// Limits holds the width-thickness ratio limits for the plate elements
// of a rolled or built-up section.
type Limits struct {
	Web    float64 `json:"web" yaml:"web"`
	Flange float64 `json:"flange" yaml:"flange"`
}

// Material describes a steel grade.
type Material struct {
	Grade Grade   `json:"grade" yaml:"grade"`
	Fy    float64 `json:"fy" yaml:"fy"` // Yield strength, t <= 40mm (MPa)
	Fu    float64 `json:"fu" yaml:"fu"` // Tensile strength (MPa)

	Limits Limits `json:"limits" yaml:"limits"`
}

var materials = map[Grade]Material{
	SN400: {Grade: SN400, Fy: 235, Fu: 400, Limits: Limits{Web: 72, Flange: 12}},
	SN490: {Grade: SN490, Fy: 325, Fu: 490, Limits: Limits{Web: 67, Flange: 11}},
	SM490: {Grade: SM490, Fy: 325, Fu: 490, Limits: Limits{Web: 67, Flange: 11}},
	SM520: {Grade: SM520, Fy: 355, Fu: 520, Limits: Limits{Web: 60, Flange: 10}},
}

// TubeLimits returns the width-thickness limit for the walls of box
// sections, where every plate is supported on both edges: 33·√(235/F).
func (m Material) TubeLimits() Limits {
	limit := 33 * math.Sqrt(235/m.Fy)
	return Limits{Web: limit, Flange: limit}
}

// DefaultGrade is used when a check does not name a grade.
const DefaultGrade = SN400

// Lookup returns the material for a grade name. Names must match a grade
// key exactly, e.g. "SN400".
func Lookup(name string) (Material, error) {
	m, ok := materials[Grade(name)]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnsupportedGrade, name)
	}
	return m, nil
}

// Grades lists the supported grades in name order.
func Grades() []Grade {
	grades := make([]Grade, 0, len(materials))
	for g := range materials {
		grades = append(grades, g)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i] < grades[j] })
	return grades
}
