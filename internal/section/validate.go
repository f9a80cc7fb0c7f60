package section

import (
	"encoding/json"
	"math"
)

// nearZero is the smallest derived denominator (mm, mm², mm⁴) accepted
// before a section is considered degenerate.
const nearZero = 1e-9

// dimension pairs a field name with its value for validation
type dimension struct {
	name  string
	value float64
}

// requirePositive checks that v is a finite, strictly positive number
func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DimensionError{Field: name, Value: v, Err: ErrInvalidDimension}
	}
	if v <= 0 {
		return &DimensionError{Field: name, Value: v, Err: ErrOutOfRange}
	}
	return nil
}

// validate checks every dimension in order and reports the first failure
func validate(dims ...dimension) error {
	for _, d := range dims {
		if err := requirePositive(d.name, d.value); err != nil {
			return err
		}
	}
	return nil
}

// requireNonDegenerate fails when a derived denominator is effectively zero
// or has overflowed
func requireNonDegenerate(quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &GeometryError{Quantity: quantity, Reason: "is not finite"}
	}
	if math.Abs(v) < nearZero {
		return &GeometryError{Quantity: quantity, Reason: "is zero"}
	}
	return nil
}

// requireFinite checks every derived property of a freshly built section,
// so that inputs too large for float64 fail at construction instead of
// surfacing as ±Inf later
func requireFinite(s Section) error {
	c := s.Centroid()
	quantities := []dimension{
		{"area", s.Area()},
		{"centroid x", c.X},
		{"centroid y", c.Y},
		{"strong-axis moment of inertia", s.MomentOfInertiaStrong()},
		{"weak-axis moment of inertia", s.MomentOfInertiaWeak()},
		{"strong-axis section modulus", s.SectionModulusStrong()},
		{"weak-axis section modulus", s.SectionModulusWeak()},
		{"torsion constant", s.TorsionConstant()},
		{"warping constant", s.WarpingConstant()},
	}
	if tw, ok := s.(ThinWalled); ok {
		sc := tw.ShearCenter()
		quantities = append(quantities, dimension{"shear center x", sc.X}, dimension{"shear center y", sc.Y})
	}

	for _, q := range quantities {
		if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
			return &GeometryError{Quantity: q.name, Reason: "is not finite"}
		}
	}
	if s.Area() <= 0 {
		return &GeometryError{Quantity: "area", Reason: "must be positive"}
	}
	return nil
}

// ParseDimensions converts raw named values (decoded JSON/YAML, spreadsheet
// cells, flags) into validated dimensions. Every listed field must be
// present, numeric and strictly positive; the first failure is returned as
// a *DimensionError.
func ParseDimensions(raw map[string]any, fields ...string) (map[string]float64, error) {
	out := make(map[string]float64, len(fields))
	for _, field := range fields {
		v, ok := raw[field]
		if !ok || v == nil {
			return nil, &DimensionError{Field: field, Err: ErrInvalidDimension}
		}
		x, ok := toFloat(v)
		if !ok {
			return nil, &DimensionError{Field: field, Value: v, Err: ErrInvalidDimension}
		}
		if err := requirePositive(field, x); err != nil {
			return nil, err
		}
		out[field] = x
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
