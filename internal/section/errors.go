package section

import (
	"errors"
	"fmt"

	"github.com/toruinaba/structools/internal/jis"
)

var (
	// ErrInvalidDimension is returned for a dimension that is missing or
	// is not a finite real number.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRange is returned for a dimension that is zero or negative.
	ErrOutOfRange = errors.New("dimension out of range")

	// ErrDegenerateGeometry is returned when the dimensions are individually
	// valid but describe a section whose derived quantities collapse, such
	// as a web with no height or a zero denominator.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnsupportedShape is returned for shape kinds outside the closed set.
	ErrUnsupportedShape = errors.New("unsupported section shape")

	// ErrUnsupportedGrade is returned by width-thickness checks for an
	// unknown steel grade.
	ErrUnsupportedGrade = jis.ErrUnsupportedGrade
)

// DimensionError names the input that failed validation.
type DimensionError struct {
	Field string
	Value any
	Err   error // ErrInvalidDimension or ErrOutOfRange

	// Reason overrides the default message, e.g. "must be below h"
	Reason string
}

func (e *DimensionError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s %s, got %v", e.Field, e.Reason, e.Value)
	case e.Err == ErrOutOfRange:
		return fmt.Sprintf("%s must be positive, got %v", e.Field, e.Value)
	case e.Value == nil:
		return fmt.Sprintf("%s is required", e.Field)
	default:
		return fmt.Sprintf("%s must be a real number, got %v (%T)", e.Field, e.Value, e.Value)
	}
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}

// GeometryError names the derived quantity that made a section degenerate.
type GeometryError struct {
	Quantity string
	Reason   string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s %s", e.Quantity, e.Reason)
}

func (e *GeometryError) Unwrap() error {
	return ErrDegenerateGeometry
}
