package section

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimensions(t *testing.T) {
	t.Run("numeric kinds", func(t *testing.T) {
		raw := map[string]any{
			"h":   200,
			"b":   float32(75),
			"d":   json.Number("20"),
			"t_w": 2.3,
			"t_f": uint8(3),
			"t_l": int64(2),
		}

		got, err := ParseDimensions(raw, "h", "b", "d", "t_w", "t_f", "t_l")
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{
			"h": 200, "b": 75, "d": 20, "t_w": 2.3, "t_f": 3, "t_l": 2,
		}, got)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		got, err := ParseDimensions(map[string]any{"b": 1.0, "h": 2.0, "note": "x"}, "b", "h")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	tests := []struct {
		name  string
		raw   map[string]any
		want  error
		field string
		msg   string
	}{
		{"missing", map[string]any{"b": 100.0}, ErrInvalidDimension, "h", "h is required"},
		{"null", map[string]any{"b": 100.0, "h": nil}, ErrInvalidDimension, "h", "h is required"},
		{"string", map[string]any{"b": 100.0, "h": "tall"}, ErrInvalidDimension, "h", "h must be a real number, got tall (string)"},
		{"bool", map[string]any{"b": true, "h": 1.0}, ErrInvalidDimension, "b", "b must be a real number, got true (bool)"},
		{"NaN", map[string]any{"b": math.NaN(), "h": 1.0}, ErrInvalidDimension, "b", ""},
		{"infinite", map[string]any{"b": 100.0, "h": math.Inf(1)}, ErrInvalidDimension, "h", ""},
		{"negative", map[string]any{"b": 100.0, "h": -200.0}, ErrOutOfRange, "h", "h must be positive, got -200"},
		{"zero", map[string]any{"b": 0, "h": 200.0}, ErrOutOfRange, "b", "b must be positive, got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDimensions(tt.raw, "b", "h")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var dimErr *DimensionError
			require.True(t, errors.As(err, &dimErr))
			assert.Equal(t, tt.field, dimErr.Field)
			if tt.msg != "" {
				assert.EqualError(t, err, tt.msg)
			}
		})
	}
}

func TestGeometryError(t *testing.T) {
	err := requireNonDegenerate("centroid x", 1e-12)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.EqualError(t, err, "degenerate geometry: centroid x is zero")

	assert.NoError(t, requireNonDegenerate("centroid x", 1))
}

func TestGeometryErrorNotFinite(t *testing.T) {
	err := requireNonDegenerate("weak-axis moment of inertia", math.Inf(1))
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.EqualError(t, err, "degenerate geometry: weak-axis moment of inertia is not finite")

	assert.ErrorIs(t, requireNonDegenerate("centroid x", math.NaN()), ErrDegenerateGeometry)
}

func TestOverflowingDimensions(t *testing.T) {
	build := map[string]func() error{
		"lipped channel": func() error {
			_, err := NewLippedChannel(LippedChannelDims{H: 1e120, B: 75, D: 20, Tw: 2.3, Tf: 2.3, Tl: 2.3})
			return err
		},
		"h-section": func() error {
			_, err := NewHSection(HSectionDims{H: 1e120, B: 200, Tw: 8, Tf: 13})
			return err
		},
		"box": func() error {
			_, err := NewBox(BoxDims{H: 1e120, B: 200, Tw: 9, Tf: 9})
			return err
		},
		"rectangular": func() error {
			_, err := NewRectangular(RectangularDims{B: 1e200, H: 1e200})
			return err
		},
		"circular": func() error {
			_, err := NewCircular(CircularDims{Diameter: 1e100})
			return err
		},
		"rc rectangular": func() error {
			_, err := NewRCRectangular(RCRectangularDims{B: 300, H: 1e120, Fc: 28, Reinforcement: []RebarLayer{{Y: 60, Area: 1500}}})
			return err
		},
	}

	for name, fn := range build {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDegenerateGeometry)

			var geoErr *GeometryError
			assert.True(t, errors.As(err, &geoErr))
		})
	}

	t.Run("message names the quantity", func(t *testing.T) {
		_, err := NewHSection(HSectionDims{H: 1e120, B: 200, Tw: 8, Tf: 13})
		assert.EqualError(t, err, "degenerate geometry: strong-axis moment of inertia is not finite")
	})
}
