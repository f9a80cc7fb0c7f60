package jis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		limits Limits
		fy     float64
	}{
		{"SN400", Limits{Web: 72, Flange: 12}, 235},
		{"SN490", Limits{Web: 67, Flange: 11}, 325},
		{"SM490", Limits{Web: 67, Flange: 11}, 325},
		{"SM520", Limits{Web: 60, Flange: 10}, 355},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.limits, m.Limits)
			assert.Equal(t, tt.fy, m.Fy)
		})
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, name := range []string{"INVALID", "", "SS400", "sn400", " SN400", "SN400 "} {
		_, err := Lookup(name)
		assert.ErrorIs(t, err, ErrUnsupportedGrade, name)
	}
}

func TestGrades(t *testing.T) {
	assert.Equal(t, []Grade{SM490, SM520, SN400, SN490}, Grades())
}

func TestTubeLimits(t *testing.T) {
	m, err := Lookup("SN400")
	require.NoError(t, err)
	assert.InDelta(t, 33.0, m.TubeLimits().Web, 1e-12)

	m, err = Lookup("SN490")
	require.NoError(t, err)
	assert.InDelta(t, 28.06, m.TubeLimits().Flange, 0.01)
}
