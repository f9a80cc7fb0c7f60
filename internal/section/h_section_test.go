package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHSection(t *testing.T) *HSection {
	t.Helper()
	s, err := NewHSection(HSectionDims{H: 400, B: 200, Tw: 8, Tf: 13})
	require.NoError(t, err)
	return s
}

func TestHSectionAreas(t *testing.T) {
	s := newTestHSection(t)

	assert.Equal(t, 2992.0, s.WebArea())
	assert.Equal(t, 5200.0, s.FlangeArea())
	assert.Equal(t, 8192.0, s.Area())
}

func TestHSectionSymmetry(t *testing.T) {
	s := newTestHSection(t)

	assert.Equal(t, Point{X: 100, Y: 200}, s.Centroid())
	assert.Equal(t, s.Centroid(), s.ShearCenter())
	assert.Greater(t, s.MomentOfInertiaStrong(), s.MomentOfInertiaWeak())
}

func TestHSectionProperties(t *testing.T) {
	s := newTestHSection(t)

	assert.InDelta(t, 229648682.67, s.MomentOfInertiaStrong(), 0.01)
	assert.InDelta(t, 17349290.67, s.MomentOfInertiaWeak(), 0.01)
	assert.InDelta(t, 1148243.41, s.SectionModulusStrong(), 0.01)
	assert.InDelta(t, 173492.91, s.SectionModulusWeak(), 0.01)
	assert.InDelta(t, 356762.67, s.TorsionConstant(), 0.01)
	assert.InEpsilon(t, 6.48999e11, s.WarpingConstant(), 1e-6)
}

func TestHSectionWidthThickness(t *testing.T) {
	s := newTestHSection(t)

	t.Run("SN400", func(t *testing.T) {
		check, err := s.CheckWidthThickness("SN400")
		require.NoError(t, err)

		assert.Equal(t, RatioCheck{Ratio: 46.75, Limit: 72, Status: StatusOK}, check.Web)
		assert.Equal(t, RatioCheck{Ratio: 7.69, Limit: 12, Status: StatusOK}, check.Flange)
		assert.True(t, check.OK())
	})

	t.Run("SM520 limits", func(t *testing.T) {
		check, err := s.CheckWidthThickness("SM520")
		require.NoError(t, err)
		assert.Equal(t, 60.0, check.Web.Limit)
		assert.Equal(t, 10.0, check.Flange.Limit)
	})

	t.Run("grade keys are case sensitive", func(t *testing.T) {
		_, err := s.CheckWidthThickness("sm520")
		assert.ErrorIs(t, err, ErrUnsupportedGrade)
	})

	t.Run("empty grade defaults to SN400", func(t *testing.T) {
		check, err := s.CheckWidthThickness("")
		require.NoError(t, err)
		assert.Equal(t, "SN400", string(check.Grade))
	})

	t.Run("unsupported grade", func(t *testing.T) {
		_, err := s.CheckWidthThickness("INVALID")
		assert.ErrorIs(t, err, ErrUnsupportedGrade)
	})

	t.Run("slender web", func(t *testing.T) {
		slender, err := NewHSection(HSectionDims{H: 900, B: 200, Tw: 6, Tf: 13})
		require.NoError(t, err)

		check, err := slender.CheckWidthThickness("SM520")
		require.NoError(t, err)
		assert.Equal(t, StatusNG, check.Web.Status)
		assert.Equal(t, StatusOK, check.Flange.Status)
		assert.False(t, check.OK())
	})
}

func TestHSectionDegenerate(t *testing.T) {
	tests := []struct {
		name string
		dims HSectionDims
	}{
		{"flanges meet", HSectionDims{H: 26, B: 200, Tw: 8, Tf: 13}},
		{"flanges overlap", HSectionDims{H: 20, B: 200, Tw: 8, Tf: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHSection(tt.dims)
			assert.ErrorIs(t, err, ErrDegenerateGeometry)
		})
	}
}

func TestHSectionOutOfRange(t *testing.T) {
	_, err := NewHSection(HSectionDims{H: -200, B: 200, Tw: 8, Tf: 13})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.EqualError(t, err, "h must be positive, got -200")
}
