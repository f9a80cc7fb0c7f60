package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"lipped_channel", KindLippedChannel},
		{"Lipped-Channel", KindLippedChannel},
		{"lc", KindLippedChannel},
		{"H", KindHSection},
		{"h_section", KindHSection},
		{"rhs", KindBox},
		{" rect ", KindRectangular},
		{"circle", KindCircular},
		{"RC", KindRCRectangular},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("triangle")
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind   string
		raw    map[string]any
		layers []RebarLayer
		area   float64
	}{
		{"lipped_channel", map[string]any{"h": 200, "b": 75, "d": 20, "t_w": 2.3, "t_f": 2.3, "t_l": 2.3}, nil, 897},
		{"h_section", map[string]any{"h": 400, "b": 200, "t_w": 8, "t_f": 13}, nil, 8192},
		{"box", map[string]any{"h": 200, "b": 100, "t_w": 6, "t_f": 9}, nil, 3984},
		{"rectangular", map[string]any{"b": 100, "h": 300}, nil, 30000},
		{"circular", map[string]any{"diameter": 2}, nil, 3.141592653589793},
		{"rc_rectangular", map[string]any{"b": 300, "h": 500, "fc": 28}, []RebarLayer{{Y: 250, Area: 0.5}}, 150000 + 0.5*7.041797298068664},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := New(tt.kind, tt.raw, tt.layers)
			require.NoError(t, err)
			assert.Equal(t, Kind(tt.kind), s.Kind())
			assert.InDelta(t, tt.area, s.Area(), 1e-6)
		})
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("triangle", map[string]any{"b": 1}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	_, err = New("h_section", map[string]any{"h": "400", "b": 200, "t_w": 8, "t_f": 13}, nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = New("h_section", map[string]any{"h": -200, "b": 200, "t_w": 8, "t_f": 13}, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = New("h_section", map[string]any{"h": 20, "b": 200, "t_w": 8, "t_f": 13}, nil)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestFieldsCoverEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotEmpty(t, Fields(k), k)
		assert.NotEqual(t, string(k), k.Label(), k)
	}
	assert.Empty(t, Fields("triangle"))
}
