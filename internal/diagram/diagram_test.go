package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toruinaba/structools/internal/section"
)

func hSection(t *testing.T) section.Section {
	t.Helper()
	s, err := section.NewHSection(section.HSectionDims{H: 400, B: 200, Tw: 8, Tf: 13})
	require.NoError(t, err)
	return s
}

func rcSection(t *testing.T) *section.RCRectangular {
	t.Helper()
	s, err := section.NewRCRectangular(section.RCRectangularDims{
		B: 300, H: 500, Fc: 28,
		Reinforcement: []section.RebarLayer{
			{Y: 60, Area: 1473, Description: "3-25mm"},
			{Y: 440, Area: 628},
		},
	})
	require.NoError(t, err)
	return s
}

// gridLines returns the framed rows of a rendered diagram
func gridLines(out string) []string {
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestFromSection(t *testing.T) {
	t.Run("steel section has a shear center", func(t *testing.T) {
		d, err := FromSection("", hSection(t))
		require.NoError(t, err)
		assert.Equal(t, "H-Section", d.Title)
		require.NotNil(t, d.ShearCenter)
		assert.Nil(t, d.NeutralAxis)
		assert.Empty(t, d.Rebars)
	})

	t.Run("reinforced section has bars and neutral axis", func(t *testing.T) {
		rc := rcSection(t)
		d, err := FromSection("G1", rc)
		require.NoError(t, err)
		assert.Equal(t, "G1", d.Title)
		assert.Len(t, d.Rebars, 2)
		require.NotNil(t, d.NeutralAxis)
		assert.InDelta(t, rc.Cracked().NeutralAxis, *d.NeutralAxis, 1e-9)
		assert.Nil(t, d.ShearCenter)
	})

	t.Run("section without outline", func(t *testing.T) {
		bare := struct{ section.Section }{hSection(t)}
		_, err := FromSection("x", bare)
		assert.ErrorIs(t, err, ErrNoOutline)
	})
}

func TestDrawASCII(t *testing.T) {
	t.Run("H-section flanges and web", func(t *testing.T) {
		d, err := FromSection("H-400x200", hSection(t))
		require.NoError(t, err)

		out := DrawASCII(d, 40)
		rows := gridLines(out)
		require.Len(t, rows, 40)

		assert.Equal(t, "  │"+strings.Repeat("█", 40)+"│", rows[0])
		assert.Equal(t, "  │"+strings.Repeat("█", 40)+"│", rows[len(rows)-1])

		// the web is a narrow run in the middle
		mid := []rune(rows[10])
		assert.Equal(t, ' ', mid[3])
		assert.Equal(t, '█', mid[3+20])

		assert.Contains(t, out, "H-400X200")
		assert.Contains(t, out, "G = centroid (100.00, 200.00)")
		assert.Contains(t, out, "drawn under G")
	})

	t.Run("box shows the hollow", func(t *testing.T) {
		s, err := section.NewBox(section.BoxDims{H: 200, B: 200, Tw: 10, Tf: 10})
		require.NoError(t, err)
		d, err := FromSection("", s)
		require.NoError(t, err)

		rows := gridLines(DrawASCII(d, 20))
		require.Len(t, rows, 10)
		mid := []rune(rows[3])
		assert.Equal(t, '█', mid[3])
		assert.Equal(t, ' ', mid[3+6])
	})

	t.Run("lipped channel shear center is off the centroid", func(t *testing.T) {
		s, err := section.NewLippedChannel(section.LippedChannelDims{H: 200, B: 75, D: 20, Tw: 2.3, Tf: 2.3, Tl: 2.3})
		require.NoError(t, err)
		d, err := FromSection("", s)
		require.NoError(t, err)

		out := DrawASCII(d, 40)
		assert.Contains(t, out, "S = shear center")
		assert.NotContains(t, out, "drawn under G")
		assert.Contains(t, strings.Join(gridLines(out), ""), "S")
	})

	t.Run("reinforced section marks bars and neutral axis", func(t *testing.T) {
		d, err := FromSection("", rcSection(t))
		require.NoError(t, err)

		out := DrawASCII(d, 30)
		assert.Contains(t, out, "◄─ N.A.")
		assert.Contains(t, out, "As 1473 mm² at y = 60.0 mm 3-25mm")
		assert.Equal(t, 6, strings.Count(strings.Join(gridLines(out), ""), "o"))
	})

	t.Run("narrow width is clamped", func(t *testing.T) {
		d, err := FromSection("", hSection(t))
		require.NoError(t, err)
		rows := gridLines(DrawASCII(d, 2))
		assert.Len(t, []rune(rows[0]), 10+4)
	})
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Width-thickness", []string{"Flange  7.69 ≤ 12.00  OK", "Web  46.75 ≤ 72.00  OK"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)), line)
	}
	assert.Contains(t, out, "Flange  7.69 ≤ 12.00  OK")
}

func TestExportImage(t *testing.T) {
	dir := t.TempDir()

	d, err := FromSection("G1", rcSection(t))
	require.NoError(t, err)

	for _, name := range []string{"g1.png", "g1.svg", "g1.pdf"} {
		path, err := ExportImage(d, filepath.Join(dir, name))
		require.NoError(t, err, name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	t.Run("unknown extension becomes png", func(t *testing.T) {
		path, err := ExportImage(d, filepath.Join(dir, "nested", "g1.dat"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "nested", "g1.dat.png"), path)
		assert.FileExists(t, path)
	})

	t.Run("steel section", func(t *testing.T) {
		hd, err := FromSection("", hSection(t))
		require.NoError(t, err)
		path, err := ExportImage(hd, filepath.Join(dir, "h.svg"))
		require.NoError(t, err)
		assert.FileExists(t, path)
	})
}
