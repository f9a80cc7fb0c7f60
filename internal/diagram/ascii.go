package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/toruinaba/structools/internal/section"
)

const (
	fillRune     = '█'
	centroidRune = 'G'
	shearRune    = 'S'
	rebarRune    = 'o'

	// terminal cells are about twice as tall as they are wide
	cellAspect = 2.0
)

// sampleFractions are the heights within a row at which the outline is
// cut, so that plates thinner than a row still show up
var sampleFractions = []float64{0.01, 0.25, 0.5, 0.75, 0.99}

// DrawASCII renders the section outline to scale, width characters wide,
// with the centroid, shear center, bars and cracked neutral axis marked
func DrawASCII(d Data, width int) string {
	if width < 10 {
		width = 10
	}
	lo, hi := d.bounds()
	sizeX, sizeY := hi.X-lo.X, hi.Y-lo.Y

	rows := int(math.Round(float64(width) * sizeY / sizeX / cellAspect))
	rows = max(4, min(rows, 60))
	cellW, cellH := sizeX/float64(width), sizeY/float64(rows)

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
		y0 := hi.Y - float64(r+1)*cellH

		for _, f := range sampleFractions {
			xs := section.IntersectionsAtY(d.Outline, y0+f*cellH)
			for i := 0; i+1 < len(xs); i += 2 {
				fillSpan(grid[r], xs[i], xs[i+1], lo.X, cellW)
			}
		}
	}

	cell := func(p section.Point) (int, int) {
		c := int((p.X - lo.X) / cellW)
		r := int((hi.Y - p.Y) / cellH)
		return max(0, min(r, rows-1)), max(0, min(c, width-1))
	}

	for _, layer := range d.Rebars {
		r, _ := cell(section.Point{Y: layer.Y})
		xs := section.IntersectionsAtY(d.Outline, layer.Y)
		if len(xs) < 2 {
			continue
		}
		left, right := xs[0], xs[len(xs)-1]
		for _, f := range []float64{0.15, 0.5, 0.85} {
			_, c := cell(section.Point{X: left + f*(right-left), Y: layer.Y})
			grid[r][c] = rebarRune
		}
	}

	if d.ShearCenter != nil {
		r, c := cell(*d.ShearCenter)
		grid[r][c] = shearRune
	}
	gr, gc := cell(d.Centroid)
	grid[gr][gc] = centroidRune

	naRow := -1
	if d.NeutralAxis != nil {
		naRow, _ = cell(section.Point{Y: hi.Y - *d.NeutralAxis})
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(d.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(d.Title)))))
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", width)))
	for r, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		if r == naRow {
			sb.WriteString(" ◄─ N.A.")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", width)))
	sb.WriteString(fmt.Sprintf("  %.1f mm × %.1f mm, one cell ≈ %.1f × %.1f mm\n", sizeX, sizeY, cellW, cellH))

	sb.WriteString("\n  Legend:\n")
	sb.WriteString(fmt.Sprintf("  G = centroid (%.2f, %.2f)\n", d.Centroid.X, d.Centroid.Y))
	if d.ShearCenter != nil {
		note := ""
		if sr, sc := cell(*d.ShearCenter); sr == gr && sc == gc {
			note = ", drawn under G"
		}
		sb.WriteString(fmt.Sprintf("  S = shear center (%.2f, %.2f)%s\n", d.ShearCenter.X, d.ShearCenter.Y, note))
	}
	if len(d.Rebars) > 0 {
		layers := append([]section.RebarLayer(nil), d.Rebars...)
		sort.Slice(layers, func(i, j int) bool { return layers[i].Y > layers[j].Y })
		for _, l := range layers {
			desc := ""
			if l.Description != "" {
				desc = " " + l.Description
			}
			sb.WriteString(fmt.Sprintf("  o = As %.0f mm² at y = %.1f mm%s\n", l.Area, l.Y, desc))
		}
	}
	if d.NeutralAxis != nil {
		sb.WriteString(fmt.Sprintf("  N.A. = cracked neutral axis at c = %.1f mm from top\n", *d.NeutralAxis))
	}

	return sb.String()
}

// fillSpan marks every cell the span [x0, x1] overlaps
func fillSpan(line []rune, x0, x1, originX, cellW float64) {
	first := int((x0 - originX) / cellW)
	last := int(math.Ceil((x1-originX)/cellW)) - 1
	for c := max(first, 0); c <= min(last, len(line)-1); c++ {
		line[c] = fillRune
	}
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; fmt's width counts bytes for non-ASCII text
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(0, n-len([]rune(s))))
}
