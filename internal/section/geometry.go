package section

import (
	"math"
	"sort"
)

// Polygon is a closed outline defined by its vertices (in mm).
// Outer boundaries run counter-clockwise, holes clockwise, so that signed
// areas of a section's polygons add up to its net area.
type Polygon []Point

// Outliner is implemented by sections that can describe their outline
// for drawing.
type Outliner interface {
	Outline() []Polygon
}

// SignedArea uses the shoelace formula
func (p Polygon) SignedArea() float64 {
	a, _, _ := p.areaMoments()
	return a
}

// Centroid returns the centroid of the enclosed region
func (p Polygon) Centroid() Point {
	a, sx, sy := p.areaMoments()
	if a == 0 {
		return Point{}
	}
	return Point{X: sx / a, Y: sy / a}
}

// areaMoments returns the signed area and its first moments about the axes
func (p Polygon) areaMoments() (area, sx, sy float64) {
	n := len(p)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea, sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		signedArea += cross
		sumX += (p[i].X + p[j].X) * cross
		sumY += (p[i].Y + p[j].Y) * cross
	}

	return signedArea / 2, sumX / 6, sumY / 6
}

// OutlineArea returns the net area of a set of polygons (holes subtract)
func OutlineArea(polys []Polygon) float64 {
	var area float64
	for _, p := range polys {
		area += p.SignedArea()
	}
	return area
}

// OutlineCentroid returns the centroid of the net region of a set of polygons
func OutlineCentroid(polys []Polygon) Point {
	var area, sx, sy float64
	for _, p := range polys {
		a, x, y := p.areaMoments()
		area += a
		sx += x
		sy += y
	}
	if area == 0 {
		return Point{}
	}
	return Point{X: sx / area, Y: sy / area}
}

// Bounds returns the bounding box of a set of polygons
func Bounds(polys []Polygon) (lo, hi Point) {
	first := true
	for _, p := range polys {
		for _, v := range p {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo.X = math.Min(lo.X, v.X)
			lo.Y = math.Min(lo.Y, v.Y)
			hi.X = math.Max(hi.X, v.X)
			hi.Y = math.Max(hi.Y, v.Y)
		}
	}
	return lo, hi
}

// IntersectionsAtY finds all X coordinates where a horizontal line at Y
// crosses the polygons, sorted. Consecutive pairs bound the filled spans
// (even-odd rule), so holes come out as gaps.
func IntersectionsAtY(polys []Polygon, y float64) []float64 {
	var xs []float64
	for _, p := range polys {
		n := len(p)
		for i := 0; i < n; i++ {
			v1, v2 := p[i], p[(i+1)%n]

			// Check if the edge crosses the Y level
			if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
				t := (y - v1.Y) / (v2.Y - v1.Y)
				xs = append(xs, v1.X+t*(v2.X-v1.X))
			}
		}
	}
	sort.Float64s(xs)
	return xs
}

// WidthAtY calculates the total solid width at a specific Y coordinate
func WidthAtY(polys []Polygon, y float64) float64 {
	xs := IntersectionsAtY(polys, y)

	var width float64
	for i := 0; i+1 < len(xs); i += 2 {
		width += xs[i+1] - xs[i]
	}
	return width
}

func rectangle(x0, y0, x1, y1 float64) Polygon {
	return Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func reversed(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
