package section

import "math"

// RectangularDims holds the dimensions of a solid rectangle (mm)
type RectangularDims struct {
	B float64 `json:"b" yaml:"b"` // width
	H float64 `json:"h" yaml:"h"` // height
}

// Rectangular is a solid rectangular section
type Rectangular struct {
	dims RectangularDims
}

// NewRectangular validates the dimensions and creates the section
func NewRectangular(dims RectangularDims) (*Rectangular, error) {
	if err := validate(dimension{"b", dims.B}, dimension{"h", dims.H}); err != nil {
		return nil, err
	}

	s := &Rectangular{dims: dims}
	if err := requireFinite(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Dims returns the section dimensions
func (s *Rectangular) Dims() RectangularDims { return s.dims }

func (s *Rectangular) Kind() Kind { return KindRectangular }

func (s *Rectangular) Area() float64 { return s.dims.B * s.dims.H }

func (s *Rectangular) Centroid() Point {
	return Point{X: s.dims.B / 2, Y: s.dims.H / 2}
}

// MomentOfInertiaStrong returns b·h³/12 about the horizontal axis
func (s *Rectangular) MomentOfInertiaStrong() float64 {
	return s.dims.B * math.Pow(s.dims.H, 3) / 12
}

// MomentOfInertiaWeak returns h·b³/12 about the vertical axis
func (s *Rectangular) MomentOfInertiaWeak() float64 {
	return s.dims.H * math.Pow(s.dims.B, 3) / 12
}

func (s *Rectangular) SectionModulusStrong() float64 {
	return s.dims.B * s.dims.H * s.dims.H / 6
}

func (s *Rectangular) SectionModulusWeak() float64 {
	return s.dims.H * s.dims.B * s.dims.B / 6
}

func (s *Rectangular) TorsionConstant() float64 {
	return rectangleTorsion(s.dims.B, s.dims.H)
}

func (s *Rectangular) WarpingConstant() float64 {
	return rectangleWarping(s.dims.B, s.dims.H)
}

func (s *Rectangular) Outline() []Polygon {
	return []Polygon{rectangle(0, 0, s.dims.B, s.dims.H)}
}

// rectangleTorsion approximates St. Venant's torsion constant of a solid
// rectangle (mm⁴)
func rectangleTorsion(b, h float64) float64 {
	if b == h {
		return 9 * math.Pow(b, 4) / 64
	}
	if b > h {
		b, h = h, b
	}
	b3 := b * b * b
	h3 := h * h * h
	return h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
}

// rectangleWarping approximates the warping constant of a solid
// rectangle as b³h³/144 (mm⁶)
func rectangleWarping(b, h float64) float64 {
	return math.Pow(b*h, 3) / 144
}
