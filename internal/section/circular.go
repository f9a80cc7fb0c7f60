package section

import "math"

// outlineSegments is the number of chords drawn for a circle
const outlineSegments = 72

// CircularDims holds the dimensions of a solid circle (mm)
type CircularDims struct {
	Diameter float64 `json:"diameter" yaml:"diameter"`
}

// Circular is a solid circular section
type Circular struct {
	dims CircularDims
}

// NewCircular validates the dimensions and creates the section
func NewCircular(dims CircularDims) (*Circular, error) {
	if err := validate(dimension{"diameter", dims.Diameter}); err != nil {
		return nil, err
	}

	s := &Circular{dims: dims}
	if err := requireFinite(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Dims returns the section dimensions
func (s *Circular) Dims() CircularDims { return s.dims }

func (s *Circular) Kind() Kind { return KindCircular }

func (s *Circular) Area() float64 {
	return math.Pi * s.dims.Diameter * s.dims.Diameter / 4
}

func (s *Circular) Centroid() Point {
	r := s.dims.Diameter / 2
	return Point{X: r, Y: r}
}

// MomentOfInertiaStrong returns πD⁴/64; both axes are equal
func (s *Circular) MomentOfInertiaStrong() float64 {
	return math.Pi * math.Pow(s.dims.Diameter, 4) / 64
}

func (s *Circular) MomentOfInertiaWeak() float64 {
	return s.MomentOfInertiaStrong()
}

// SectionModulusStrong returns πD³/32
func (s *Circular) SectionModulusStrong() float64 {
	return math.Pi * math.Pow(s.dims.Diameter, 3) / 32
}

func (s *Circular) SectionModulusWeak() float64 {
	return s.SectionModulusStrong()
}

// TorsionConstant equals the polar moment of inertia πD⁴/32
func (s *Circular) TorsionConstant() float64 {
	return math.Pi * math.Pow(s.dims.Diameter, 4) / 32
}

// WarpingConstant is zero: a circular section does not warp
func (s *Circular) WarpingConstant() float64 { return 0 }

func (s *Circular) Outline() []Polygon {
	r := s.dims.Diameter / 2
	poly := make(Polygon, outlineSegments)
	for i := range poly {
		theta := 2 * math.Pi * float64(i) / outlineSegments
		poly[i] = Point{X: r + r*math.Cos(theta), Y: r + r*math.Sin(theta)}
	}
	return []Polygon{poly}
}
