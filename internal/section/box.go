package section

import "math"

// BoxDims holds the dimensions of a rectangular hollow section (mm)
type BoxDims struct {
	H  float64 `json:"h" yaml:"h"`     // overall depth
	B  float64 `json:"b" yaml:"b"`     // overall width
	Tw float64 `json:"t_w" yaml:"t_w"` // side wall (web) thickness
	Tf float64 `json:"t_f" yaml:"t_f"` // top and bottom wall (flange) thickness
}

// Box is a doubly symmetric rectangular hollow section. Area and bending
// properties are exact for square corners; torsion and warping use the
// closed thin-walled (centerline) theory.
type Box struct {
	dims BoxDims
}

// NewBox validates the dimensions and creates the section.
// The walls must leave a void: b > 2·t_w and h > 2·t_f.
func NewBox(dims BoxDims) (*Box, error) {
	if err := validate(
		dimension{"h", dims.H},
		dimension{"b", dims.B},
		dimension{"t_w", dims.Tw},
		dimension{"t_f", dims.Tf},
	); err != nil {
		return nil, err
	}
	if dims.B-2*dims.Tw < nearZero {
		return nil, &GeometryError{Quantity: "inner width b-2t_w", Reason: "must be positive"}
	}
	if dims.H-2*dims.Tf < nearZero {
		return nil, &GeometryError{Quantity: "inner height h-2t_f", Reason: "must be positive"}
	}

	s := &Box{dims: dims}
	if err := requireFinite(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Dims returns the section dimensions
func (s *Box) Dims() BoxDims { return s.dims }

func (s *Box) Kind() Kind { return KindBox }

func (s *Box) inner() (bi, hi float64) {
	return s.dims.B - 2*s.dims.Tw, s.dims.H - 2*s.dims.Tf
}

// centerline returns the wall centerline width and height
func (s *Box) centerline() (bm, hm float64) {
	return s.dims.B - s.dims.Tw, s.dims.H - s.dims.Tf
}

func (s *Box) Area() float64 {
	bi, hi := s.inner()
	return s.dims.B*s.dims.H - bi*hi
}

func (s *Box) Centroid() Point {
	return Point{X: s.dims.B / 2, Y: s.dims.H / 2}
}

func (s *Box) MomentOfInertiaStrong() float64 {
	bi, hi := s.inner()
	return (s.dims.B*math.Pow(s.dims.H, 3) - bi*math.Pow(hi, 3)) / 12
}

func (s *Box) MomentOfInertiaWeak() float64 {
	bi, hi := s.inner()
	return (s.dims.H*math.Pow(s.dims.B, 3) - hi*math.Pow(bi, 3)) / 12
}

func (s *Box) SectionModulusStrong() float64 {
	return s.MomentOfInertiaStrong() / (s.dims.H / 2)
}

func (s *Box) SectionModulusWeak() float64 {
	return s.MomentOfInertiaWeak() / (s.dims.B / 2)
}

// TorsionConstant uses Bredt's formula J = 4·Am²/∮(ds/t) (mm⁴)
func (s *Box) TorsionConstant() float64 {
	bm, hm := s.centerline()
	am := bm * hm
	perimeter := 2*hm/s.dims.Tw + 2*bm/s.dims.Tf
	return 4 * am * am / perimeter
}

// WarpingConstant of a closed rectangular cell (mm⁶). It vanishes when
// b·t_f = h·t_w, e.g. a square tube of uniform thickness.
func (s *Box) WarpingConstant() float64 {
	bm, hm := s.centerline()
	tw, tf := s.dims.Tw, s.dims.Tf
	diff := bm*tf - hm*tw
	return bm * bm * hm * hm * diff * diff / (24 * (bm*tf + hm*tw))
}

// ShearCenter coincides with the centroid
func (s *Box) ShearCenter() Point { return s.Centroid() }

// WebWidthThicknessRatio returns (h − 2t_f)/t_w
func (s *Box) WebWidthThicknessRatio() float64 {
	_, hi := s.inner()
	return hi / s.dims.Tw
}

// FlangeWidthThicknessRatio returns (b − 2t_w)/t_f
func (s *Box) FlangeWidthThicknessRatio() float64 {
	bi, _ := s.inner()
	return bi / s.dims.Tf
}

// CheckWidthThickness compares the wall ratios with the tube limit of a
// steel grade, since every wall is supported on both edges
func (s *Box) CheckWidthThickness(grade string) (WidthThicknessCheck, error) {
	return checkWidthThickness(grade, s.WebWidthThicknessRatio(), s.FlangeWidthThicknessRatio(), tubeLimits)
}

// Outline returns the outer boundary and the void (clockwise)
func (s *Box) Outline() []Polygon {
	d := s.dims
	return []Polygon{
		rectangle(0, 0, d.B, d.H),
		reversed(rectangle(d.Tw, d.Tf, d.B-d.Tw, d.H-d.Tf)),
	}
}
