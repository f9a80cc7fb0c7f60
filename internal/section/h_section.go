package section

import "math"

// HSectionDims holds the dimensions of a rolled H-section (mm)
type HSectionDims struct {
	H  float64 `json:"h" yaml:"h"`     // overall depth
	B  float64 `json:"b" yaml:"b"`     // flange width
	Tw float64 `json:"t_w" yaml:"t_w"` // web thickness
	Tf float64 `json:"t_f" yaml:"t_f"` // flange thickness
}

// HSection is a doubly symmetric H (wide flange) section. Fillets are
// ignored.
type HSection struct {
	dims HSectionDims
}

// NewHSection validates the dimensions and creates the section.
// The flanges must leave a web: h > 2·t_f.
func NewHSection(dims HSectionDims) (*HSection, error) {
	if err := validate(
		dimension{"h", dims.H},
		dimension{"b", dims.B},
		dimension{"t_w", dims.Tw},
		dimension{"t_f", dims.Tf},
	); err != nil {
		return nil, err
	}
	if dims.H-2*dims.Tf < nearZero {
		return nil, &GeometryError{Quantity: "web height h-2t_f", Reason: "must be positive"}
	}

	s := &HSection{dims: dims}
	if err := requireFinite(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Dims returns the section dimensions
func (s *HSection) Dims() HSectionDims { return s.dims }

func (s *HSection) Kind() Kind { return KindHSection }

// webHeight is the clear web height between flanges
func (s *HSection) webHeight() float64 { return s.dims.H - 2*s.dims.Tf }

// WebArea returns (h − 2t_f)·t_w (mm²)
func (s *HSection) WebArea() float64 { return s.webHeight() * s.dims.Tw }

// FlangeArea returns both flanges, 2·b·t_f (mm²)
func (s *HSection) FlangeArea() float64 { return 2 * s.dims.B * s.dims.Tf }

func (s *HSection) Area() float64 { return s.WebArea() + s.FlangeArea() }

// Centroid is at the center of the section (double symmetry)
func (s *HSection) Centroid() Point {
	return Point{X: s.dims.B / 2, Y: s.dims.H / 2}
}

// MomentOfInertiaStrong returns Ix (mm⁴), flanges by the parallel axis theorem
func (s *HSection) MomentOfInertiaStrong() float64 {
	d := s.dims
	web := d.Tw * math.Pow(s.webHeight(), 3) / 12

	// distance from centroid to flange centroid
	arm := (d.H - d.Tf) / 2
	flange := 2 * (d.B*math.Pow(d.Tf, 3)/12 + d.B*d.Tf*arm*arm)
	return web + flange
}

// MomentOfInertiaWeak returns Iy (mm⁴)
func (s *HSection) MomentOfInertiaWeak() float64 {
	d := s.dims
	web := s.webHeight() * math.Pow(d.Tw, 3) / 12
	flange := 2 * (d.Tf * math.Pow(d.B, 3) / 12)
	return web + flange
}

func (s *HSection) SectionModulusStrong() float64 {
	return s.MomentOfInertiaStrong() / (s.dims.H / 2)
}

func (s *HSection) SectionModulusWeak() float64 {
	return s.MomentOfInertiaWeak() / (s.dims.B / 2)
}

// TorsionConstant uses the thin-walled approximation (mm⁴)
func (s *HSection) TorsionConstant() float64 {
	d := s.dims
	return (s.webHeight()*math.Pow(d.Tw, 3) + 2*d.B*math.Pow(d.Tf, 3)) / 3
}

// WarpingConstant returns t_f·b³·h_f²/24 with h_f the distance between
// flange centroids (mm⁶)
func (s *HSection) WarpingConstant() float64 {
	d := s.dims
	hf := d.H - d.Tf
	return d.Tf * math.Pow(d.B, 3) * hf * hf / 24
}

// ShearCenter coincides with the centroid
func (s *HSection) ShearCenter() Point { return s.Centroid() }

// WebWidthThicknessRatio returns (h − 2t_f)/t_w
func (s *HSection) WebWidthThicknessRatio() float64 { return s.webHeight() / s.dims.Tw }

// FlangeWidthThicknessRatio returns (b/2)/t_f
func (s *HSection) FlangeWidthThicknessRatio() float64 { return (s.dims.B / 2) / s.dims.Tf }

// CheckWidthThickness compares the web and flange ratios with the limits
// of a steel grade (JIS). An empty grade means SN400.
func (s *HSection) CheckWidthThickness(grade string) (WidthThicknessCheck, error) {
	return checkWidthThickness(grade, s.WebWidthThicknessRatio(), s.FlangeWidthThicknessRatio(), plateLimits)
}

func (s *HSection) Outline() []Polygon {
	d := s.dims
	wl, wr := d.B/2-d.Tw/2, d.B/2+d.Tw/2
	return []Polygon{{
		{0, 0}, {d.B, 0}, {d.B, d.Tf}, {wr, d.Tf},
		{wr, d.H - d.Tf}, {d.B, d.H - d.Tf}, {d.B, d.H}, {0, d.H},
		{0, d.H - d.Tf}, {wl, d.H - d.Tf}, {wl, d.Tf}, {0, d.Tf},
	}}
}
