package section

import "math"

// LippedChannelDims holds the plate dimensions of a lipped channel (mm)
type LippedChannelDims struct {
	H  float64 `json:"h" yaml:"h"`     // web height
	B  float64 `json:"b" yaml:"b"`     // flange width
	D  float64 `json:"d" yaml:"d"`     // lip length
	Tw float64 `json:"t_w" yaml:"t_w"` // web thickness
	Tf float64 `json:"t_f" yaml:"t_f"` // flange thickness
	Tl float64 `json:"t_l" yaml:"t_l"` // lip thickness
}

// LippedChannel is a cold-formed lipped channel analysed with the
// thin-walled centerline model. Plate areas are added without correcting
// for the overlap at the corners.
//
// x is measured from the web toward the lips, y from the bottom flange.
type LippedChannel struct {
	dims LippedChannelDims

	area     float64
	centroid Point
	iWeak    float64
}

// NewLippedChannel validates the dimensions and creates the section
func NewLippedChannel(dims LippedChannelDims) (*LippedChannel, error) {
	if err := validate(
		dimension{"h", dims.H},
		dimension{"b", dims.B},
		dimension{"d", dims.D},
		dimension{"t_w", dims.Tw},
		dimension{"t_f", dims.Tf},
		dimension{"t_l", dims.Tl},
	); err != nil {
		return nil, err
	}

	s := &LippedChannel{dims: dims}
	s.area = dims.Tw*dims.H + 2*dims.Tf*dims.B + 2*dims.Tl*dims.D
	s.centroid = Point{
		X: (2*dims.B*dims.Tf*dims.B/2 + 2*dims.D*dims.Tl*(dims.B+dims.D/2)) / s.area,
		Y: dims.H / 2,
	}
	s.iWeak = s.WeakContributions().Total()

	// Denominators of the section modulus and shear center formulas
	if err := requireNonDegenerate("flange width b", dims.B); err != nil {
		return nil, err
	}
	if err := requireNonDegenerate("centroid x", s.centroid.X); err != nil {
		return nil, err
	}
	if err := requireNonDegenerate("weak-axis moment of inertia", s.iWeak); err != nil {
		return nil, err
	}
	if err := requireFinite(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Dims returns the section dimensions
func (s *LippedChannel) Dims() LippedChannelDims { return s.dims }

func (s *LippedChannel) Kind() Kind { return KindLippedChannel }

// Area calculates t_w·h + 2·t_f·b + 2·t_l·d (mm²)
func (s *LippedChannel) Area() float64 { return s.area }

// Centroid returns (x_c, h/2); the section is symmetric top to bottom
func (s *LippedChannel) Centroid() Point { return s.centroid }

// StrongContributions returns the web, flange and lip parts of the
// strong-axis moment of inertia
func (s *LippedChannel) StrongContributions() Contributions {
	d := s.dims
	return Contributions{
		Web:    d.Tw * math.Pow(d.H, 3) / 12,
		Flange: 2 * (d.Tf*math.Pow(d.B, 3)/12 + d.B*d.Tf*math.Pow(d.B/2, 2)),
		Lip:    2 * (d.Tl*math.Pow(d.D, 3)/12 + d.D*d.Tl*math.Pow(d.B+d.D/2, 2)),
	}
}

// WeakContributions returns the web, flange and lip parts of the
// weak-axis moment of inertia
func (s *LippedChannel) WeakContributions() Contributions {
	d := s.dims
	return Contributions{
		Web:    d.H * math.Pow(d.Tw, 3) / 12,
		Flange: 2 * d.B * d.Tf * math.Pow(d.H/2, 2),
		Lip:    2 * d.D * d.Tl * math.Pow(d.H/2, 2),
	}
}

// MomentOfInertiaStrong returns Ix (mm⁴)
func (s *LippedChannel) MomentOfInertiaStrong() float64 {
	return s.StrongContributions().Total()
}

// MomentOfInertiaWeak returns Iy (mm⁴)
func (s *LippedChannel) MomentOfInertiaWeak() float64 { return s.iWeak }

// SectionModulusStrong returns Ix/(h/2) (mm³)
func (s *LippedChannel) SectionModulusStrong() float64 {
	return s.MomentOfInertiaStrong() / (s.dims.H / 2)
}

// SectionModulusWeak returns Iy/x_c (mm³)
func (s *LippedChannel) SectionModulusWeak() float64 {
	return s.iWeak / s.centroid.X
}

// TorsionConstant uses the open thin-walled approximation Σ b·t³/3 (mm⁴)
func (s *LippedChannel) TorsionConstant() float64 {
	d := s.dims
	return (d.H*math.Pow(d.Tw, 3) + 2*d.B*math.Pow(d.Tf, 3) + 2*d.D*math.Pow(d.Tl, 3)) / 3
}

// WarpingConstant uses the approximation (Iy·h²/4)·(1 − 3b/2h) (mm⁶).
// It turns negative for wide flanges (b > 2h/3), where the approximation
// no longer applies.
func (s *LippedChannel) WarpingConstant() float64 {
	d := s.dims
	return (s.iWeak * d.H * d.H / 4) * (1 - (3*d.B)/(2*d.H))
}

// ShearCenter locates the shear center, with the lip effect folded into
// k = 1 + (d/b)²·(t_l/t_f)
func (s *LippedChannel) ShearCenter() Point {
	d := s.dims
	k := 1 + math.Pow(d.D/d.B, 2)*(d.Tl/d.Tf)
	return Point{
		X: d.B * (d.H*d.H*d.Tw + 4*d.B*d.Tf*d.H*k) / (4 * s.iWeak),
		Y: d.H / 2,
	}
}

// WebWidthThicknessRatio returns h/t_w
func (s *LippedChannel) WebWidthThicknessRatio() float64 { return s.dims.H / s.dims.Tw }

// FlangeWidthThicknessRatio returns b/t_f
func (s *LippedChannel) FlangeWidthThicknessRatio() float64 { return s.dims.B / s.dims.Tf }

// LipWidthThicknessRatio returns d/t_l
func (s *LippedChannel) LipWidthThicknessRatio() float64 { return s.dims.D / s.dims.Tl }

// Outline draws the channel opening toward +x with inward-turned lips
func (s *LippedChannel) Outline() []Polygon {
	d := s.dims
	return []Polygon{{
		{0, 0}, {d.B, 0}, {d.B, d.D}, {d.B - d.Tl, d.D},
		{d.B - d.Tl, d.Tf}, {d.Tw, d.Tf}, {d.Tw, d.H - d.Tf},
		{d.B - d.Tl, d.H - d.Tf}, {d.B - d.Tl, d.H - d.D}, {d.B, d.H - d.D},
		{d.B, d.H}, {0, d.H},
	}}
}
