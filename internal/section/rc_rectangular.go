package section

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/toruinaba/structools/internal/nscp"
)

// RCRectangularDims holds the geometry, concrete strength and bar layers
// of a reinforced concrete rectangle
type RCRectangularDims struct {
	B  float64 `json:"b" yaml:"b"`   // width (mm)
	H  float64 `json:"h" yaml:"h"`   // total depth (mm)
	Fc float64 `json:"fc" yaml:"fc"` // concrete compressive strength f'c (MPa)

	Reinforcement []RebarLayer `json:"reinforcement" yaml:"reinforcement"`
}

// RCRectangular is a reinforced concrete rectangle analysed as an
// uncracked transformed section: each bar layer adds (n − 1)·As of
// equivalent concrete, n = Es/Ec. Bars are taken on the vertical axis of
// symmetry, so they do not stiffen the weak axis.
type RCRectangular struct {
	dims RCRectangularDims
	n    float64

	area    float64
	ybar    float64
	iStrong float64
}

// CrackedSection holds the elastic cracked transformed section under
// sagging moment
type CrackedSection struct {
	NeutralAxis     float64 `json:"neutral_axis" yaml:"neutral_axis"`           // depth from top (mm)
	MomentOfInertia float64 `json:"moment_of_inertia" yaml:"moment_of_inertia"` // mm⁴
}

// NewRCRectangular validates the section and its reinforcement
func NewRCRectangular(dims RCRectangularDims) (*RCRectangular, error) {
	if err := validate(
		dimension{"b", dims.B},
		dimension{"h", dims.H},
		dimension{"fc", dims.Fc},
	); err != nil {
		return nil, err
	}
	if len(dims.Reinforcement) == 0 {
		return nil, &DimensionError{Field: "reinforcement", Err: ErrInvalidDimension}
	}

	layers := make([]RebarLayer, len(dims.Reinforcement))
	copy(layers, dims.Reinforcement)
	var steelArea float64
	for i, layer := range layers {
		if err := validate(
			dimension{fmt.Sprintf("reinforcement[%d].y", i), layer.Y},
			dimension{fmt.Sprintf("reinforcement[%d].area", i), layer.Area},
		); err != nil {
			return nil, err
		}
		if layer.Y >= dims.H {
			return nil, &DimensionError{Field: fmt.Sprintf("reinforcement[%d].y", i), Value: layer.Y, Err: ErrOutOfRange, Reason: "must be below h"}
		}
		steelArea += layer.Area
	}
	if steelArea >= dims.B*dims.H {
		return nil, &DimensionError{Field: "reinforcement", Value: steelArea, Err: ErrOutOfRange, Reason: "total area must be less than b·h"}
	}
	dims.Reinforcement = layers

	s := &RCRectangular{dims: dims, n: nscp.ModularRatio(dims.Fc)}

	// bars transform to (n-1)·As; n ≤ 1 would remove concrete instead of adding steel
	if s.n-1 < nearZero {
		return nil, &GeometryError{Quantity: "modular ratio n-1", Reason: fmt.Sprintf("must be positive, got %.4g", s.n-1)}
	}

	s.transform()
	if err := requireFinite(s); err != nil {
		return nil, err
	}
	return s, nil
}

// transform computes the uncracked transformed area, centroid and
// strong-axis moment of inertia
func (s *RCRectangular) transform() {
	b, h := s.dims.B, s.dims.H
	gross := b * h

	var steelArea, steelMoment float64
	for _, layer := range s.dims.Reinforcement {
		steelArea += (s.n - 1) * layer.Area
		steelMoment += (s.n - 1) * layer.Area * layer.Y
	}

	s.area = gross + steelArea
	s.ybar = (gross*h/2 + steelMoment) / s.area

	s.iStrong = b*math.Pow(h, 3)/12 + gross*math.Pow(h/2-s.ybar, 2)
	for _, layer := range s.dims.Reinforcement {
		s.iStrong += (s.n - 1) * layer.Area * math.Pow(layer.Y-s.ybar, 2)
	}
}

// Dims returns the section dimensions
func (s *RCRectangular) Dims() RCRectangularDims {
	d := s.dims
	d.Reinforcement = s.Layers()
	return d
}

// Layers returns a copy of the reinforcement layers
func (s *RCRectangular) Layers() []RebarLayer {
	layers := make([]RebarLayer, len(s.dims.Reinforcement))
	copy(layers, s.dims.Reinforcement)
	return layers
}

// ModularRatio returns n = Es/Ec
func (s *RCRectangular) ModularRatio() float64 { return s.n }

func (s *RCRectangular) Kind() Kind { return KindRCRectangular }

// Area returns the transformed area (mm² of concrete)
func (s *RCRectangular) Area() float64 { return s.area }

// Centroid of the transformed section; y is measured from the bottom face
func (s *RCRectangular) Centroid() Point {
	return Point{X: s.dims.B / 2, Y: s.ybar}
}

func (s *RCRectangular) MomentOfInertiaStrong() float64 { return s.iStrong }

// MomentOfInertiaWeak returns h·b³/12 of the concrete alone
func (s *RCRectangular) MomentOfInertiaWeak() float64 {
	return s.dims.H * math.Pow(s.dims.B, 3) / 12
}

// SectionModulusStrong uses the distance to the farther extreme fiber
func (s *RCRectangular) SectionModulusStrong() float64 {
	return s.iStrong / math.Max(s.ybar, s.dims.H-s.ybar)
}

func (s *RCRectangular) SectionModulusWeak() float64 {
	return s.MomentOfInertiaWeak() / (s.dims.B / 2)
}

// TorsionConstant of the gross concrete rectangle
func (s *RCRectangular) TorsionConstant() float64 {
	return rectangleTorsion(s.dims.B, s.dims.H)
}

// WarpingConstant of the gross concrete rectangle
func (s *RCRectangular) WarpingConstant() float64 {
	return rectangleWarping(s.dims.B, s.dims.H)
}

// Cracked finds the cracked transformed section under sagging moment.
// Layers below the neutral axis count as n·As, layers above it as
// (n − 1)·As; the split is iterated until it no longer changes.
func (s *RCRectangular) Cracked() CrackedSection {
	b, h := s.dims.B, s.dims.H

	areas := make([]float64, len(s.dims.Reinforcement))
	depths := make([]float64, len(s.dims.Reinforcement))
	for i, layer := range s.dims.Reinforcement {
		areas[i] = layer.Area
		depths[i] = h - layer.Y
	}

	// Start with every layer in tension
	factors := make([]float64, len(areas))
	for i := range factors {
		factors[i] = s.n
	}

	weighted := make([]float64, len(areas))
	var c float64
	for iter := 0; iter < 10; iter++ {
		// b·c²/2 + S·c − Q = 0
		floats.MulTo(weighted, factors, areas)
		sum := floats.Sum(weighted)
		moment := floats.Dot(weighted, depths)
		c = (-sum + math.Sqrt(sum*sum+2*b*moment)) / b

		next := make([]float64, len(areas))
		for i, d := range depths {
			next[i] = s.n
			if d < c {
				next[i] = s.n - 1
			}
		}
		if floats.Equal(next, factors) {
			break
		}
		factors = next
	}
	floats.MulTo(weighted, factors, areas)

	// arms from the neutral axis, squared
	arms := make([]float64, len(depths))
	copy(arms, depths)
	floats.AddConst(-c, arms)
	floats.Mul(arms, arms)

	icr := b*c*c*c/3 + floats.Dot(weighted, arms)
	return CrackedSection{NeutralAxis: c, MomentOfInertia: icr}
}

// CrackingMoment returns Mcr = fr·Ig/yt of the gross section (N-mm)
// NSCP 2015 Section 424.2.3.5
func (s *RCRectangular) CrackingMoment() float64 {
	ig := s.dims.B * math.Pow(s.dims.H, 3) / 12
	return nscp.ModulusOfRupture(s.dims.Fc) * ig / (s.dims.H / 2)
}

func (s *RCRectangular) Outline() []Polygon {
	return []Polygon{rectangle(0, 0, s.dims.B, s.dims.H)}
}
