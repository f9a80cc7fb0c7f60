package section

import "gonum.org/v1/gonum/floats"

// PlasticShapeFactor converts an elastic section modulus into the plastic
// moment value reported for steel sections. It is a fixed approximation
// standing in for a plastic section modulus calculation, not a verified
// engineering value.
const PlasticShapeFactor = 1.5

// Properties holds the calculated properties of a section
type Properties struct {
	Kind Kind `json:"kind" yaml:"kind"`

	Area     float64 `json:"area" yaml:"area"`         // mm²
	Centroid Point   `json:"centroid" yaml:"centroid"` // mm

	MomentOfInertiaStrong float64 `json:"moment_of_inertia_strong" yaml:"moment_of_inertia_strong"` // mm⁴
	MomentOfInertiaWeak   float64 `json:"moment_of_inertia_weak" yaml:"moment_of_inertia_weak"`     // mm⁴
	SectionModulusStrong  float64 `json:"section_modulus_strong" yaml:"section_modulus_strong"`     // mm³
	SectionModulusWeak    float64 `json:"section_modulus_weak" yaml:"section_modulus_weak"`         // mm³
	TorsionConstant       float64 `json:"torsion_constant" yaml:"torsion_constant"`                 // mm⁴
	WarpingConstant       float64 `json:"warping_constant" yaml:"warping_constant"`                 // mm⁶

	// Steel is set for thin-walled steel sections only
	Steel *SteelProperties `json:"steel,omitempty" yaml:"steel,omitempty"`

	// Concrete is set for reinforced concrete sections only
	Concrete *ConcreteProperties `json:"concrete,omitempty" yaml:"concrete,omitempty"`
}

// SteelProperties holds the extra values reported for steel sections
type SteelProperties struct {
	PlasticMomentX float64 `json:"plastic_moment_x" yaml:"plastic_moment_x"`
	PlasticMomentY float64 `json:"plastic_moment_y" yaml:"plastic_moment_y"`
	ShearCenter    Point   `json:"shear_center" yaml:"shear_center"` // mm
}

// ConcreteProperties holds the extra values reported for reinforced
// concrete sections
type ConcreteProperties struct {
	ModularRatio   float64        `json:"modular_ratio" yaml:"modular_ratio"`
	Cracked        CrackedSection `json:"cracked" yaml:"cracked"`
	CrackingMoment float64        `json:"cracking_moment" yaml:"cracking_moment"` // N-mm
}

// Reinforced is implemented by sections with a cracked transformed state
type Reinforced interface {
	Section
	ModularRatio() float64
	Cracked() CrackedSection
	CrackingMoment() float64
}

// Calculate computes the full properties record of a section
func Calculate(s Section) Properties {
	props := Properties{
		Kind:                  s.Kind(),
		Area:                  s.Area(),
		Centroid:              s.Centroid(),
		MomentOfInertiaStrong: s.MomentOfInertiaStrong(),
		MomentOfInertiaWeak:   s.MomentOfInertiaWeak(),
		SectionModulusStrong:  s.SectionModulusStrong(),
		SectionModulusWeak:    s.SectionModulusWeak(),
		TorsionConstant:       s.TorsionConstant(),
		WarpingConstant:       s.WarpingConstant(),
	}

	if tw, ok := s.(ThinWalled); ok {
		props.Steel = &SteelProperties{
			PlasticMomentX: props.SectionModulusStrong * PlasticShapeFactor,
			PlasticMomentY: props.SectionModulusWeak * PlasticShapeFactor,
			ShearCenter:    tw.ShearCenter(),
		}
	}

	if rc, ok := s.(Reinforced); ok {
		props.Concrete = &ConcreteProperties{
			ModularRatio:   rc.ModularRatio(),
			Cracked:        rc.Cracked(),
			CrackingMoment: rc.CrackingMoment(),
		}
	}

	return props
}

// Contributions splits a composite moment of inertia into the parts
// contributed by each plate element (mm⁴).
type Contributions struct {
	Web    float64 `json:"web" yaml:"web"`
	Flange float64 `json:"flange" yaml:"flange"`
	Lip    float64 `json:"lip" yaml:"lip"`
}

// Total sums the element contributions
func (c Contributions) Total() float64 {
	return floats.Sum([]float64{c.Web, c.Flange, c.Lip})
}
