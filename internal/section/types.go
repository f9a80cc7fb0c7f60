package section

import (
	"fmt"
	"strings"
)

// Section is the capability set every cross-section shape provides.
//
// Coordinates are in mm, measured from the bottom-left corner of the
// section's bounding box (from the web centerline for the lipped channel).
// The strong axis is the horizontal axis through the centroid.
type Section interface {
	Kind() Kind
	Area() float64
	Centroid() Point
	MomentOfInertiaStrong() float64
	MomentOfInertiaWeak() float64
	SectionModulusStrong() float64
	SectionModulusWeak() float64
	TorsionConstant() float64
	WarpingConstant() float64
}

// ThinWalled is implemented by the steel plate sections, which also
// locate their shear center.
type ThinWalled interface {
	Section
	ShearCenter() Point
}

// WidthThicknessChecker is implemented by sections whose plate elements
// can be checked against the width-thickness limits of a steel grade.
type WidthThicknessChecker interface {
	CheckWidthThickness(grade string) (WidthThicknessCheck, error)
}

// Kind identifies one of the supported shapes.
type Kind string

const (
	KindLippedChannel Kind = "lipped_channel"
	KindHSection      Kind = "h_section"
	KindBox           Kind = "box"
	KindRectangular   Kind = "rectangular"
	KindCircular      Kind = "circular"
	KindRCRectangular Kind = "rc_rectangular"
)

var kindAliases = map[string]Kind{
	"lc":        KindLippedChannel,
	"c":         KindLippedChannel,
	"h":         KindHSection,
	"hsection":  KindHSection,
	"rhs":       KindBox,
	"rect":      KindRectangular,
	"rectangle": KindRectangular,
	"circle":    KindCircular,
	"rc":        KindRCRectangular,
}

// Kinds lists every supported shape.
func Kinds() []Kind {
	return []Kind{
		KindLippedChannel,
		KindHSection,
		KindBox,
		KindRectangular,
		KindCircular,
		KindRCRectangular,
	}
}

// ParseKind resolves a shape name, accepting a few short aliases
// ("h", "rect", "rc", ...) and dashes in place of underscores.
func ParseKind(name string) (Kind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, k := range Kinds() {
		if string(k) == key {
			return k, nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedShape, name)
}

// Label returns a display name for reports
func (k Kind) Label() string {
	switch k {
	case KindLippedChannel:
		return "Lipped Channel"
	case KindHSection:
		return "H-Section"
	case KindBox:
		return "Box"
	case KindRectangular:
		return "Rectangular"
	case KindCircular:
		return "Circular"
	case KindRCRectangular:
		return "RC Rectangular"
	}
	return string(k)
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
}

// RebarLayer represents a layer of reinforcement at a specific depth
type RebarLayer struct {
	// Position of the reinforcement layer centroid
	Y float64 `json:"y" yaml:"y"` // mm from bottom of section

	// Reinforcement area in this layer
	Area float64 `json:"area" yaml:"area"` // mm²

	// Optional: description of bars (e.g., "3-25mm")
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
