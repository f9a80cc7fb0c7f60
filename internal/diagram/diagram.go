package diagram

import (
	"errors"
	"fmt"

	"github.com/toruinaba/structools/internal/section"
)

// ErrNoOutline is returned for sections that cannot describe their shape
var ErrNoOutline = errors.New("section has no outline")

// Data holds what a section diagram shows
type Data struct {
	Title    string
	Kind     section.Kind
	Outline  []section.Polygon
	Centroid section.Point

	// ShearCenter is set for thin-walled sections
	ShearCenter *section.Point

	// Rebars are drawn across the section at their height
	Rebars []section.RebarLayer

	// NeutralAxis is the cracked neutral axis depth from the top (mm),
	// set for reinforced sections
	NeutralAxis *float64
}

// FromSection collects the diagram data of a section
func FromSection(title string, s section.Section) (Data, error) {
	o, ok := s.(section.Outliner)
	if !ok {
		return Data{}, fmt.Errorf("%w: %s", ErrNoOutline, s.Kind())
	}

	d := Data{
		Title:    title,
		Kind:     s.Kind(),
		Outline:  o.Outline(),
		Centroid: s.Centroid(),
	}
	if d.Title == "" {
		d.Title = s.Kind().Label()
	}

	if tw, ok := s.(section.ThinWalled); ok {
		sc := tw.ShearCenter()
		d.ShearCenter = &sc
	}
	if rc, ok := s.(*section.RCRectangular); ok {
		d.Rebars = rc.Layers()
		c := rc.Cracked().NeutralAxis
		d.NeutralAxis = &c
	}
	return d, nil
}

// bounds returns the outline extent, never zero in either direction
func (d Data) bounds() (lo, hi section.Point) {
	lo, hi = section.Bounds(d.Outline)
	if hi.X-lo.X <= 0 {
		hi.X = lo.X + 1
	}
	if hi.Y-lo.Y <= 0 {
		hi.Y = lo.Y + 1
	}
	return lo, hi
}
