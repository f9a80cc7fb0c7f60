package definition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/toruinaba/structools/internal/section"
)

// Definition describes one section to build: its shape, raw dimensions
// and, for RC sections, the reinforcement layers. Dimension values stay
// raw until Build so that bad input is reported by the section validator.
type Definition struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Kind        string         `json:"kind" yaml:"kind"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Dimensions  map[string]any `json:"dimensions" yaml:"dimensions"`

	Reinforcement []section.RebarLayer `json:"reinforcement,omitempty" yaml:"reinforcement,omitempty"`

	// Grade is the steel grade for the width-thickness check (SN400 when empty)
	Grade string `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// Label names the definition in messages and reports
func (d Definition) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Kind
}

// Build validates the definition and creates the section
func (d Definition) Build() (section.Section, error) {
	return section.New(d.Kind, d.Dimensions, d.Reinforcement)
}

// DimensionNames returns the dimension keys in the order the shape lists
// them, followed by any extra keys sorted
func (d Definition) DimensionNames() []string {
	var names []string
	seen := make(map[string]bool)
	if k, err := section.ParseKind(d.Kind); err == nil {
		for _, f := range section.Fields(k) {
			if _, ok := d.Dimensions[f]; ok {
				names = append(names, f)
				seen[f] = true
			}
		}
	}

	var extra []string
	for k := range d.Dimensions {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// ParseValue reads a dimension typed on the command line or in a
// spreadsheet cell. Numbers become float64; anything else is kept as the
// trimmed string and rejected later by the validator.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

// ParseLayers reads reinforcement written as "y:area[:description]"
// entries separated by semicolons, e.g. "60:1500:3-25mm;440:600"
func ParseLayers(s string) ([]section.RebarLayer, error) {
	var layers []section.RebarLayer
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		layer, err := ParseLayer(entry)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// ParseLayer reads a single "y:area[:description]" entry
func ParseLayer(entry string) (section.RebarLayer, error) {
	parts := strings.SplitN(entry, ":", 3)
	if len(parts) < 2 {
		return section.RebarLayer{}, fmt.Errorf("reinforcement %q: expected y:area", entry)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return section.RebarLayer{}, fmt.Errorf("reinforcement %q: y: %w", entry, err)
	}
	area, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return section.RebarLayer{}, fmt.Errorf("reinforcement %q: area: %w", entry, err)
	}

	layer := section.RebarLayer{Y: y, Area: area}
	if len(parts) == 3 {
		layer.Description = strings.TrimSpace(parts[2])
	}
	return layer, nil
}

// FormatLayers is the inverse of ParseLayers
func FormatLayers(layers []section.RebarLayer) string {
	entries := make([]string, len(layers))
	for i, l := range layers {
		entries[i] = strconv.FormatFloat(l.Y, 'g', -1, 64) + ":" + strconv.FormatFloat(l.Area, 'g', -1, 64)
		if l.Description != "" {
			entries[i] += ":" + l.Description
		}
	}
	return strings.Join(entries, ";")
}
