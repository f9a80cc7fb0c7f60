package section

import "fmt"

// Fields returns the dimension names a kind is built from, in the order
// reports list them
func Fields(kind Kind) []string {
	switch kind {
	case KindLippedChannel:
		return []string{"h", "b", "d", "t_w", "t_f", "t_l"}
	case KindHSection, KindBox:
		return []string{"h", "b", "t_w", "t_f"}
	case KindRectangular:
		return []string{"b", "h"}
	case KindCircular:
		return []string{"diameter"}
	case KindRCRectangular:
		return []string{"b", "h", "fc"}
	}
	return nil
}

// New builds a section of the named kind from raw dimension values.
// Reinforcement is only read for rc_rectangular.
func New(kind string, raw map[string]any, reinforcement []RebarLayer) (Section, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	d, err := ParseDimensions(raw, Fields(k)...)
	if err != nil {
		return nil, err
	}

	switch k {
	case KindLippedChannel:
		return built(NewLippedChannel(LippedChannelDims{
			H: d["h"], B: d["b"], D: d["d"],
			Tw: d["t_w"], Tf: d["t_f"], Tl: d["t_l"],
		}))
	case KindHSection:
		return built(NewHSection(HSectionDims{H: d["h"], B: d["b"], Tw: d["t_w"], Tf: d["t_f"]}))
	case KindBox:
		return built(NewBox(BoxDims{H: d["h"], B: d["b"], Tw: d["t_w"], Tf: d["t_f"]}))
	case KindRectangular:
		return built(NewRectangular(RectangularDims{B: d["b"], H: d["h"]}))
	case KindCircular:
		return built(NewCircular(CircularDims{Diameter: d["diameter"]}))
	case KindRCRectangular:
		return built(NewRCRectangular(RCRectangularDims{
			B: d["b"], H: d["h"], Fc: d["fc"],
			Reinforcement: reinforcement,
		}))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedShape, kind)
}

// built keeps a failed constructor from leaking a typed nil Section
func built[T Section](s T, err error) (Section, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
