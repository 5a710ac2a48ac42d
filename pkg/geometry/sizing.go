package geometry

// SizingPolicy is the per-node sizing memo filled in during the measure
// pass and consumed by width distribution during arrange.
type SizingPolicy struct {
	// EstimatedWidth is the natural width found during measure.
	EstimatedWidth float64
	// FixedWidth is an explicit width override, meaningful when IsFixed is set.
	FixedWidth float64
	// IsFixed exempts the node from flexible growth and shrink. The node
	// keeps FixedWidth regardless of available space.
	IsFixed bool
}

// PreferredWidth returns the width the node asks for before distribution:
// the explicit override when fixed, otherwise the measured estimate.
func (s SizingPolicy) PreferredWidth() float64 {
	if s.IsFixed {
		return s.FixedWidth
	}
	return s.EstimatedWidth
}

// CornerMask records which of a node's four corners are rounded. It is a
// derived output of the alignment pass: a corner stays rounded only while
// neither adjacent side is stitched to a neighbor.
type CornerMask struct {
	TopLeft     bool
	TopRight    bool
	BottomRight bool
	BottomLeft  bool
}

// AllCorners returns a mask with every corner rounded.
func AllCorners() CornerMask {
	return CornerMask{TopLeft: true, TopRight: true, BottomRight: true, BottomLeft: true}
}

// NoCorners returns a mask with every corner squared off.
func NoCorners() CornerMask {
	return CornerMask{}
}
