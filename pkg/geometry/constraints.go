package geometry

import "math"

// Unbounded marks a constraint axis with no upper limit.
const Unbounded = math.MaxFloat64

// BoxConstraints is the min/max width/height envelope a parent passes to a
// child during measurement. Every width or height that reaches the arrange
// pass has already been clamped by one of these, so no node ever receives a
// negative dimension.
type BoxConstraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight creates constraints that force exactly the given size.
func Tight(size Size) BoxConstraints {
	return BoxConstraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// TightWidth creates constraints with a fixed width and unconstrained height.
func TightWidth(width float64) BoxConstraints {
	return BoxConstraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: 0,
		MaxHeight: Unbounded,
	}
}

// Loose creates constraints where only the maxima are meaningful.
func Loose(size Size) BoxConstraints {
	return BoxConstraints{
		MinWidth:  0,
		MaxWidth:  size.Width,
		MinHeight: 0,
		MaxHeight: size.Height,
	}
}

// IsTight reports whether the constraints admit exactly one size.
func (c BoxConstraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width is bounded above.
func (c BoxConstraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight reports whether the height is bounded above.
func (c BoxConstraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// ClampWidth returns the value clamped to [MinWidth, MaxWidth].
func (c BoxConstraints) ClampWidth(value float64) float64 {
	return math.Min(math.Max(value, c.MinWidth), c.MaxWidth)
}

// ClampHeight returns the value clamped to [MinHeight, MaxHeight].
func (c BoxConstraints) ClampHeight(value float64) float64 {
	return math.Min(math.Max(value, c.MinHeight), c.MaxHeight)
}

// Constrain returns the size clamped on both axes.
func (c BoxConstraints) Constrain(size Size) Size {
	return Size{
		Width:  c.ClampWidth(size.Width),
		Height: c.ClampHeight(size.Height),
	}
}

// Deflate subtracts fixed horizontal and vertical insets from the
// constraints, flooring every bound at zero. An over-tight parent deflates
// to a zero envelope rather than going negative.
func (c BoxConstraints) Deflate(horizontal, vertical float64) BoxConstraints {
	deflated := BoxConstraints{
		MinWidth:  math.Max(0, c.MinWidth-horizontal),
		MinHeight: math.Max(0, c.MinHeight-vertical),
	}
	if c.HasBoundedWidth() {
		deflated.MaxWidth = math.Max(0, c.MaxWidth-horizontal)
	} else {
		deflated.MaxWidth = Unbounded
	}
	if c.HasBoundedHeight() {
		deflated.MaxHeight = math.Max(0, c.MaxHeight-vertical)
	} else {
		deflated.MaxHeight = Unbounded
	}
	return deflated
}

// Loosen returns the constraints with the minima reset to zero.
func (c BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{
		MinWidth:  0,
		MaxWidth:  c.MaxWidth,
		MinHeight: 0,
		MaxHeight: c.MaxHeight,
	}
}
