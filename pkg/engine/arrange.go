package engine

import (
	"math"

	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
)

// Arrange assigns the node's frame at (x, y) using its measured size and
// recurses top-down, walking each container's children along the main axis
// with a cursor plus gap. Rows re-run the width distribution against the
// now-fixed container width, so the arranged widths are authoritative even
// when the measured provisional widths were computed against different
// constraints.
func (e *Engine) Arrange(n node.LayoutNode, x, y float64) {
	size := n.Measured()
	n.SetFrame(geometry.RectFromLTWH(x, y, size.Width, size.Height))

	if c, ok := n.(*node.Container); ok {
		children := c.VisibleChildren()
		if len(children) == 0 {
			return
		}
		inner := innerRect(c)
		switch {
		case c.Flow:
			e.arrangeFlow(c, children, inner)
		case c.Axis == node.AxisRow:
			e.arrangeRow(c, children, inner)
		default:
			e.arrangeColumn(c, children, inner)
		}
	}
}

// innerRect is the container frame inset by its padding, floored at zero
// area so an over-tight parent cannot produce negative space.
func innerRect(c *node.Container) geometry.Rect {
	frame := c.Frame()
	inner := geometry.Rect{
		Left:   frame.Left + c.Padding.Left,
		Top:    frame.Top + c.Padding.Top,
		Right:  frame.Right - c.Padding.Right,
		Bottom: frame.Bottom - c.Padding.Bottom,
	}
	if inner.Right < inner.Left {
		inner.Right = inner.Left
	}
	if inner.Bottom < inner.Top {
		inner.Bottom = inner.Top
	}
	return inner
}

func (e *Engine) arrangeRow(c *node.Container, children []node.LayoutNode, inner geometry.Rect) {
	gap := c.EffectiveGap()
	gaps := gap * float64(len(children)-1)
	available := math.Max(0, inner.Width()-gaps)

	naturals, fixed := mainAxisInputs(children)

	var placement Placement
	if c.SplitFactor > 0 {
		placement = Placement{Widths: SplitWidths(c.SplitFactor, len(children), available)}
	} else {
		placement = Distribute(naturals, fixed, available, c.Alignment)
	}

	cursor := inner.Left + placement.Lead
	for i, child := range children {
		width := placement.Widths[i]
		height := e.finalHeight(child, width, inner.Height(), c.Alignment)
		child.SetMeasured(geometry.Size{Width: width, Height: height})

		childY := inner.Top + crossOffset(c.Alignment, inner.Height(), height)
		e.Arrange(child, cursor, childY)
		cursor += width + gap + placement.ExtraGap
	}
}

func (e *Engine) arrangeColumn(c *node.Container, children []node.LayoutNode, inner geometry.Rect) {
	gap := c.EffectiveGap()

	// Columns do not redistribute heights; leftover vertical space is
	// placed per the alignment mode around the rigid run.
	totalHeight := 0.0
	heights := make([]float64, len(children))
	widths := make([]float64, len(children))
	for i, child := range children {
		width := math.Min(child.Measured().Width, inner.Width())
		if c.Alignment == node.AlignStretch {
			width = inner.Width()
		}
		widths[i] = width
		heights[i] = e.heightAtWidth(child, width)
		totalHeight += heights[i]
	}
	totalHeight += gap * float64(len(children)-1)

	leftover := math.Max(0, inner.Height()-totalHeight)
	cursor := inner.Top
	switch c.Alignment {
	case node.AlignCenter:
		cursor += leftover * 0.5
	case node.AlignEnd:
		cursor += leftover
	}

	for i, child := range children {
		child.SetMeasured(geometry.Size{Width: widths[i], Height: heights[i]})
		childX := inner.Left + crossOffset(c.Alignment, inner.Width(), widths[i])
		e.Arrange(child, childX, cursor)
		cursor += heights[i] + gap
	}
}

func (e *Engine) arrangeFlow(c *node.Container, children []node.LayoutNode, inner geometry.Rect) {
	gap := c.EffectiveGap()

	heights := make([]float64, len(children))
	maxChildWidth := 0.0
	for i, child := range children {
		heights[i] = child.Measured().Height
		maxChildWidth = math.Max(maxChildWidth, child.Sizing().PreferredWidth())
	}

	plan := PackFlow(heights, maxChildWidth, inner.Width(), gap, c.FlowColumns)

	cursors := make([]float64, plan.Columns)
	for i := range cursors {
		cursors[i] = inner.Top
	}
	for i, child := range children {
		col := plan.ColumnOf[i]
		width := plan.ColumnWidth
		height := e.heightAtWidth(child, width)
		child.SetMeasured(geometry.Size{Width: width, Height: height})

		x := inner.Left + float64(col)*(plan.ColumnWidth+gap)
		e.Arrange(child, x, cursors[col])
		cursors[col] += height + gap
	}
}

// finalHeight settles a row child's height at its authoritative width:
// stretch fills the row's inner height, width-dependent widgets are
// re-queried, child containers are re-measured with the width held tight.
func (e *Engine) finalHeight(n node.LayoutNode, width, innerHeight float64, alignment node.Alignment) float64 {
	if alignment == node.AlignStretch {
		return innerHeight
	}
	return math.Min(e.heightAtWidth(n, width), math.Max(innerHeight, 0))
}

// crossOffset positions a child across the main axis. Stretch children
// fill the cross axis so their offset is zero.
func crossOffset(alignment node.Alignment, span, childSpan float64) float64 {
	free := span - childSpan
	if free <= 0 {
		return 0
	}
	switch alignment {
	case node.AlignCenter:
		return free * 0.5
	case node.AlignEnd:
		return free
	default:
		return 0
	}
}
