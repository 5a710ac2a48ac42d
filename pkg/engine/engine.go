package engine

import (
	"math"

	"github.com/go-plank/plank/pkg/errors"
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/text"
)

// Engine runs the two-pass layout over a node tree. Measure is bottom-up
// and fills every node's measured size; Arrange is top-down and assigns
// final frames, re-running width distribution against the settled
// container width. Both passes are pure recursion with no retained state,
// so one Engine can serve any number of trees.
type Engine struct {
	metrics text.Metrics
}

// New creates an engine using the given content-metrics collaborator.
// A nil metrics falls back to the fixed-advance measurer.
func New(metrics text.Metrics) *Engine {
	if metrics == nil {
		metrics = text.NewBasicMetrics()
	}
	return &Engine{metrics: metrics}
}

// Metrics returns the content-metrics collaborator in use.
func (e *Engine) Metrics() text.Metrics { return e.metrics }

// Layout measures the tree against the constraints and arranges it with
// its top-left corner at origin. This is the per-tick entry point.
func (e *Engine) Layout(root node.LayoutNode, constraints geometry.BoxConstraints, origin geometry.Offset) {
	e.Measure(root, constraints)
	e.Arrange(root, origin.X, origin.Y)
}

// Measure computes the node's size under the constraints, recursing into
// children first. The result is recorded on the node and returned.
func (e *Engine) Measure(n node.LayoutNode, c geometry.BoxConstraints) geometry.Size {
	switch v := n.(type) {
	case *node.Widget:
		return e.measureWidget(v, c)
	case *node.Container:
		return e.measureContainer(v, c)
	default:
		size := c.Constrain(geometry.Size{})
		n.SetMeasured(size)
		return size
	}
}

func (e *Engine) measureWidget(w *node.Widget, c geometry.BoxConstraints) geometry.Size {
	// Metric callbacks come from the host; a failing one yields a zero
	// natural size for this tick instead of unwinding the pass.
	var natural geometry.Size
	errors.Isolate("engine.measureWidget", func() {
		natural = w.NaturalSize(e.metrics)
	})
	sizing := w.Sizing()
	sizing.EstimatedWidth = natural.Width

	width := natural.Width
	if sizing.IsFixed {
		width = sizing.FixedWidth
	}
	width = c.ClampWidth(width)

	height := natural.Height
	if w.WidthDependentHeight && w.HeightForWidth != nil && width != natural.Width {
		errors.Isolate("engine.measureWidget", func() {
			height = w.HeightForWidth(e.metrics, width)
		})
	}
	height = c.ClampHeight(height)

	size := geometry.Size{Width: width, Height: height}
	w.SetMeasured(size)
	return size
}

func (e *Engine) measureContainer(c *node.Container, constraints geometry.BoxConstraints) geometry.Size {
	children := c.VisibleChildren()
	inner := constraints.Deflate(c.Padding.Horizontal(), c.Padding.Vertical())

	// Zero children: minimal size is the padding alone.
	if len(children) == 0 {
		size := constraints.Constrain(geometry.Size{
			Width:  c.Padding.Horizontal(),
			Height: c.Padding.Vertical(),
		})
		c.SetMeasured(size)
		c.Sizing().EstimatedWidth = size.Width
		return size
	}

	var content geometry.Size
	switch {
	case c.Flow:
		content = e.measureFlow(c, children, inner)
	case c.Axis == node.AxisRow:
		content = e.measureRow(c, children, inner)
	default:
		content = e.measureColumn(c, children, inner)
	}

	size := constraints.Constrain(geometry.Size{
		Width:  content.Width + c.Padding.Horizontal(),
		Height: content.Height + c.Padding.Vertical(),
	})
	c.SetMeasured(size)
	c.Sizing().EstimatedWidth = size.Width
	return size
}

// measureRow sums children along the main axis, takes the cross-axis max,
// and runs width distribution against the measured natural widths so each
// child knows its provisional final width. Children whose height depends
// on their width are re-queried at that width, and the corrected heights
// feed the aggregate.
func (e *Engine) measureRow(c *node.Container, children []node.LayoutNode, inner geometry.BoxConstraints) geometry.Size {
	gap := c.EffectiveGap()
	gaps := gap * float64(len(children)-1)

	for _, child := range children {
		e.Measure(child, inner.Loosen())
	}
	naturals, fixed := mainAxisInputs(children)

	naturalSum := 0.0
	for _, w := range naturals {
		naturalSum += w
	}

	maxHeight := 0.0
	if inner.HasBoundedWidth() {
		available := math.Max(0, inner.MaxWidth-gaps)
		widths := e.rowWidths(c, naturals, fixed, available)
		for i, child := range children {
			maxHeight = math.Max(maxHeight, e.heightAtWidth(child, widths[i]))
		}
	} else {
		for _, child := range children {
			maxHeight = math.Max(maxHeight, child.Measured().Height)
		}
	}

	return geometry.Size{Width: naturalSum + gaps, Height: maxHeight}
}

func (e *Engine) measureColumn(c *node.Container, children []node.LayoutNode, inner geometry.BoxConstraints) geometry.Size {
	gap := c.EffectiveGap()

	maxWidth := 0.0
	totalHeight := 0.0
	for i, child := range children {
		e.Measure(child, inner.Loosen())
		width := child.Measured().Width
		if c.Alignment == node.AlignStretch && inner.HasBoundedWidth() {
			width = inner.MaxWidth
		}
		maxWidth = math.Max(maxWidth, child.Measured().Width)
		totalHeight += e.heightAtWidth(child, width)
		if i > 0 {
			totalHeight += gap
		}
	}
	return geometry.Size{Width: maxWidth, Height: totalHeight}
}

func (e *Engine) measureFlow(c *node.Container, children []node.LayoutNode, inner geometry.BoxConstraints) geometry.Size {
	gap := c.EffectiveGap()

	heights := make([]float64, len(children))
	maxChildWidth := 0.0
	for i, child := range children {
		e.Measure(child, inner.Loosen())
		heights[i] = child.Measured().Height
		maxChildWidth = math.Max(maxChildWidth, child.Sizing().PreferredWidth())
	}

	availableWidth := maxChildWidth
	if inner.HasBoundedWidth() {
		availableWidth = inner.MaxWidth
	}

	plan := PackFlow(heights, maxChildWidth, availableWidth, gap, c.FlowColumns)
	for i, child := range children {
		heights[i] = e.heightAtWidth(child, plan.ColumnWidth)
	}

	columnHeights := make([]float64, plan.Columns)
	columnCounts := make([]int, plan.Columns)
	for i := range children {
		col := plan.ColumnOf[i]
		columnHeights[col] += heights[i]
		columnCounts[col]++
	}
	tallest := 0.0
	for col, h := range columnHeights {
		if columnCounts[col] > 1 {
			h += gap * float64(columnCounts[col]-1)
		}
		tallest = math.Max(tallest, h)
	}
	return geometry.Size{Width: availableWidth, Height: tallest}
}

// rowWidths resolves the per-child widths of a row: proportional split
// mode when requested, otherwise the distribution rules.
func (e *Engine) rowWidths(c *node.Container, naturals []float64, fixed []bool, available float64) []float64 {
	if c.SplitFactor > 0 {
		return SplitWidths(c.SplitFactor, len(naturals), available)
	}
	return Distribute(naturals, fixed, available, c.Alignment).Widths
}

// heightAtWidth returns the child's height assuming it will be given the
// provisional width. Widgets that declared width-dependent height are
// re-queried; child containers are re-measured with the width held tight;
// everything else keeps its measured height.
func (e *Engine) heightAtWidth(n node.LayoutNode, width float64) float64 {
	if width == n.Measured().Width {
		return n.Measured().Height
	}
	switch v := n.(type) {
	case *node.Widget:
		if v.WidthDependentHeight && v.HeightForWidth != nil {
			height := v.Measured().Height
			errors.Isolate("engine.heightAtWidth", func() {
				height = v.HeightForWidth(e.metrics, width)
			})
			return height
		}
		return v.Measured().Height
	case *node.Container:
		// Re-measuring with the width held tight records the provisional
		// width as the container's estimate, which would skew any later
		// distribution over the same children. Keep the natural width.
		natural := v.Sizing().EstimatedWidth
		height := e.Measure(v, geometry.TightWidth(width)).Height
		v.Sizing().EstimatedWidth = natural
		return height
	default:
		return n.Measured().Height
	}
}

func mainAxisInputs(children []node.LayoutNode) (naturals []float64, fixed []bool) {
	naturals = make([]float64, len(children))
	fixed = make([]bool, len(children))
	for i, child := range children {
		sizing := child.Sizing()
		naturals[i] = sizing.PreferredWidth()
		fixed[i] = sizing.IsFixed
	}
	return naturals, fixed
}
