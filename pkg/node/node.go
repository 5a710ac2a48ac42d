// Package node defines the layout tree: a closed set of two element
// variants (Widget leaves and Containers) plus the arena that hands out
// generation-checked handles to them.
//
// Trees are built imperatively, laid out by pkg/engine, post-processed by
// pkg/align and discarded wholesale on the next rebuild. Nothing outside
// the tree keeps an owning reference to a node; cross-references go
// through arena handles so a stale reference is detectable.
package node

import (
	"fmt"

	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/text"
)

// Axis is the main layout direction of a container.
type Axis int

const (
	// AxisColumn stacks children vertically.
	AxisColumn Axis = iota
	// AxisRow lays children out horizontally. Rows additionally run width
	// distribution during measure and arrange.
	AxisRow
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisColumn:
		return "column"
	case AxisRow:
		return "row"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment controls child placement along a container's main axis and,
// for stretch, whether flexible children absorb leftover space.
type Alignment int

const (
	// AlignStart keeps natural widths and places leftover space after the run.
	AlignStart Alignment = iota
	// AlignCenter keeps natural widths and splits leftover space evenly
	// around the run.
	AlignCenter
	// AlignEnd keeps natural widths and places leftover space before the run.
	AlignEnd
	// AlignStretch grows flexible children to fill the available space.
	// With no flexible children the leftover is spread into the gaps.
	AlignStretch
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// GapMode selects the inter-child spacing of a container.
type GapMode int

const (
	// GapNormal uses the theme gap between children.
	GapNormal GapMode = iota
	// GapTight packs children with zero gap, the mode used by groups that
	// are meant to be stitched into one visual block.
	GapTight
)

// Kind names what a widget leaf displays. Classification from external
// property metadata to a kind happens upstream; the layout core only
// consumes the result.
type Kind int

const (
	KindCustom Kind = iota
	KindLabel
	KindButton
	KindCheckbox
	KindSlider
	KindField
	KindChoice
	KindIcon
	KindColor
)

// String returns a human-readable representation of the widget kind.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindCheckbox:
		return "checkbox"
	case KindSlider:
		return "slider"
	case KindField:
		return "field"
	case KindChoice:
		return "choice"
	case KindIcon:
		return "icon"
	case KindColor:
		return "color"
	default:
		return "custom"
	}
}

// LayoutNode is the common contract of both tree variants. Frames are
// assigned only by the arrange pass; corner masks only by the alignment
// pass (unless locked).
type LayoutNode interface {
	Frame() geometry.Rect
	SetFrame(geometry.Rect)
	Visible() bool
	Enabled() bool
	SetEnabled(bool)
	Key() string
	Sizing() *geometry.SizingPolicy
	Measured() geometry.Size
	SetMeasured(geometry.Size)

	CanAlign() bool
	Corners() geometry.CornerMask
	SetCorners(geometry.CornerMask)
	CornersLocked() bool
}

// Base carries the state shared by widgets and containers.
type Base struct {
	frame         geometry.Rect
	visible       bool
	enabled       bool
	canAlign      bool
	corners       geometry.CornerMask
	cornersLocked bool
	sizing        geometry.SizingPolicy
	measured      geometry.Size
	key           string
}

func newBase(key string) Base {
	return Base{
		visible: true,
		enabled: true,
		corners: geometry.AllCorners(),
		key:     key,
	}
}

// Frame returns the arranged rectangle.
func (b *Base) Frame() geometry.Rect { return b.frame }

// SetFrame assigns the arranged rectangle. Only the arrange and alignment
// passes call this.
func (b *Base) SetFrame(frame geometry.Rect) { b.frame = frame }

// Visible reports whether the node takes part in layout and drawing.
func (b *Base) Visible() bool { return b.visible }

// SetVisible toggles visibility.
func (b *Base) SetVisible(visible bool) { b.visible = visible }

// Enabled reports whether the node accepts interaction.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled toggles interactivity. Binding sync uses this to degrade
// widgets whose resolution path became unreachable.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }

// Key returns the stable per-node key used for interaction-state carry-over
// across rebuilds. Empty keys never match.
func (b *Base) Key() string { return b.key }

// Sizing returns the mutable sizing memo for this node.
func (b *Base) Sizing() *geometry.SizingPolicy { return &b.sizing }

// Measured returns the size computed by the most recent measure pass.
func (b *Base) Measured() geometry.Size { return b.measured }

// SetMeasured records the measured size. Only the measure pass (and the
// arrange pass when it hands a child its final distributed width) calls
// this.
func (b *Base) SetMeasured(size geometry.Size) { b.measured = size }

// SetFixedWidth requests an explicit width, exempting the node from
// flexible growth and shrink.
func (b *Base) SetFixedWidth(width float64) {
	b.sizing.FixedWidth = width
	b.sizing.IsFixed = true
}

// CanAlign reports eligibility for the border-stitching pass.
func (b *Base) CanAlign() bool { return b.canAlign }

// SetCanAlign opts the node in or out of border stitching.
func (b *Base) SetCanAlign(canAlign bool) { b.canAlign = canAlign }

// Corners returns the current rounded-corner mask.
func (b *Base) Corners() geometry.CornerMask { return b.corners }

// SetCorners replaces the rounded-corner mask. The alignment pass
// recomputes it wholesale every tick unless the mask is locked.
func (b *Base) SetCorners(mask geometry.CornerMask) { b.corners = mask }

// CornersLocked reports whether the mask is exempt from recomputation.
func (b *Base) CornersLocked() bool { return b.cornersLocked }

// LockCorners pins the current mask so the alignment pass skips the node.
func (b *Base) LockCorners(mask geometry.CornerMask) {
	b.corners = mask
	b.cornersLocked = true
}

// Widget is a leaf node: an opaque natural size plus a draw callback.
// Its content metrics come from the text collaborator during measure.
type Widget struct {
	Base
	Kind Kind

	// Text is the display string for text-bearing kinds.
	Text string
	// Icon selects a backend icon for icon-bearing kinds (0 = none).
	Icon int
	// Value is the current bound value, adapted by binding sync.
	Value any
	// Choices is the current enumerated option list for choice widgets.
	Choices []string

	// Hovered and Pressed are interaction flags toggled by the hit-test
	// registry during event dispatch.
	Hovered bool
	Pressed bool

	// WidthDependentHeight marks widgets (wrapping text) whose height
	// cannot be finalized until their distributed width is known.
	WidthDependentHeight bool

	// MeasureFunc returns the natural size given the content metrics.
	MeasureFunc func(m text.Metrics) geometry.Size
	// HeightForWidth re-queries the natural height at a provisional width.
	// Only consulted when WidthDependentHeight is set.
	HeightForWidth func(m text.Metrics, width float64) float64
	// DrawFunc paints the widget into its frame. Failures in the backend
	// must not affect layout state, so the pipeline isolates this call.
	DrawFunc func(c render.Canvas, frame geometry.Rect)
}

// NewWidget creates a leaf of the given kind with a stable key.
func NewWidget(kind Kind, key string) *Widget {
	return &Widget{Base: newBase(key), Kind: kind}
}

// NaturalSize queries the widget's natural size, falling back to a zero
// size when no measure function was provided.
func (w *Widget) NaturalSize(m text.Metrics) geometry.Size {
	if w.MeasureFunc == nil {
		return geometry.Size{}
	}
	size := w.MeasureFunc(m)
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	return size
}

// Container is an interior node with ordered children. Insertion order is
// paint order and hit priority order.
type Container struct {
	Base
	Children  []LayoutNode
	Axis      Axis
	Alignment Alignment
	GapMode   GapMode

	// SplitFactor, when positive, gives the first child that fraction of
	// the available width; the remaining children share the rest evenly.
	// Ignored with a single child.
	SplitFactor float64

	// Flow enables packed multi-column mode. FlowColumns fixes the column
	// count; zero derives it from the widest child.
	Flow        bool
	FlowColumns int

	// Aligning marks this container as a border-stitching scope for its
	// eligible descendants. Scope does not cross into a nested container
	// that did not itself opt in.
	Aligning bool

	Padding geometry.Insets
	Gap     float64
}

// NewContainer creates an empty container with the given axis.
func NewContainer(axis Axis, key string) *Container {
	return &Container{Base: newBase(key), Axis: axis}
}

// Add appends children in paint and hit-priority order.
func (c *Container) Add(children ...LayoutNode) {
	c.Children = append(c.Children, children...)
}

// EffectiveGap returns the inter-child spacing for the container's gap mode.
func (c *Container) EffectiveGap() float64 {
	if c.GapMode == GapTight {
		return 0
	}
	return c.Gap
}

// VisibleChildren returns the children that take part in layout.
func (c *Container) VisibleChildren() []LayoutNode {
	visible := make([]LayoutNode, 0, len(c.Children))
	for _, child := range c.Children {
		if child.Visible() {
			visible = append(visible, child)
		}
	}
	return visible
}
