// Package input maintains interactive regions and the pointer interaction
// state machine. It consumes final frames from the layout passes but is
// otherwise independent of layout internals: a region references its widget
// through a generation-checked arena handle, never an owning pointer.
package input

import (
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
)

// Callbacks holds the event hooks of one region. Any of them may be nil.
type Callbacks struct {
	// OnHoverEnter fires when the pointer starts hovering the region.
	OnHoverEnter func()
	// OnHoverLeave fires when the pointer stops hovering the region.
	// On a hover handoff the old region's leave fires before the new
	// region's enter.
	OnHoverLeave func()
	// OnPress fires on pointer-down inside the region.
	OnPress func(x, y float64)
	// OnRelease fires on pointer-up after a press on this region. inside
	// reports whether the release landed in the region's current bounds.
	OnRelease func(inside bool)
	// OnClick fires after OnRelease(true), never on an outside release.
	OnClick func()
	// OnDrag fires on every pointer move while pressed, with deltas since
	// the previous move and the absolute pointer position.
	OnDrag func(dx, dy, x, y float64)
}

// HitRegion is a registered rectangular interactive region. It is distinct
// from the widget it represents: the widget may be rebuilt or discarded
// while the region's press is still in flight, which the handle absorbs.
type HitRegion struct {
	// Bounds is the absolute hit rectangle, refreshed from the owner's
	// frame after every arrange.
	Bounds geometry.Rect
	// Z breaks ties between overlapping regions; higher wins. Equal Z
	// resolves to the most recently registered region.
	Z int
	// Enabled gates hit-testing. Disabled regions are invisible to the
	// pointer but a press already in flight still completes.
	Enabled bool
	// Draggable regions receive continuous drag events while pressed.
	Draggable bool
	// Owner is the non-owning back-reference to the widget.
	Owner node.Handle
	// Key is the stable identity used for hover carry-over across rebuilds.
	Key string

	Callbacks Callbacks
}

// Contains reports whether the point lies in the region's current bounds.
func (r *HitRegion) Contains(x, y float64) bool {
	return r.Bounds.Contains(geometry.Offset{X: x, Y: y})
}
