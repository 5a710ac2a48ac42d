package input

import (
	stderrors "errors"
	"fmt"

	"github.com/go-plank/plank/pkg/errors"
	"github.com/go-plank/plank/pkg/node"
)

// InteractionState is the pointer state machine of one registry:
// Idle, Hovering, Pressed and Pressed+Dragging. It is owned exclusively
// by its registry and never shared across trees.
type InteractionState struct {
	PointerX, PointerY float64
	Hovered            *HitRegion
	Pressed            *HitRegion
	DragAnchorX        float64
	DragAnchorY        float64
	Dragging           bool
}

// Registry holds the hit regions of one container and dispatches pointer
// events. Registries nest the way containers nest: a parent delegates to
// its child registries, most recently added first, before consulting its
// own region list. The exception is an in-progress press owned by the
// parent itself, which keeps receiving moves and the release so a gesture
// cannot be stolen mid-drag by a widget the pointer entered underneath.
type Registry struct {
	arena    *node.Arena
	regions  []*HitRegion
	children []*Registry
	state    InteractionState
}

// NewRegistry creates an empty registry resolving owners against arena.
func NewRegistry(arena *node.Arena) *Registry {
	return &Registry{arena: arena}
}

// Register adds a region. Later registrations win z ties and receive
// events before earlier ones.
func (r *Registry) Register(region *HitRegion) {
	if errors.Debug && region.Key != "" {
		for _, existing := range r.regions {
			if existing.Key == region.Key {
				errors.Assert(false, "input.Register",
					fmt.Errorf("duplicate region key %q", region.Key))
				break
			}
		}
	}
	r.regions = append(r.regions, region)
}

// AddChild nests a child registry. Children receive events before the
// parent's own regions, most recently added first.
func (r *Registry) AddChild(child *Registry) {
	r.children = append(r.children, child)
}

// Reset drops all regions and child registries. Pointer coordinates
// survive; hover and press references do not.
func (r *Registry) Reset() {
	r.regions = r.regions[:0]
	r.children = r.children[:0]
	r.state.Hovered = nil
	r.state.Pressed = nil
	r.state.Dragging = false
}

// State returns a copy of the current interaction state.
func (r *Registry) State() InteractionState { return r.state }

// HoverKey returns the stable key of the currently hovered region, walking
// into child registries. Empty when nothing is hovered.
func (r *Registry) HoverKey() string {
	if r.state.Hovered != nil {
		return r.state.Hovered.Key
	}
	for i := len(r.children) - 1; i >= 0; i-- {
		if key := r.children[i].HoverKey(); key != "" {
			return key
		}
	}
	return ""
}

// RestoreHover reinstates hover on the region with the given key after a
// rebuild, without firing enter or leave events. It reports whether a
// matching region was found in this registry or a child.
func (r *Registry) RestoreHover(key string) bool {
	if key == "" {
		return false
	}
	for i := len(r.regions) - 1; i >= 0; i-- {
		region := r.regions[i]
		if region.Key != key || !region.Enabled {
			continue
		}
		r.state.Hovered = region
		if w := r.ownerWidget(region); w != nil {
			w.Hovered = true
		}
		return true
	}
	for i := len(r.children) - 1; i >= 0; i-- {
		if r.children[i].RestoreHover(key) {
			return true
		}
	}
	return false
}

// PointerMove dispatches a pointer move and reports whether any region is
// now hovered. While a press is in flight on this registry the move is
// consumed locally: a draggable pressed region receives a drag event with
// deltas since the previous move.
func (r *Registry) PointerMove(x, y float64) bool {
	prevX, prevY := r.state.PointerX, r.state.PointerY
	r.state.PointerX, r.state.PointerY = x, y

	if pressed := r.state.Pressed; pressed != nil {
		if pressed.Draggable {
			r.state.Dragging = true
			if pressed.Callbacks.OnDrag != nil {
				pressed.Callbacks.OnDrag(x-prevX, y-prevY, x, y)
			}
		}
		return r.state.Hovered != nil
	}

	claimed := false
	for i := len(r.children) - 1; i >= 0; i-- {
		if claimed {
			r.children[i].clearHover()
		} else if r.children[i].PointerMove(x, y) {
			claimed = true
		}
	}
	if claimed {
		r.setHovered(nil)
		return true
	}
	hit := r.hitTest(x, y)
	r.setHovered(hit)
	return hit != nil
}

// PointerDown dispatches a press and reports whether a region consumed it.
func (r *Registry) PointerDown(x, y float64) bool {
	r.state.PointerX, r.state.PointerY = x, y
	for i := len(r.children) - 1; i >= 0; i-- {
		if r.children[i].PointerDown(x, y) {
			return true
		}
	}
	hit := r.hitTest(x, y)
	if hit == nil {
		return false
	}
	r.state.Pressed = hit
	r.state.DragAnchorX, r.state.DragAnchorY = x, y
	r.state.Dragging = false
	if w := r.ownerWidget(hit); w != nil {
		w.Pressed = true
	}
	if hit.Callbacks.OnPress != nil {
		hit.Callbacks.OnPress(x, y)
	}
	return true
}

// PointerUp completes the press in flight, if any. inside is evaluated
// against the region's current bounds, which may have moved since the
// press. Release always fires; click fires only after an inside release.
// The pressed reference is cleared unconditionally.
func (r *Registry) PointerUp(x, y float64) bool {
	r.state.PointerX, r.state.PointerY = x, y
	pressed := r.state.Pressed
	if pressed == nil {
		for i := len(r.children) - 1; i >= 0; i-- {
			if r.children[i].PointerUp(x, y) {
				return true
			}
		}
		return false
	}
	r.state.Pressed = nil
	r.state.Dragging = false
	if w := r.ownerWidget(pressed); w != nil {
		w.Pressed = false
	}
	inside := pressed.Contains(x, y)
	if pressed.Callbacks.OnRelease != nil {
		pressed.Callbacks.OnRelease(inside)
	}
	if inside && pressed.Callbacks.OnClick != nil {
		pressed.Callbacks.OnClick()
	}
	return true
}

// Refresh re-reads every region's bounds and enabled flag from its owner.
// Regions whose owner handle went stale are disabled until re-registered.
func (r *Registry) Refresh() {
	for _, region := range r.regions {
		n, ok := r.arena.Get(region.Owner)
		if !ok {
			region.Enabled = false
			continue
		}
		region.Bounds = n.Frame()
		region.Enabled = n.Enabled() && n.Visible()
	}
	for _, child := range r.children {
		child.Refresh()
	}
}

// hitTest returns the topmost enabled region containing the point: maximum
// Z, with the most recently registered region winning ties.
func (r *Registry) hitTest(x, y float64) *HitRegion {
	var hit *HitRegion
	for _, region := range r.regions {
		if !region.Enabled || !region.Contains(x, y) {
			continue
		}
		if hit == nil || region.Z >= hit.Z {
			hit = region
		}
	}
	return hit
}

// setHovered swaps the hovered region, firing leave before enter and
// keeping the owner widgets' hover flags in step.
func (r *Registry) setHovered(hit *HitRegion) {
	old := r.state.Hovered
	if old == hit {
		return
	}
	r.state.Hovered = hit
	if old != nil {
		if w := r.ownerWidget(old); w != nil {
			w.Hovered = false
		}
		if old.Callbacks.OnHoverLeave != nil {
			old.Callbacks.OnHoverLeave()
		}
	}
	if hit != nil {
		if w := r.ownerWidget(hit); w != nil {
			w.Hovered = true
		}
		if hit.Callbacks.OnHoverEnter != nil {
			hit.Callbacks.OnHoverEnter()
		}
	}
}

func (r *Registry) clearHover() {
	r.setHovered(nil)
	for _, child := range r.children {
		child.clearHover()
	}
}

func (r *Registry) ownerWidget(region *HitRegion) *node.Widget {
	n, ok := r.arena.Get(region.Owner)
	if !ok {
		return nil
	}
	w, ok := n.(*node.Widget)
	if !ok {
		errors.Assert(false, "input.owner",
			stderrors.New("hit region owner is not a widget"))
		return nil
	}
	return w
}
