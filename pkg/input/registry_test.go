package input

import (
	"testing"

	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
)

func testWidget(a *node.Arena, key string) (*node.Widget, node.Handle) {
	w := node.NewWidget(node.KindButton, key)
	return w, a.Add(w)
}

func testRegion(owner node.Handle, key string, bounds geometry.Rect, z int) *HitRegion {
	return &HitRegion{Bounds: bounds, Z: z, Enabled: true, Owner: owner, Key: key}
}

func TestHitTestPicksHighestZ(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)

	_, lowH := testWidget(arena, "low")
	_, highH := testWidget(arena, "high")
	bounds := geometry.RectFromLTWH(0, 0, 100, 100)
	low := testRegion(lowH, "low", bounds, 1)
	high := testRegion(highH, "high", bounds, 2)
	reg.Register(high)
	reg.Register(low)

	var pressedKey string
	low.Callbacks.OnPress = func(x, y float64) { pressedKey = "low" }
	high.Callbacks.OnPress = func(x, y float64) { pressedKey = "high" }

	if !reg.PointerDown(50, 50) {
		t.Fatal("press over both regions missed")
	}
	if pressedKey != "high" {
		t.Errorf("press went to %q, want the z=2 region", pressedKey)
	}
	reg.PointerUp(50, 50)
}

func TestHitTestZTieGoesToLatestRegistered(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)

	_, firstH := testWidget(arena, "first")
	_, secondH := testWidget(arena, "second")
	bounds := geometry.RectFromLTWH(0, 0, 100, 100)
	first := testRegion(firstH, "first", bounds, 3)
	second := testRegion(secondH, "second", bounds, 3)
	reg.Register(first)
	reg.Register(second)

	var pressedKey string
	first.Callbacks.OnPress = func(x, y float64) { pressedKey = "first" }
	second.Callbacks.OnPress = func(x, y float64) { pressedKey = "second" }

	reg.PointerDown(10, 10)
	if pressedKey != "second" {
		t.Errorf("press went to %q, want the later-registered region", pressedKey)
	}
}

func TestReleaseInsideFiresReleaseThenClick(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	w, h := testWidget(arena, "btn")
	r := testRegion(h, "btn", geometry.RectFromLTWH(0, 0, 40, 20), 0)
	reg.Register(r)

	var events []string
	r.Callbacks.OnRelease = func(inside bool) {
		if inside {
			events = append(events, "release-inside")
		} else {
			events = append(events, "release-outside")
		}
	}
	r.Callbacks.OnClick = func() { events = append(events, "click") }

	reg.PointerDown(10, 10)
	if !w.Pressed {
		t.Error("owner pressed flag not set on pointer-down")
	}
	reg.PointerUp(12, 10)
	if w.Pressed {
		t.Error("owner pressed flag not cleared on pointer-up")
	}

	if len(events) != 2 || events[0] != "release-inside" || events[1] != "click" {
		t.Errorf("events = %v, want [release-inside click]", events)
	}
	if reg.State().Pressed != nil {
		t.Error("pressed reference survived the release")
	}
}

func TestReleaseOutsideSuppressesClick(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	_, h := testWidget(arena, "btn")
	r := testRegion(h, "btn", geometry.RectFromLTWH(0, 0, 40, 20), 0)
	reg.Register(r)

	var events []string
	r.Callbacks.OnRelease = func(inside bool) {
		if inside {
			events = append(events, "release-inside")
		} else {
			events = append(events, "release-outside")
		}
	}
	r.Callbacks.OnClick = func() { events = append(events, "click") }

	reg.PointerDown(10, 10)
	reg.PointerMove(100, 100)
	reg.PointerUp(100, 100)

	if len(events) != 1 || events[0] != "release-outside" {
		t.Errorf("events = %v, want [release-outside]", events)
	}
}

func TestReleaseUsesCurrentBounds(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	_, h := testWidget(arena, "btn")
	r := testRegion(h, "btn", geometry.RectFromLTWH(0, 0, 40, 20), 0)
	reg.Register(r)

	var inside *bool
	r.Callbacks.OnRelease = func(in bool) { inside = &in }

	reg.PointerDown(10, 10)
	// The region moves out from under the pointer mid-press.
	r.Bounds = geometry.RectFromLTWH(200, 0, 40, 20)
	reg.PointerUp(10, 10)

	if inside == nil {
		t.Fatal("release never fired")
	}
	if *inside {
		t.Error("release reported inside against stale bounds")
	}
}

func TestHoverHandoffLeavesBeforeEntering(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	wa, ha := testWidget(arena, "a")
	wb, hb := testWidget(arena, "b")
	ra := testRegion(ha, "a", geometry.RectFromLTWH(0, 0, 50, 20), 0)
	rb := testRegion(hb, "b", geometry.RectFromLTWH(50, 0, 50, 20), 0)
	reg.Register(ra)
	reg.Register(rb)

	var events []string
	ra.Callbacks.OnHoverEnter = func() { events = append(events, "enter-a") }
	ra.Callbacks.OnHoverLeave = func() { events = append(events, "leave-a") }
	rb.Callbacks.OnHoverEnter = func() { events = append(events, "enter-b") }
	rb.Callbacks.OnHoverLeave = func() { events = append(events, "leave-b") }

	if !reg.PointerMove(10, 10) {
		t.Fatal("move over region a reported no hover")
	}
	if !wa.Hovered {
		t.Error("hover flag of a not set")
	}
	reg.PointerMove(60, 10)
	if wa.Hovered || !wb.Hovered {
		t.Errorf("hover flags a=%v b=%v after handoff", wa.Hovered, wb.Hovered)
	}
	if reg.PointerMove(200, 200) {
		t.Error("move into empty space reported a hover")
	}
	if wb.Hovered {
		t.Error("hover flag of b not cleared when leaving")
	}

	want := []string{"enter-a", "leave-a", "enter-b", "leave-b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestDragDeltasAreContinuous(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	_, h := testWidget(arena, "slider")
	r := testRegion(h, "slider", geometry.RectFromLTWH(0, 0, 100, 20), 0)
	r.Draggable = true
	reg.Register(r)

	type delta struct{ dx, dy, x, y float64 }
	var drags []delta
	r.Callbacks.OnDrag = func(dx, dy, x, y float64) {
		drags = append(drags, delta{dx, dy, x, y})
	}

	reg.PointerMove(10, 10)
	reg.PointerDown(10, 10)
	reg.PointerMove(15, 12)
	reg.PointerMove(20, 12)
	reg.PointerMove(18, 15)

	if !reg.State().Dragging {
		t.Error("dragging flag not set while moving pressed")
	}
	want := []delta{{5, 2, 15, 12}, {5, 0, 20, 12}, {-2, 3, 18, 15}}
	if len(drags) != len(want) {
		t.Fatalf("got %d drag events, want %d", len(drags), len(want))
	}
	for i := range want {
		if drags[i] != want[i] {
			t.Errorf("drag[%d] = %+v, want %+v", i, drags[i], want[i])
		}
	}

	reg.PointerUp(18, 15)
	if reg.State().Dragging {
		t.Error("dragging flag survived the release")
	}
}

func TestPressedRegistryPreemptsChildDispatch(t *testing.T) {
	arena := node.NewArena(4)
	parent := NewRegistry(arena)
	child := NewRegistry(arena)
	parent.AddChild(child)

	_, ph := testWidget(arena, "parent-knob")
	pr := testRegion(ph, "parent-knob", geometry.RectFromLTWH(0, 0, 10, 10), 0)
	pr.Draggable = true
	parent.Register(pr)

	wc, ch := testWidget(arena, "child-btn")
	cr := testRegion(ch, "child-btn", geometry.RectFromLTWH(20, 0, 10, 10), 0)
	child.Register(cr)

	dragFired := false
	pr.Callbacks.OnDrag = func(dx, dy, x, y float64) { dragFired = true }

	parent.PointerDown(5, 5)
	parent.PointerMove(25, 5)

	if !dragFired {
		t.Error("drag did not keep firing over the child region")
	}
	if child.State().Hovered != nil || wc.Hovered {
		t.Error("child region stole hover during an in-flight drag")
	}
}

func TestChildRegistriesRouteMostRecentFirst(t *testing.T) {
	arena := node.NewArena(4)
	parent := NewRegistry(arena)
	older := NewRegistry(arena)
	newer := NewRegistry(arena)
	parent.AddChild(older)
	parent.AddChild(newer)

	bounds := geometry.RectFromLTWH(0, 0, 50, 50)
	_, oh := testWidget(arena, "older")
	or := testRegion(oh, "older", bounds, 0)
	older.Register(or)
	_, nh := testWidget(arena, "newer")
	nr := testRegion(nh, "newer", bounds, 0)
	newer.Register(nr)

	var pressedKey string
	or.Callbacks.OnPress = func(x, y float64) { pressedKey = "older" }
	nr.Callbacks.OnPress = func(x, y float64) { pressedKey = "newer" }

	parent.PointerDown(10, 10)
	if pressedKey != "newer" {
		t.Errorf("press went to %q, want the most recently added child", pressedKey)
	}
}

func TestRefreshSyncsBoundsAndDisablesStaleOwners(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	w, h := testWidget(arena, "btn")
	w.SetFrame(geometry.RectFromLTWH(30, 40, 60, 20))
	r := testRegion(h, "btn", geometry.Rect{}, 0)
	reg.Register(r)

	reg.Refresh()
	if r.Bounds != geometry.RectFromLTWH(30, 40, 60, 20) {
		t.Errorf("bounds = %+v, not synced from the owner frame", r.Bounds)
	}
	if !r.Enabled {
		t.Error("region disabled despite a live enabled owner")
	}

	arena.Reset()
	reg.Refresh()
	if r.Enabled {
		t.Error("region stayed enabled after its owner handle went stale")
	}
	if reg.PointerDown(35, 45) {
		t.Error("stale region still consumed a press")
	}
}

func TestReleaseAfterOwnerTeardownIsSafe(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	_, h := testWidget(arena, "btn")
	r := testRegion(h, "btn", geometry.RectFromLTWH(0, 0, 40, 20), 0)
	reg.Register(r)

	released := false
	r.Callbacks.OnRelease = func(inside bool) { released = true }

	reg.PointerDown(10, 10)
	arena.Reset()
	reg.PointerUp(10, 10)

	if !released {
		t.Error("release dropped because the owner went away")
	}
}

func TestRestoreHoverSkipsEnterCallback(t *testing.T) {
	arena := node.NewArena(4)
	reg := NewRegistry(arena)
	w, h := testWidget(arena, "btn")
	r := testRegion(h, "btn", geometry.RectFromLTWH(0, 0, 40, 20), 0)
	reg.Register(r)

	entered := false
	r.Callbacks.OnHoverEnter = func() { entered = true }

	if !reg.RestoreHover("btn") {
		t.Fatal("restore missed a registered key")
	}
	if entered {
		t.Error("restore re-announced the hover")
	}
	if !w.Hovered {
		t.Error("owner hover flag not reinstated")
	}
	if reg.HoverKey() != "btn" {
		t.Errorf("HoverKey() = %q", reg.HoverKey())
	}
	if reg.RestoreHover("missing") {
		t.Error("restore matched an unknown key")
	}
}

func TestMenuTableLifecycle(t *testing.T) {
	arena := node.NewArena(4)
	menus := NewMenuTable(arena)
	w, h := testWidget(arena, "choice")

	committed := -1
	menus.Open(7, h, func(index int) { committed = index })
	got, ok := menus.Lookup(7)
	if !ok || got != node.LayoutNode(w) {
		t.Fatal("lookup missed a freshly opened entry")
	}

	menus.Commit(7, 2)
	if committed != 2 {
		t.Errorf("commit delivered %d, want 2", committed)
	}
	if menus.Len() != 0 {
		t.Errorf("Len() = %d after commit", menus.Len())
	}

	menus.Open(8, h, nil)
	menus.Close(8)
	if _, ok := menus.Lookup(8); ok {
		t.Error("lookup hit a closed entry")
	}
}

func TestMenuCommitDropsStaleOwner(t *testing.T) {
	arena := node.NewArena(4)
	menus := NewMenuTable(arena)
	_, h := testWidget(arena, "choice")

	committed := false
	menus.Open(9, h, func(int) { committed = true })
	arena.Reset()

	if _, ok := menus.Lookup(9); ok {
		t.Error("lookup resolved an owner from a torn-down tree")
	}
	menus.Commit(9, 0)
	if committed {
		t.Error("commit reached a widget from a torn-down tree")
	}
	if menus.Len() != 0 {
		t.Errorf("Len() = %d, stale entry not cleared", menus.Len())
	}
}
