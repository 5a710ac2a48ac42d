package align

import (
	"testing"

	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/text"
)

// button builds an alignable leaf with an arranged frame.
func button(key string, frame geometry.Rect) *node.Widget {
	w := node.NewWidget(node.KindButton, key)
	w.MeasureFunc = func(text.Metrics) geometry.Size { return frame.Size() }
	w.SetCanAlign(true)
	w.SetFrame(frame)
	return w
}

// group wraps widgets in an aligning container.
func group(children ...node.LayoutNode) *node.Container {
	c := node.NewContainer(node.AxisRow, "group")
	c.Aligning = true
	c.GapMode = node.GapTight
	c.Add(children...)
	return c
}

// Two same-row buttons with a 1-pixel gap below threshold must end with a
// shared border x-coordinate and rounding only on their outer corners.
func TestStitchTwoButtonsInARow(t *testing.T) {
	left := button("left", geometry.RectFromLTWH(0, 0, 50, 20))
	right := button("right", geometry.RectFromLTWH(51, 0, 50, 20))
	root := group(left, right)

	Pass(root, Threshold(10)) // threshold 4.5

	if left.Frame().Right != right.Frame().Left {
		t.Fatalf("shared border mismatch: left.Right=%v right.Left=%v",
			left.Frame().Right, right.Frame().Left)
	}
	if got := left.Frame().Right; got != 50.5 {
		t.Errorf("shared border at %v, want midpoint 50.5", got)
	}

	wantLeft := geometry.CornerMask{TopLeft: true, BottomLeft: true}
	if left.Corners() != wantLeft {
		t.Errorf("left mask = %+v, want outer-left corners only", left.Corners())
	}
	wantRight := geometry.CornerMask{TopRight: true, BottomRight: true}
	if right.Corners() != wantRight {
		t.Errorf("right mask = %+v, want outer-right corners only", right.Corners())
	}
}

// Running the pass twice over an already-stitched set must not move any
// border or change any mask.
func TestPassIsIdempotent(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	b := button("b", geometry.RectFromLTWH(41, 0, 40, 20))
	c := button("c", geometry.RectFromLTWH(0, 21, 40, 20))
	d := button("d", geometry.RectFromLTWH(41, 21, 40, 20))
	root := group(a, b, c, d)

	Pass(root, Threshold(10))
	frames := []geometry.Rect{a.Frame(), b.Frame(), c.Frame(), d.Frame()}
	masks := []geometry.CornerMask{a.Corners(), b.Corners(), c.Corners(), d.Corners()}

	Pass(root, Threshold(10))
	after := []*node.Widget{a, b, c, d}
	for i, w := range after {
		if w.Frame() != frames[i] {
			t.Errorf("%s frame drifted: %+v -> %+v", w.Key(), frames[i], w.Frame())
		}
		if w.Corners() != masks[i] {
			t.Errorf("%s mask drifted: %+v -> %+v", w.Key(), masks[i], w.Corners())
		}
	}
}

// A 2x2 grid fuses into one block: inner corners all squared, each outer
// corner keeps exactly its own rounding.
func TestGridMasks(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))  // top-left
	b := button("b", geometry.RectFromLTWH(41, 0, 40, 20)) // top-right
	c := button("c", geometry.RectFromLTWH(0, 21, 40, 20)) // bottom-left
	d := button("d", geometry.RectFromLTWH(41, 21, 40, 20))
	root := group(a, b, c, d)

	Pass(root, Threshold(10))

	cases := []struct {
		w    *node.Widget
		want geometry.CornerMask
	}{
		{a, geometry.CornerMask{TopLeft: true}},
		{b, geometry.CornerMask{TopRight: true}},
		{c, geometry.CornerMask{BottomLeft: true}},
		{d, geometry.CornerMask{BottomRight: true}},
	}
	for _, tc := range cases {
		if tc.w.Corners() != tc.want {
			t.Errorf("%s mask = %+v, want %+v", tc.w.Key(), tc.w.Corners(), tc.want)
		}
	}
}

// The snapped vertical edge of a stacked pair of rows must be one straight
// line even when the rows' gaps differ slightly.
func TestTransitiveStraightEdge(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	b := button("b", geometry.RectFromLTWH(41, 0, 40, 20))
	c := button("c", geometry.RectFromLTWH(0, 21, 40.6, 20))
	d := button("d", geometry.RectFromLTWH(41.4, 21, 40, 20))
	root := group(a, b, c, d)

	Pass(root, Threshold(10))

	if a.Frame().Right != c.Frame().Right {
		t.Errorf("vertical edge not straight: %v vs %v", a.Frame().Right, c.Frame().Right)
	}
	if b.Frame().Left != d.Frame().Left {
		t.Errorf("vertical edge not straight: %v vs %v", b.Frame().Left, d.Frame().Left)
	}
}

func TestGapBeyondThresholdDoesNotStitch(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	b := button("b", geometry.RectFromLTWH(50, 0, 40, 20)) // 10px gap
	root := group(a, b)

	Pass(root, Threshold(10)) // threshold 4.5

	if a.Frame().Right != 40 || b.Frame().Left != 50 {
		t.Errorf("borders moved despite gap beyond threshold: %v, %v",
			a.Frame().Right, b.Frame().Left)
	}
	if a.Corners() != geometry.AllCorners() || b.Corners() != geometry.AllCorners() {
		t.Error("masks changed despite gap beyond threshold")
	}
}

// Hidden, zero-area and opted-out nodes never stitch.
func TestIneligibleNodesAreSkipped(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	hidden := button("hidden", geometry.RectFromLTWH(41, 0, 40, 20))
	hidden.SetVisible(false)
	optedOut := button("out", geometry.RectFromLTWH(0, 21, 40, 20))
	optedOut.SetCanAlign(false)
	empty := button("empty", geometry.RectFromLTWH(41, 21, 0, 0))
	root := group(a, hidden, optedOut, empty)

	Pass(root, Threshold(10))

	if a.Frame() != geometry.RectFromLTWH(0, 0, 40, 20) {
		t.Errorf("frame moved with no eligible neighbors: %+v", a.Frame())
	}
	if a.Corners() != geometry.AllCorners() {
		t.Errorf("mask = %+v, want all corners rounded", a.Corners())
	}
}

// A locked mask survives the pass untouched even when the node stitches.
func TestLockedCornersAreLeftAlone(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	locked := geometry.AllCorners()
	a.LockCorners(locked)
	b := button("b", geometry.RectFromLTWH(41, 0, 40, 20))
	root := group(a, b)

	Pass(root, Threshold(10))

	if a.Corners() != locked {
		t.Errorf("locked mask changed: %+v", a.Corners())
	}
	if a.Frame().Right != b.Frame().Left {
		t.Error("locked corners must not prevent border snapping")
	}
}

// Scope must not cross into a nested container that did not opt in.
func TestScopeStopsAtNonAligningContainer(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	inner := node.NewContainer(node.AxisRow, "inner") // not aligning
	b := button("b", geometry.RectFromLTWH(41, 0, 40, 20))
	inner.Add(b)
	root := group(a, inner)

	Pass(root, Threshold(10))

	if a.Frame().Right != 40 || b.Frame().Left != 41 {
		t.Error("stitching crossed into a non-aligning nested container")
	}
}

// A nested container that did opt in merges its leaves into the enclosing
// scope.
func TestNestedAligningContainerMerges(t *testing.T) {
	a := button("a", geometry.RectFromLTWH(0, 0, 40, 20))
	inner := node.NewContainer(node.AxisRow, "inner")
	inner.Aligning = true
	b := button("b", geometry.RectFromLTWH(41, 0, 40, 20))
	inner.Add(b)
	root := group(a, inner)

	Pass(root, Threshold(10))

	if a.Frame().Right != b.Frame().Left {
		t.Error("nested aligning container should merge into the enclosing scope")
	}
}
