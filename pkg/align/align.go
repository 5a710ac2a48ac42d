// Package align implements the post-arrange border-stitching pass: it
// snaps the shared borders of adjacent opted-in widgets to a common
// coordinate and squares off the corners that touch a neighbor, fusing a
// run of widgets into one seamless visual block with only the outer
// corners rounded.
//
// The pass is a single deterministic sweep, not an iterative solver:
// one sort, a bounded neighbor search with at most four neighbor slots
// per node, one snap walk. Running it again over already-stitched
// rectangles reproduces the same rectangles and masks.
package align

import (
	"sort"

	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
)

// SnapFactor scales the UI base unit into the border snap threshold.
const SnapFactor = 0.45

// Threshold derives the snap distance from the UI base unit size.
func Threshold(baseUnit float64) float64 {
	return baseUnit * SnapFactor
}

// Alignable is the narrow capability the pass needs from a node: its
// arranged rectangle, its eligibility, and its corner mask. The pass never
// depends on the full widget type.
type Alignable interface {
	Frame() geometry.Rect
	SetFrame(geometry.Rect)
	Visible() bool
	CanAlign() bool
	Corners() geometry.CornerMask
	SetCorners(geometry.CornerMask)
	CornersLocked() bool
}

// Sides of a border record.
const (
	sideLeft = iota
	sideTop
	sideRight
	sideBottom
)

// record is the per-node working state: a 4-sided border derived from the
// arranged rectangle plus the single nearest stitched neighbor per side.
type record struct {
	n                        Alignable
	left, top, right, bottom float64
	neighbor                 [4]int
	gap                      [4]float64
}

// Pass stitches every align group under root. threshold is the snap
// distance from Threshold.
func Pass(root *node.Container, threshold float64) {
	for _, group := range collectGroups(root) {
		stitchGroup(group, threshold)
	}
}

// collectGroups partitions eligible leaves by their nearest enclosing
// aligning scope. A container roots a scope when it opted in and no
// enclosing scope reaches it; descent crosses a nested container only when
// that container itself opted in, otherwise the scope stops at its edge.
func collectGroups(root *node.Container) [][]Alignable {
	var groups [][]Alignable
	var walk func(c *node.Container, inScope bool, group *[]Alignable)
	walk = func(c *node.Container, inScope bool, group *[]Alignable) {
		if !inScope {
			if c.Aligning {
				// Roots a new scope.
				groups = append(groups, nil)
				walk(c, true, &groups[len(groups)-1])
				return
			}
			for _, child := range c.Children {
				if nested, ok := child.(*node.Container); ok {
					walk(nested, false, nil)
				}
			}
			return
		}
		for _, child := range c.Children {
			switch v := child.(type) {
			case *node.Widget:
				if eligible(v) {
					*group = append(*group, v)
				}
			case *node.Container:
				if v.Aligning {
					walk(v, true, group)
				} else {
					// Scope does not cross a container that did not opt
					// in, but that container may root scopes deeper down.
					walk(v, false, nil)
				}
			}
		}
	}
	walk(root, false, nil)

	// Single-member groups still run: their mask recomputes to fully
	// rounded, which matters when a tree is reused across ticks after a
	// neighbor disappeared.
	filtered := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// eligible reports whether a leaf takes part in stitching: opted in,
// visible, and covering actual area.
func eligible(n Alignable) bool {
	return n.CanAlign() && n.Visible() && !n.Frame().IsEmpty()
}

func stitchGroup(group []Alignable, threshold float64) {
	records := make([]record, len(group))
	tallest := 0.0
	for i, n := range group {
		frame := n.Frame()
		records[i] = record{
			n:      n,
			left:   frame.Left,
			top:    frame.Top,
			right:  frame.Right,
			bottom: frame.Bottom,
		}
		for s := range records[i].neighbor {
			records[i].neighbor[s] = -1
		}
		if h := frame.Height(); h > tallest {
			tallest = h
		}
	}

	// Deterministic scan order: descending top, then ascending left.
	sort.SliceStable(records, func(a, b int) bool {
		if records[a].top != records[b].top {
			return records[a].top > records[b].top
		}
		return records[a].left < records[b].left
	})

	findNeighbors(records, threshold, tallest)
	snapBorders(records, threshold)

	for i := range records {
		r := &records[i]
		r.n.SetFrame(geometry.Rect{Left: r.left, Top: r.top, Right: r.right, Bottom: r.bottom})
		if !r.n.CornersLocked() {
			r.n.SetCorners(cornerMask(records, i))
		}
	}
}

// findNeighbors records, for every node and side, the single nearest
// opposing node within the snap threshold. The records are sorted by
// descending top, so once a candidate's top is more than threshold plus
// the tallest member above the anchor's top, no later candidate can touch
// it and the inner scan exits early.
func findNeighbors(records []record, threshold, tallest float64) {
	for i := range records {
		for j := i + 1; j < len(records); j++ {
			if records[i].top-records[j].top > threshold+tallest {
				break
			}
			considerPair(records, i, j, threshold)
		}
	}
}

// considerPair measures the gap between the two closest opposing sides of
// a candidate pair and keeps it when it beats the current best neighbor on
// that side for both nodes.
func considerPair(records []record, i, j int, threshold float64) {
	a, b := &records[i], &records[j]

	// Shared vertical extent: candidates for a left/right stitch.
	if overlap(a.top, a.bottom, b.top, b.bottom) {
		// Of the two left-vs-right gaps, only the closest pair of
		// opposing sides is a stitch candidate.
		gapRight := b.left - a.right // b to the right of a
		gapLeft := a.left - b.right  // b to the left of a
		if abs(gapRight) <= abs(gapLeft) {
			keepNeighbor(records, i, sideRight, j, gapRight, threshold)
			keepNeighbor(records, j, sideLeft, i, gapRight, threshold)
		} else {
			keepNeighbor(records, i, sideLeft, j, gapLeft, threshold)
			keepNeighbor(records, j, sideRight, i, gapLeft, threshold)
		}
	}

	// Shared horizontal extent: candidates for a top/bottom stitch.
	if overlap(a.left, a.right, b.left, b.right) {
		gapAbove := a.top - b.bottom // b above a
		gapBelow := b.top - a.bottom // b below a
		if abs(gapAbove) <= abs(gapBelow) {
			keepNeighbor(records, i, sideTop, j, gapAbove, threshold)
			keepNeighbor(records, j, sideBottom, i, gapAbove, threshold)
		} else {
			keepNeighbor(records, i, sideBottom, j, gapBelow, threshold)
			keepNeighbor(records, j, sideTop, i, gapBelow, threshold)
		}
	}
}

func keepNeighbor(records []record, owner, side, other int, gap, threshold float64) {
	if abs(gap) >= threshold {
		return
	}
	r := &records[owner]
	if r.neighbor[side] >= 0 && abs(r.gap[side]) <= abs(gap) {
		return
	}
	r.neighbor[side] = other
	r.gap[side] = gap
}

// snapBorders moves every confirmed neighbor pair's shared border to the
// midpoint coordinate, then propagates that coordinate transitively along
// straight runs of perpendicular neighbors so a whole stitched row or
// column keeps one perfectly straight shared edge.
func snapBorders(records []record, threshold float64) {
	for i := range records {
		r := &records[i]
		if j := r.neighbor[sideRight]; j >= 0 && records[j].neighbor[sideLeft] == i {
			mid := (r.right + records[j].left) * 0.5
			snapVerticalEdge(records, i, j, mid, threshold)
		}
		if j := r.neighbor[sideBottom]; j >= 0 && records[j].neighbor[sideTop] == i {
			mid := (r.bottom + records[j].top) * 0.5
			snapHorizontalEdge(records, i, j, mid, threshold)
		}
	}
}

// snapVerticalEdge sets the shared x coordinate of the pair, then walks up
// and down the perpendicular neighbor chains applying the same coordinate
// to every aligned pair it finds.
func snapVerticalEdge(records []record, i, j int, mid, threshold float64) {
	records[i].right = mid
	records[j].left = mid
	for _, vertical := range [2]int{sideTop, sideBottom} {
		c := records[i].neighbor[vertical]
		for c >= 0 {
			d := records[c].neighbor[sideRight]
			if d < 0 || records[d].neighbor[sideLeft] != c {
				break
			}
			edge := (records[c].right + records[d].left) * 0.5
			if abs(edge-mid) > threshold {
				break
			}
			records[c].right = mid
			records[d].left = mid
			c = records[c].neighbor[vertical]
		}
	}
}

func snapHorizontalEdge(records []record, i, j int, mid, threshold float64) {
	records[i].bottom = mid
	records[j].top = mid
	for _, horizontal := range [2]int{sideLeft, sideRight} {
		c := records[i].neighbor[horizontal]
		for c >= 0 {
			d := records[c].neighbor[sideBottom]
			if d < 0 || records[d].neighbor[sideTop] != c {
				break
			}
			edge := (records[c].bottom + records[d].top) * 0.5
			if abs(edge-mid) > threshold {
				break
			}
			records[c].bottom = mid
			records[d].top = mid
			c = records[c].neighbor[horizontal]
		}
	}
}

// cornerMask rounds a corner only when neither adjacent side has a
// stitched, mutual neighbor.
func cornerMask(records []record, i int) geometry.CornerMask {
	stitchedLeft := mutual(records, i, sideLeft)
	stitchedTop := mutual(records, i, sideTop)
	stitchedRight := mutual(records, i, sideRight)
	stitchedBottom := mutual(records, i, sideBottom)
	return geometry.CornerMask{
		TopLeft:     !stitchedLeft && !stitchedTop,
		TopRight:    !stitchedRight && !stitchedTop,
		BottomRight: !stitchedRight && !stitchedBottom,
		BottomLeft:  !stitchedLeft && !stitchedBottom,
	}
}

// mutual reports whether the node's neighbor on a side also picked the
// node as its nearest neighbor on the opposing side. Only mutual pairs
// are stitched.
func mutual(records []record, i, side int) bool {
	j := records[i].neighbor[side]
	if j < 0 {
		return false
	}
	var opposite int
	switch side {
	case sideLeft:
		opposite = sideRight
	case sideRight:
		opposite = sideLeft
	case sideTop:
		opposite = sideBottom
	default:
		opposite = sideTop
	}
	return records[j].neighbor[opposite] == i
}

func overlap(aStart, aEnd, bStart, bEnd float64) bool {
	return min(aEnd, bEnd)-max(aStart, bStart) > 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
