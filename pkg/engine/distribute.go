// Package engine implements the two-pass measure/arrange layout algorithm
// together with its width-distribution and flow-packing sub-algorithms.
package engine

import (
	"math"

	"github.com/go-plank/plank/pkg/node"
)

// Placement is the main-axis outcome of width distribution for one
// container: per-child widths, the space placed before the first child and
// any extra spacing inserted into each inter-child gap.
type Placement struct {
	Widths   []float64
	Lead     float64
	ExtraGap float64
}

// Distribute resolves per-child widths for a row given the children's
// natural widths, their fixed flags, the space available after gap and
// padding subtraction, and the container alignment.
//
// The invariant the whole pass leans on: whenever the children are scaled
// (overflow shrink, stretch growth), the output widths sum to exactly the
// space they were scaled into - never off by a fractional pixel. That is
// achieved with a running-carry floor: every item but the last takes
// floor(carry + share), the carry keeps the fractional remainder, and the
// last item absorbs all accumulated slack. The carry itself is the
// deterministic tie-break when several items have identical remainders.
func Distribute(natural []float64, fixed []bool, available float64, alignment node.Alignment) Placement {
	n := len(natural)
	if n == 0 {
		return Placement{}
	}
	if available < 0 {
		available = 0
	}

	total := 0.0
	fixedTotal := 0.0
	for i, w := range natural {
		total += w
		if fixed[i] {
			fixedTotal += w
		}
	}

	if total > available {
		return Placement{Widths: shrink(natural, fixed, fixedTotal, available)}
	}

	leftover := available - total
	switch alignment {
	case node.AlignStretch:
		return stretch(natural, fixed, fixedTotal, available, leftover)
	case node.AlignCenter:
		return Placement{Widths: copyWidths(natural), Lead: leftover * 0.5}
	case node.AlignEnd:
		return Placement{Widths: copyWidths(natural), Lead: leftover}
	default: // AlignStart
		return Placement{Widths: copyWidths(natural)}
	}
}

// shrink scales the non-fixed children proportionally into whatever space
// the fixed children leave over. Fixed children keep their width verbatim;
// if they alone overflow the container, the flexible ones collapse to zero
// and the overflow is clipped downstream.
func shrink(natural []float64, fixed []bool, fixedTotal, available float64) []float64 {
	n := len(natural)
	widths := make([]float64, n)

	flexTotal := 0.0
	lastFlex := -1
	for i, w := range natural {
		if fixed[i] {
			widths[i] = w
			continue
		}
		flexTotal += w
		lastFlex = i
	}
	if lastFlex < 0 {
		// Every child is fixed: nothing participates in the shrink.
		return widths
	}

	flexSpace := math.Max(0, available-fixedTotal)
	if flexTotal <= 0 {
		return widths
	}

	carry := 0.0
	pos := 0.0
	for i := range natural {
		if fixed[i] || i == lastFlex {
			continue
		}
		exact := carry + natural[i]*flexSpace/flexTotal
		w := math.Floor(exact)
		carry = exact - w
		widths[i] = w
		pos += w
	}
	// The last flexible item absorbs all rounding slack so the flexible
	// widths sum to flexSpace exactly.
	widths[lastFlex] = flexSpace - pos
	return widths
}

// stretch grows the flexible children to fill the leftover space
// proportionally to their natural widths, with the same carry rule. With
// no flexible children the leftover goes into the inter-item gaps instead
// of into any single child.
func stretch(natural []float64, fixed []bool, fixedTotal, available, leftover float64) Placement {
	n := len(natural)
	widths := make([]float64, n)

	flexTotal := 0.0
	lastFlex := -1
	for i, w := range natural {
		if fixed[i] {
			widths[i] = w
			continue
		}
		flexTotal += w
		lastFlex = i
	}

	if lastFlex < 0 {
		// A rigid run: spread the leftover into the gaps, or center a
		// single rigid child.
		placement := Placement{Widths: widths}
		if n > 1 {
			placement.ExtraGap = leftover / float64(n-1)
		} else {
			placement.Lead = leftover * 0.5
		}
		return placement
	}

	flexSpace := available - fixedTotal
	carry := 0.0
	pos := 0.0
	for i := range natural {
		if fixed[i] || i == lastFlex {
			continue
		}
		var exact float64
		if flexTotal > 0 {
			exact = carry + natural[i]*flexSpace/flexTotal
		} else {
			// All flexible children have zero natural width: share evenly.
			exact = carry + flexSpace/float64(countFlex(fixed))
		}
		w := math.Floor(exact)
		carry = exact - w
		widths[i] = w
		pos += w
	}
	widths[lastFlex] = flexSpace - pos
	return Placement{Widths: widths}
}

// SplitWidths resolves the proportional split mode: the first child gets
// factor*available and the remaining children evenly share the rest. With
// a single child the factor is ignored and the child takes the full width.
func SplitWidths(factor float64, n int, available float64) []float64 {
	if n <= 0 {
		return nil
	}
	widths := make([]float64, n)
	if n == 1 {
		widths[0] = available
		return widths
	}
	factor = math.Min(math.Max(factor, 0), 1)
	widths[0] = factor * available
	share := (1 - factor) * available / float64(n-1)
	for i := 1; i < n; i++ {
		widths[i] = share
	}
	return widths
}

func copyWidths(natural []float64) []float64 {
	widths := make([]float64, len(natural))
	copy(widths, natural)
	return widths
}

func countFlex(fixed []bool) int {
	n := 0
	for _, f := range fixed {
		if !f {
			n++
		}
	}
	return n
}
