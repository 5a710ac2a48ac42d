package widgets

import (
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/input"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/panel"
)

// register adds the widget to the panel's arena and hit registry and
// returns its handle. The region is keyed by the widget key so hover
// carries across rebuilds.
func register(p *panel.Panel, w *node.Widget, draggable bool, cb input.Callbacks) node.Handle {
	h := p.Arena().Add(w)
	p.Registry().Register(&input.HitRegion{
		Enabled:   true,
		Draggable: draggable,
		Owner:     h,
		Key:       w.Key(),
		Callbacks: cb,
	})
	return h
}

// textBaseline returns the baseline-left origin that vertically centers a
// line of the given height in frame.
func textBaseline(frame geometry.Rect, lineHeight float64) geometry.Offset {
	return geometry.Offset{
		X: frame.Left,
		Y: frame.Top + (frame.Height()+lineHeight)/2,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
