package widgets

import (
	"github.com/go-plank/plank/pkg/binding"
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/panel"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/text"
)

// Swatch is a non-interactive color chip. The displayed color follows
// the bound value; an unresolved binding shows the surface color.
//
// Example:
//
//	widgets.Swatch{Key: "tint", Path: "node.tint"}.Build(p)
type Swatch struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Path binds the displayed color to the source graph.
	Path string
}

// Build creates the layout node and attaches the binding.
func (s Swatch) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindColor, s.Key)

	w.MeasureFunc = func(m text.Metrics) geometry.Size {
		side := th.ControlHeight()
		return geometry.Size{Width: side, Height: side}
	}

	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		fill := th.Palette.Surface
		if col, ok := w.Value.(render.Color); ok {
			fill = col
		}
		c.DrawRoundedRect(frame, th.CornerRadius, w.Corners(), fill)
		c.DrawRoundedRectOutline(frame, th.CornerRadius, w.Corners(), th.Palette.Outline)
	}

	h := p.Arena().Add(w)
	if s.Path != "" {
		p.Bind(&binding.PropertyBinding{Path: s.Path, Owner: h})
	}
	return w
}
