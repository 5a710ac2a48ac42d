package widgets

import (
	"github.com/go-plank/plank/pkg/binding"
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/input"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/panel"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/text"
)

// Choice selects one of a dynamically enumerated option list. A click
// opens a transient menu entry in the panel's menu table; the host pops
// the actual menu and commits the chosen index, which writes back through
// the binding path. The option list is recomputed every sync and a shape
// change triggers a relayout.
type Choice struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Path is the bound selection (an index or a display name).
	Path string
	// MenuID identifies this control's popup in the menu table.
	MenuID int
	// Choices enumerates the current options.
	Choices func() []string
}

// Build creates the layout node, binding and hit region.
func (ch Choice) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindChoice, ch.Key)
	w.SetCanAlign(true)
	if ch.Choices != nil {
		w.Choices = ch.Choices()
	}

	lineHeight := p.Metrics().MeasureText("M", th.FontSize).Height
	arrow := th.BaseUnit
	w.MeasureFunc = func(m text.Metrics) geometry.Size {
		widest := 0.0
		for _, option := range w.Choices {
			if width := m.MeasureText(option, th.FontSize).Width; width > widest {
				widest = width
			}
		}
		return geometry.Size{
			Width:  widest + arrow + th.Padding*2,
			Height: th.ControlHeight(),
		}
	}

	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		fill := th.Button.Fill
		if w.Hovered {
			fill = th.Button.FillHover
		}
		c.DrawRoundedRect(frame, th.CornerRadius, w.Corners(), fill)
		inner := frame
		inner.Left += th.Padding
		inner.Right -= th.Padding + arrow
		shown := p.Metrics().TruncateWithEllipsis(w.Text, th.FontSize, inner.Width())
		c.DrawTextClipped(shown, textBaseline(inner, lineHeight), th.FontSize, th.Palette.Text, inner)
	}

	var bnd *binding.PropertyBinding
	var h node.Handle
	h = register(p, w, false, input.Callbacks{
		OnClick: func() {
			if !w.Enabled() {
				return
			}
			p.Menus().Open(ch.MenuID, h, func(index int) {
				if src := p.Source(); src != nil {
					bnd.SetValue(src, index)
				}
				p.Invalidate()
			})
		},
	})
	bnd = &binding.PropertyBinding{Path: ch.Path, Owner: h, ResolveChoices: ch.Choices}
	p.Bind(bnd)
	return w
}
