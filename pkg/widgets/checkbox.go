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

// Checkbox is a bound boolean toggle with a caption. A click writes the
// negated value back through the binding path.
type Checkbox struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Path is the bound boolean in the source graph.
	Path string
	// Caption is drawn to the right of the box.
	Caption string
}

// Build creates the layout node, binding and hit region.
func (cb Checkbox) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindCheckbox, cb.Key)
	w.Text = cb.Caption

	box := th.BaseUnit * 1.4
	lineHeight := p.Metrics().MeasureText("M", th.FontSize).Height
	w.MeasureFunc = func(m text.Metrics) geometry.Size {
		caption := m.MeasureText(w.Text, th.FontSize)
		return geometry.Size{
			Width:  box + th.Gap + caption.Width,
			Height: th.ControlHeight(),
		}
	}

	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		boxRect := geometry.RectFromLTWH(frame.Left, frame.Top+(frame.Height()-box)/2, box, box)
		c.DrawRoundedRect(boxRect, th.CornerRadius/2, geometry.AllCorners(), th.Checkbox.Box)
		if on, _ := w.Value.(bool); on {
			inset := box * 0.25
			mark := geometry.RectFromLTWH(boxRect.Left+inset, boxRect.Top+inset,
				box-inset*2, box-inset*2)
			c.DrawRect(mark, th.Checkbox.Check)
		}
		color := th.Palette.Text
		if !w.Enabled() {
			color = th.Palette.TextDim
		}
		pos := geometry.Offset{X: frame.Left + box + th.Gap, Y: textBaseline(frame, lineHeight).Y}
		c.DrawTextClipped(w.Text, pos, th.FontSize, color, frame)
	}

	var bnd *binding.PropertyBinding
	h := register(p, w, false, input.Callbacks{
		OnClick: func() {
			src := p.Source()
			if src == nil || !w.Enabled() {
				return
			}
			on, _ := w.Value.(bool)
			bnd.SetValue(src, !on)
		},
	})
	bnd = &binding.PropertyBinding{Path: cb.Path, Owner: h}
	p.Bind(bnd)
	return w
}
