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

// Field displays a bound text value in an editable-looking well. Editing
// itself is host territory: a click fires OnFocus so the host can attach
// its keyboard handling, and committed text flows back through Commit.
type Field struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Path is the bound text in the source graph.
	Path string
	// OnFocus fires when the field is clicked.
	OnFocus func()
}

// Build creates the layout node, binding and hit region.
func (f Field) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindField, f.Key)

	lineHeight := p.Metrics().MeasureText("M", th.FontSize).Height
	w.MeasureFunc = func(text.Metrics) geometry.Size {
		return geometry.Size{Width: th.BaseUnit * 12, Height: th.ControlHeight()}
	}

	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		c.DrawRoundedRect(frame, th.CornerRadius, w.Corners(), th.Field.Fill)
		c.DrawRoundedRectOutline(frame, th.CornerRadius, w.Corners(), th.Palette.Outline)
		inner := frame
		inner.Left += th.Padding
		inner.Right -= th.Padding
		shown := p.Metrics().TruncateWithEllipsis(w.Text, th.FontSize, inner.Width())
		c.DrawTextClipped(shown, textBaseline(inner, lineHeight), th.FontSize, th.Field.Text, inner)
	}

	h := register(p, w, false, input.Callbacks{OnClick: f.OnFocus})
	p.Bind(&binding.PropertyBinding{Path: f.Path, Owner: h})
	return w
}

// Commit writes host-edited text back through the field's path.
func (f Field) Commit(p *panel.Panel, value string) {
	if src := p.Source(); src != nil {
		b := binding.PropertyBinding{Path: f.Path}
		b.SetValue(src, value)
	}
}
