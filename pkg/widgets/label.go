package widgets

import (
	"github.com/go-plank/plank/pkg/binding"
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/panel"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/text"
)

// Label is a non-interactive text line. With a Path it displays the bound
// value, refreshed every sync; otherwise it shows the static Text.
//
// Example:
//
//	widgets.Label{Key: "name", Path: "node.name"}.Build(p)
//	widgets.LabelOf("hint", "drag to reorder").Build(p)
type Label struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Path binds the displayed text to the source graph. Empty keeps Text.
	Path string
	// Text is the static content when unbound.
	Text string
	// Wrap lets the label break into multiple lines at its distributed
	// width instead of truncating.
	Wrap bool
	// Dim renders with the secondary text color.
	Dim bool
}

// LabelOf returns a static label.
func LabelOf(key, text string) Label {
	return Label{Key: key, Text: text}
}

// Build creates the layout node and attaches the binding, if any.
func (l Label) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindLabel, l.Key)
	w.Text = l.Text

	lineHeight := p.Metrics().MeasureText("M", th.FontSize).Height
	w.MeasureFunc = func(m text.Metrics) geometry.Size {
		size := m.MeasureText(w.Text, th.FontSize)
		size.Height = lineHeight
		return size
	}
	if l.Wrap {
		w.WidthDependentHeight = true
		w.HeightForWidth = func(m text.Metrics, width float64) float64 {
			lines := m.Wrap(w.Text, th.FontSize, width)
			if len(lines) == 0 {
				return lineHeight
			}
			return float64(len(lines)) * lineHeight
		}
	}

	color := th.Palette.Text
	if l.Dim {
		color = th.Palette.TextDim
	}
	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		if l.Wrap {
			lines := p.Metrics().Wrap(w.Text, th.FontSize, frame.Width())
			for i, line := range lines {
				pos := geometry.Offset{X: frame.Left, Y: frame.Top + float64(i+1)*lineHeight}
				c.DrawTextClipped(line, pos, th.FontSize, color, frame)
			}
			return
		}
		c.DrawTextClipped(w.Text, textBaseline(frame, lineHeight), th.FontSize, color, frame)
	}

	h := p.Arena().Add(w)
	if l.Path != "" {
		p.Bind(&binding.PropertyBinding{Path: l.Path, Owner: h})
	}
	return w
}
