package widgets

import (
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/input"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/panel"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/text"
)

// Button is a clickable control with hover and pressed styling. Buttons
// opt into border stitching, so adjacent buttons in a tight-gap group
// fuse into one visual block.
//
// Example:
//
//	widgets.ButtonOf("save", "Save", onSave).Build(p)
type Button struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Caption is the label text.
	Caption string
	// OnTap fires after a release inside the button.
	OnTap func()
	// FixedWidth pins the width, exempting the button from flexible
	// growth and shrink. Zero keeps the natural width.
	FixedWidth float64
}

// ButtonOf returns a button with the given caption and tap handler.
func ButtonOf(key, caption string, onTap func()) Button {
	return Button{Key: key, Caption: caption, OnTap: onTap}
}

// Build creates the layout node and registers its hit region.
func (b Button) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindButton, b.Key)
	w.Text = b.Caption
	w.SetCanAlign(true)
	if b.FixedWidth > 0 {
		w.SetFixedWidth(b.FixedWidth)
	}

	lineHeight := p.Metrics().MeasureText("M", th.FontSize).Height
	w.MeasureFunc = func(m text.Metrics) geometry.Size {
		size := m.MeasureText(w.Text, th.FontSize)
		return geometry.Size{
			Width:  size.Width + th.Padding*2,
			Height: th.ControlHeight(),
		}
	}

	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		fill := th.Button.Fill
		switch {
		case !w.Enabled():
			fill = th.Palette.Surface
		case w.Pressed:
			fill = th.Button.FillPressed
		case w.Hovered:
			fill = th.Button.FillHover
		}
		c.DrawRoundedRect(frame, th.CornerRadius, w.Corners(), fill)
		caption := p.Metrics().TruncateWithEllipsis(w.Text, th.FontSize, frame.Width()-th.Padding*2)
		width := p.Metrics().MeasureText(caption, th.FontSize).Width
		pos := geometry.Offset{
			X: frame.Left + (frame.Width()-width)/2,
			Y: textBaseline(frame, lineHeight).Y,
		}
		c.DrawTextClipped(caption, pos, th.FontSize, th.Button.Label, frame)
	}

	register(p, w, false, input.Callbacks{OnClick: b.OnTap})
	return w
}
