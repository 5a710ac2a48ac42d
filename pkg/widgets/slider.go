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

// Slider is a bound numeric control dragged along its width. Press and
// every subsequent move write the value at the pointer position back
// through the binding path.
type Slider struct {
	// Key is the stable identity across rebuilds.
	Key string
	// Path is the bound numeric value in the source graph.
	Path string
	// Min and Max span the value range across the slider width.
	Min, Max float64
}

// Build creates the layout node, binding and the draggable hit region.
func (s Slider) Build(p *panel.Panel) *node.Widget {
	th := p.Theme()
	w := node.NewWidget(node.KindSlider, s.Key)

	w.MeasureFunc = func(text.Metrics) geometry.Size {
		return geometry.Size{Width: th.BaseUnit * 10, Height: th.ControlHeight()}
	}

	w.DrawFunc = func(c render.Canvas, frame geometry.Rect) {
		trackHeight := th.BaseUnit * 0.4
		track := geometry.RectFromLTWH(frame.Left,
			frame.Top+(frame.Height()-trackHeight)/2, frame.Width(), trackHeight)
		c.DrawRect(track, th.Slider.Track)

		t := s.fraction(w.Value)
		if t > 0 {
			filled := track
			filled.Right = track.Left + track.Width()*t
			c.DrawRect(filled, th.Slider.Fill)
		}
		knob := th.BaseUnit
		knobRect := geometry.RectFromLTWH(
			frame.Left+(frame.Width()-knob)*t,
			frame.Top+(frame.Height()-knob)/2, knob, knob)
		c.DrawRoundedRect(knobRect, knob/2, geometry.AllCorners(), th.Slider.Knob)
	}

	var bnd *binding.PropertyBinding
	var hit *input.HitRegion
	writeAt := func(x float64) {
		src := p.Source()
		if src == nil || !w.Enabled() || hit.Bounds.Width() <= 0 {
			return
		}
		t := clamp((x-hit.Bounds.Left)/hit.Bounds.Width(), 0, 1)
		bnd.SetValue(src, s.Min+t*(s.Max-s.Min))
	}

	h := p.Arena().Add(w)
	hit = &input.HitRegion{
		Enabled:   true,
		Draggable: true,
		Owner:     h,
		Key:       w.Key(),
		Callbacks: input.Callbacks{
			OnPress: func(x, y float64) { writeAt(x) },
			OnDrag:  func(dx, dy, x, y float64) { writeAt(x) },
		},
	}
	p.Registry().Register(hit)
	bnd = &binding.PropertyBinding{Path: s.Path, Owner: h}
	p.Bind(bnd)
	return w
}

// fraction maps the bound value into [0, 1] across the slider range.
func (s Slider) fraction(value any) float64 {
	if s.Max <= s.Min {
		return 0
	}
	v, ok := value.(float64)
	if !ok {
		return 0
	}
	return clamp((v-s.Min)/(s.Max-s.Min), 0, 1)
}
