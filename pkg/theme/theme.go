// Package theme holds the visual constants of a panel: spacing derived
// from a base unit, the palette, and per-control styling. Themes load from
// TOML files and fall back to the built-in dark default.
package theme

import (
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/render"
)

// Theme is the complete styling of one panel. Spacing values are in
// pixels; the base unit also drives the border-stitching snap threshold.
type Theme struct {
	// BaseUnit is the spacing quantum controls are sized against.
	BaseUnit float64 `toml:"base_unit"`
	// Gap is the default inter-child spacing of containers.
	Gap float64 `toml:"gap"`
	// Padding is the default container padding on every side.
	Padding float64 `toml:"padding"`
	// CornerRadius is the rounding applied to unmasked corners.
	CornerRadius float64 `toml:"corner_radius"`
	// FontSize is the default text size.
	FontSize float64 `toml:"font_size"`

	Palette  Palette     `toml:"palette"`
	Button   ButtonStyle `toml:"button"`
	Slider   SliderStyle `toml:"slider"`
	Checkbox ToggleStyle `toml:"checkbox"`
	Field    FieldStyle  `toml:"field"`
}

// Palette is the shared color set controls draw from.
type Palette struct {
	Background render.Color `toml:"background"`
	Surface    render.Color `toml:"surface"`
	Text       render.Color `toml:"text"`
	TextDim    render.Color `toml:"text_dim"`
	Accent     render.Color `toml:"accent"`
	Outline    render.Color `toml:"outline"`
}

// ButtonStyle styles button and choice controls.
type ButtonStyle struct {
	Fill        render.Color `toml:"fill"`
	FillHover   render.Color `toml:"fill_hover"`
	FillPressed render.Color `toml:"fill_pressed"`
	Label       render.Color `toml:"label"`
}

// SliderStyle styles slider tracks and knobs.
type SliderStyle struct {
	Track render.Color `toml:"track"`
	Fill  render.Color `toml:"fill"`
	Knob  render.Color `toml:"knob"`
}

// ToggleStyle styles checkbox controls.
type ToggleStyle struct {
	Box   render.Color `toml:"box"`
	Check render.Color `toml:"check"`
}

// FieldStyle styles text-entry fields.
type FieldStyle struct {
	Fill   render.Color `toml:"fill"`
	Text   render.Color `toml:"text"`
	Cursor render.Color `toml:"cursor"`
}

// ControlHeight is the standard height of a single-row control.
func (t *Theme) ControlHeight() float64 {
	return t.BaseUnit * 2
}

// Insets returns the default container padding as insets.
func (t *Theme) Insets() geometry.Insets {
	return geometry.UniformInsets(t.Padding)
}

// Default returns the built-in dark theme.
func Default() *Theme {
	return &Theme{
		BaseUnit:     10,
		Gap:          4,
		Padding:      6,
		CornerRadius: 4,
		FontSize:     13,
		Palette: Palette{
			Background: render.RGB(0x1e, 0x1e, 0x22),
			Surface:    render.RGB(0x2a, 0x2a, 0x30),
			Text:       render.RGB(0xe8, 0xe8, 0xec),
			TextDim:    render.RGB(0x9a, 0x9a, 0xa2),
			Accent:     render.RGB(0x4c, 0x8f, 0xe0),
			Outline:    render.RGB(0x44, 0x44, 0x4c),
		},
		Button: ButtonStyle{
			Fill:        render.RGB(0x3a, 0x3a, 0x42),
			FillHover:   render.RGB(0x46, 0x46, 0x50),
			FillPressed: render.RGB(0x2e, 0x2e, 0x36),
			Label:       render.RGB(0xe8, 0xe8, 0xec),
		},
		Slider: SliderStyle{
			Track: render.RGB(0x33, 0x33, 0x3a),
			Fill:  render.RGB(0x4c, 0x8f, 0xe0),
			Knob:  render.RGB(0xd0, 0xd0, 0xd8),
		},
		Checkbox: ToggleStyle{
			Box:   render.RGB(0x3a, 0x3a, 0x42),
			Check: render.RGB(0x4c, 0x8f, 0xe0),
		},
		Field: FieldStyle{
			Fill:   render.RGB(0x26, 0x26, 0x2c),
			Text:   render.RGB(0xe8, 0xe8, 0xec),
			Cursor: render.RGB(0x4c, 0x8f, 0xe0),
		},
	}
}
