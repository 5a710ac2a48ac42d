// Package render declares the drawing-backend contract. The core never
// rasterizes anything itself: the host supplies a Canvas and the pipeline
// replays the arranged tree into it once per tick, after layout is done,
// so a backend failure can never corrupt layout state.
package render

import "github.com/go-plank/plank/pkg/geometry"

// Canvas is the primitive drawing surface provided by the host.
// All coordinates are absolute panel coordinates.
type Canvas interface {
	// DrawRect fills a rectangle.
	DrawRect(rect geometry.Rect, color Color)

	// DrawRoundedRect fills a rectangle rounding only the corners set in
	// the mask. radius is the corner radius in pixels.
	DrawRoundedRect(rect geometry.Rect, radius float64, mask geometry.CornerMask, color Color)

	// DrawRoundedRectOutline strokes the rounded rectangle instead of
	// filling it.
	DrawRoundedRectOutline(rect geometry.Rect, radius float64, mask geometry.CornerMask, color Color)

	// DrawText draws a single line of text with its baseline-left origin
	// at position.
	DrawText(s string, position geometry.Offset, size float64, color Color)

	// DrawTextClipped draws text clipped to bounds.
	DrawTextClipped(s string, position geometry.Offset, size float64, color Color, bounds geometry.Rect)

	// DrawTextShadowed draws text with a backend-defined drop shadow.
	DrawTextShadowed(s string, position geometry.Offset, size float64, color Color)

	// DrawIcon draws the backend icon with the given id centered in rect.
	DrawIcon(icon int, rect geometry.Rect, color Color)
}

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns the color channels as floats in [0, 1].
func (c Color) RGBAF() (r, g, b, a float64) {
	r = float64((c>>16)&0xFF) / 255
	g = float64((c>>8)&0xFF) / 255
	b = float64(c&0xFF) / 255
	a = float64((c>>24)&0xFF) / 255
	return
}

// WithAlpha returns the color with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
