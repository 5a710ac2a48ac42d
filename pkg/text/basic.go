package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-plank/plank/pkg/geometry"
)

const ellipsis = "…"

// BasicMetrics measures text with the fixed-advance basicfont face from
// golang.org/x/image. It is the fallback used when the host does not
// provide a metrics collaborator; the numbers are approximate but stable,
// which is all the layout passes need.
type BasicMetrics struct {
	face font.Face
}

// NewBasicMetrics creates the fallback measurer.
func NewBasicMetrics() *BasicMetrics {
	return &BasicMetrics{face: basicfont.Face7x13}
}

// faceSize is the nominal pixel size of basicfont.Face7x13.
const faceSize = 13.0

// scale converts a measurement at the fixed face size to the requested size.
func scale(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size / faceSize
}

// MeasureText returns the bounding size of a single line.
func (b *BasicMetrics) MeasureText(s string, size float64) geometry.Size {
	advance := font.MeasureString(b.face, s)
	m := b.face.Metrics()
	k := scale(size)
	return geometry.Size{
		Width:  fixedToFloat(advance) * k,
		Height: fixedToFloat(m.Height) * k,
	}
}

// Wrap greedily packs words into lines no wider than maxWidth. A word
// wider than maxWidth gets its own line rather than being split.
func (b *BasicMetrics) Wrap(s string, size float64, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if b.MeasureText(candidate, size).Width <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// TruncateWithEllipsis shortens the string to fit maxWidth.
func (b *BasicMetrics) TruncateWithEllipsis(s string, size float64, maxWidth float64) string {
	if b.MeasureText(s, size).Width <= maxWidth {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if b.MeasureText(candidate, size).Width <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
