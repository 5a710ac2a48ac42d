// Package text declares the content-metrics collaborator consumed during
// the measure pass, plus a fixed-advance fallback so layout stays usable
// when the host provides no shaping backend.
package text

import "github.com/go-plank/plank/pkg/geometry"

// Metrics is the synchronous, side-effect-free measurement contract the
// host supplies. All widths and heights are in panel pixels.
type Metrics interface {
	// MeasureText returns the bounding size of a single line at the given
	// font size.
	MeasureText(s string, size float64) geometry.Size

	// Wrap breaks the string into lines no wider than maxWidth.
	Wrap(s string, size float64, maxWidth float64) []string

	// TruncateWithEllipsis shortens the string to fit maxWidth, replacing
	// the tail with an ellipsis when it does not fit.
	TruncateWithEllipsis(s string, size float64, maxWidth float64) string
}
