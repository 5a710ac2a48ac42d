package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-plank/plank/pkg/errors"
)

// Parse decodes a TOML theme over the built-in default, so a file only
// needs to name the values it overrides. Colors are 0xAARRGGBB integers.
func Parse(data []byte) (*Theme, error) {
	t := Default()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	return t, nil
}

// Load reads a TOML theme file. A missing or malformed file is reported
// and the default theme is returned, so a bad user theme never prevents a
// panel from opening.
func Load(path string) *Theme {
	data, err := os.ReadFile(path)
	if err != nil {
		errors.Report(errors.New("theme.Load", errors.KindStore, err))
		return Default()
	}
	t, err := Parse(data)
	if err != nil {
		errors.Report(errors.New("theme.Load", errors.KindStore, err))
		return Default()
	}
	return t
}
