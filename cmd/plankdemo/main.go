// Command plankdemo builds a small bound panel and runs its tick pipeline
// against a tracing canvas, printing every draw call. It exists to
// exercise the public API end to end without a real host: an in-memory
// object graph stands in for the plugin state, and simulated pointer
// events drive the interaction machine.
package main

import (
	"flag"
	"fmt"

	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/panel"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/theme"
	"github.com/go-plank/plank/pkg/widgets"
)

// traceCanvas prints draw calls instead of rasterizing.
type traceCanvas struct{ quiet bool }

func (c *traceCanvas) logf(format string, args ...any) {
	if !c.quiet {
		fmt.Printf(format+"\n", args...)
	}
}

func (c *traceCanvas) DrawRect(r geometry.Rect, color render.Color) {
	c.logf("rect   (%.0f,%.0f %.0fx%.0f) #%08X", r.Left, r.Top, r.Width(), r.Height(), uint32(color))
}

func (c *traceCanvas) DrawRoundedRect(r geometry.Rect, radius float64, mask geometry.CornerMask, color render.Color) {
	c.logf("rrect  (%.0f,%.0f %.0fx%.0f) r=%.1f #%08X", r.Left, r.Top, r.Width(), r.Height(), radius, uint32(color))
}

func (c *traceCanvas) DrawRoundedRectOutline(r geometry.Rect, radius float64, mask geometry.CornerMask, color render.Color) {
	c.logf("rrect~ (%.0f,%.0f %.0fx%.0f) r=%.1f #%08X", r.Left, r.Top, r.Width(), r.Height(), radius, uint32(color))
}

func (c *traceCanvas) DrawText(s string, pos geometry.Offset, size float64, color render.Color) {
	c.logf("text   %q at (%.0f,%.0f)", s, pos.X, pos.Y)
}

func (c *traceCanvas) DrawTextClipped(s string, pos geometry.Offset, size float64, color render.Color, bounds geometry.Rect) {
	c.logf("text   %q at (%.0f,%.0f)", s, pos.X, pos.Y)
}

func (c *traceCanvas) DrawTextShadowed(s string, pos geometry.Offset, size float64, color render.Color) {
	c.logf("text*  %q at (%.0f,%.0f)", s, pos.X, pos.Y)
}

func (c *traceCanvas) DrawIcon(icon int, r geometry.Rect, color render.Color) {
	c.logf("icon   %d in (%.0f,%.0f %.0fx%.0f)", icon, r.Left, r.Top, r.Width(), r.Height())
}

// graph is the demo's stand-in for the host's mutable object graph.
type graph map[string]any

func (g graph) Get(path string) (any, bool) {
	v, ok := g[path]
	return v, ok
}

func (g graph) Set(path string, value any) bool {
	if _, ok := g[path]; !ok {
		return false
	}
	g[path] = value
	return true
}

func buildDemo(p *panel.Panel) *node.Container {
	th := p.Theme()

	root := node.NewContainer(node.AxisColumn, "root")
	root.Padding = th.Insets()
	root.Gap = th.Gap
	root.Aligning = true

	root.Add(widgets.Label{Key: "title", Path: "comp.name"}.Build(p))
	root.Add(widgets.Slider{Key: "threshold", Path: "comp.threshold", Min: -60, Max: 0}.Build(p))
	root.Add(widgets.Checkbox{Key: "bypass", Path: "comp.bypass", Caption: "Bypass"}.Build(p))
	root.Add(widgets.Swatch{Key: "tint", Path: "comp.tint"}.Build(p))
	root.Add(widgets.Choice{
		Key:     "ratio",
		Path:    "comp.ratio",
		MenuID:  1,
		Choices: func() []string { return []string{"2:1", "4:1", "8:1", "limit"} },
	}.Build(p))

	// A tight-gap stretch row of buttons that stitch into one block.
	row := node.NewContainer(node.AxisRow, "presets")
	row.Alignment = node.AlignStretch
	row.GapMode = node.GapTight
	row.Aligning = true
	for _, name := range []string{"soft", "punch", "brick"} {
		name := name
		row.Add(widgets.ButtonOf("preset-"+name, name, func() {
			fmt.Printf("preset %s applied\n", name)
		}).Build(p))
	}
	root.Add(row)

	return root
}

func main() {
	ticks := flag.Int("ticks", 3, "pipeline passes to run")
	themePath := flag.String("theme", "", "optional TOML theme file")
	quiet := flag.Bool("quiet", false, "suppress draw tracing")
	flag.Parse()

	th := theme.Default()
	if *themePath != "" {
		th = theme.Load(*themePath)
	}

	state := graph{
		"comp.name":      "Compressor",
		"comp.threshold": -18.0,
		"comp.bypass":    false,
		"comp.tint":      uint32(0xFF3A7BD5),
		"comp.ratio":     1,
	}

	p := panel.New("plankdemo", panel.Config{
		Theme:  th,
		Source: state,
		Store:  panel.OpenFileStore("plankdemo-geometry.yaml"),
		Build:  buildDemo,
	})

	canvas := &traceCanvas{quiet: *quiet}
	for i := 0; i < *ticks; i++ {
		fmt.Printf("-- tick %d --\n", i+1)
		p.Tick(canvas)

		// Poke the panel between ticks the way a host would.
		switch i {
		case 0:
			b := p.Bounds()
			p.PointerMove(b.Left+40, b.Top+40)
		case 1:
			state["comp.threshold"] = -6.0
		}
	}

	p.RequestClose()
	p.Tick(nil)
	fmt.Println("panel closed:", p.Closed())
}
