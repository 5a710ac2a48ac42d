// Package panel runs the per-tick pipeline of one plugin panel: binding
// sync, conditional measure and arrange, border stitching, hit-region
// refresh, and the isolated draw replay. The host drives it with a
// periodic tick and pointer callbacks; nothing here blocks or spawns.
package panel

import (
	"github.com/go-plank/plank/pkg/align"
	"github.com/go-plank/plank/pkg/binding"
	"github.com/go-plank/plank/pkg/engine"
	"github.com/go-plank/plank/pkg/errors"
	"github.com/go-plank/plank/pkg/geometry"
	"github.com/go-plank/plank/pkg/input"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/render"
	"github.com/go-plank/plank/pkg/text"
	"github.com/go-plank/plank/pkg/theme"
)

// BuildFunc assembles a fresh tree for the panel. It runs once at first
// tick and again after every RequestRebuild; widgets, regions and
// bindings created in earlier builds are discarded wholesale.
type BuildFunc func(p *Panel) *node.Container

// Config carries the host collaborators. Every field except Build is
// optional: a nil theme gets the default, nil metrics get the fallback
// font, a nil source skips binding sync, a nil store skips persistence.
type Config struct {
	Theme   *theme.Theme
	Metrics text.Metrics
	Source  binding.Source
	Store   GeometryStore
	Build   BuildFunc
}

// Panel owns one tree root and everything scoped to it: the arena, the
// hit-test registry with its interaction state, the menu table and the
// resolver cache. Panels are never shared across trees or threads.
type Panel struct {
	id    string
	theme *theme.Theme

	source binding.Source
	store  GeometryStore
	build  BuildFunc

	engine   *engine.Engine
	arena    *node.Arena
	registry *input.Registry
	menus    *input.MenuTable
	cache    *binding.ResolverCache
	bindings []*binding.PropertyBinding

	root   *node.Container
	bounds geometry.Rect
	epoch  uint64

	needsLayout  bool
	needsRebuild bool
	closing      bool
	closed       bool
}

// DefaultGeometry is the placement of a panel never seen before.
var DefaultGeometry = Geometry{X: 80, Y: 80, Width: 420, Height: 300}

// New creates a panel with the given stable identifier, restoring its
// last persisted placement when the store knows it.
func New(id string, cfg Config) *Panel {
	t := cfg.Theme
	if t == nil {
		t = theme.Default()
	}
	arena := node.NewArena(64)
	p := &Panel{
		id:       id,
		theme:    t,
		source:   cfg.Source,
		store:    cfg.Store,
		build:    cfg.Build,
		engine:   engine.New(cfg.Metrics),
		arena:    arena,
		registry: input.NewRegistry(arena),
		menus:    input.NewMenuTable(arena),
		cache:    binding.NewResolverCache(),
	}
	g := DefaultGeometry
	if cfg.Store != nil {
		if stored, ok := cfg.Store.Load(id); ok {
			g = stored
		}
	}
	p.bounds = geometry.RectFromLTWH(g.X, g.Y, g.Width, g.Height)
	return p
}

// Theme returns the panel's theme.
func (p *Panel) Theme() *theme.Theme { return p.theme }

// Metrics returns the content-metrics collaborator.
func (p *Panel) Metrics() text.Metrics { return p.engine.Metrics() }

// Arena returns the handle arena of the current tree generation.
func (p *Panel) Arena() *node.Arena { return p.arena }

// Registry returns the panel's hit-test registry.
func (p *Panel) Registry() *input.Registry { return p.registry }

// Menus returns the transient menu table.
func (p *Panel) Menus() *input.MenuTable { return p.menus }

// Source returns the bound object graph, nil when the panel is unbound.
func (p *Panel) Source() binding.Source { return p.source }

// Bind attaches a property binding for per-tick sync. Bindings belong to
// the current tree generation and are dropped on rebuild.
func (p *Panel) Bind(b *binding.PropertyBinding) {
	p.bindings = append(p.bindings, b)
}

// Invalidate schedules a fresh measure and arrange on the next tick.
func (p *Panel) Invalidate() { p.needsLayout = true }

// RequestRebuild schedules a full tree rebuild on the next tick. Hover is
// carried over by stable key so fast-changing content does not flicker.
func (p *Panel) RequestRebuild() { p.needsRebuild = true }

// RequestClose flags the panel for teardown at the start of the next tick.
func (p *Panel) RequestClose() { p.closing = true }

// Closed reports whether the panel has been torn down.
func (p *Panel) Closed() bool { return p.closed }

// Bounds returns the panel rectangle in host coordinates.
func (p *Panel) Bounds() geometry.Rect { return p.bounds }

// Move repositions the panel and persists the new placement.
func (p *Panel) Move(x, y float64) {
	p.bounds = geometry.RectFromLTWH(x, y, p.bounds.Width(), p.bounds.Height())
	p.needsLayout = true
	p.persist()
}

// Resize changes the panel size, persists it and schedules a relayout.
func (p *Panel) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	p.bounds = geometry.RectFromLTWH(p.bounds.Left, p.bounds.Top, width, height)
	p.needsLayout = true
	p.persist()
}

func (p *Panel) persist() {
	if p.store == nil {
		return
	}
	g := Geometry{
		X:      p.bounds.Left,
		Y:      p.bounds.Top,
		Width:  p.bounds.Width(),
		Height: p.bounds.Height(),
	}
	if err := p.store.Save(p.id, g); err != nil {
		if perr, ok := err.(*errors.PlankError); ok {
			errors.Report(perr)
		} else {
			errors.Report(errors.New("panel.persist", errors.KindStore, err))
		}
	}
}

// Tick runs one pipeline pass: close check, rebuild if scheduled, binding
// sync, conditional layout with border stitching, hit-region refresh and
// the draw replay. canvas may be nil when the host only wants state
// advanced. It reports false once the panel has been torn down.
func (p *Panel) Tick(canvas render.Canvas) bool {
	if p.closing {
		p.teardown()
		return false
	}
	if p.closed {
		return false
	}

	p.epoch++
	p.cache.BeginTick(p.epoch)

	if p.root == nil || p.needsRebuild {
		p.rebuild()
	}

	if p.source != nil {
		for _, b := range p.bindings {
			res := b.Sync(p.cache, p.source, p.arena)
			if res.Changed || res.Relayout {
				p.needsLayout = true
			}
		}
	}

	if p.needsLayout && p.root != nil {
		p.engine.Layout(p.root, geometry.Tight(p.bounds.Size()),
			geometry.Offset{X: p.bounds.Left, Y: p.bounds.Top})
		align.Pass(p.root, align.Threshold(p.theme.BaseUnit))
		p.needsLayout = false
	}

	p.registry.Refresh()

	if canvas != nil && p.root != nil {
		errors.Isolate("panel.draw", func() {
			canvas.DrawRect(p.bounds, p.theme.Palette.Background)
		})
		p.drawNode(canvas, p.root)
	}
	return true
}

// PointerMove forwards a pointer move to the registry. It reports whether
// any region is hovered.
func (p *Panel) PointerMove(x, y float64) bool {
	if p.root == nil {
		return false
	}
	return p.registry.PointerMove(x, y)
}

// PointerDown forwards a press. It reports whether a region consumed it.
func (p *Panel) PointerDown(x, y float64) bool {
	if p.root == nil {
		return false
	}
	return p.registry.PointerDown(x, y)
}

// PointerUp forwards a release.
func (p *Panel) PointerUp(x, y float64) bool {
	if p.root == nil {
		return false
	}
	return p.registry.PointerUp(x, y)
}

func (p *Panel) rebuild() {
	if p.build == nil {
		return
	}
	hover := p.registry.HoverKey()
	p.arena.Reset()
	p.registry.Reset()
	p.bindings = p.bindings[:0]
	p.root = p.build(p)
	p.needsRebuild = false
	p.needsLayout = true
	if hover != "" {
		p.registry.RestoreHover(hover)
	}
}

func (p *Panel) teardown() {
	p.arena.Reset()
	p.registry.Reset()
	p.bindings = nil
	p.root = nil
	p.closed = true
	p.closing = false
}

// drawNode replays the arranged tree in paint order. Widget draw
// callbacks run isolated so a backend panic cannot corrupt layout state.
func (p *Panel) drawNode(canvas render.Canvas, n node.LayoutNode) {
	if !n.Visible() {
		return
	}
	switch v := n.(type) {
	case *node.Widget:
		if v.DrawFunc != nil {
			errors.Isolate("panel.draw", func() {
				v.DrawFunc(canvas, v.Frame())
			})
		}
	case *node.Container:
		for _, child := range v.Children {
			p.drawNode(canvas, child)
		}
	}
}
