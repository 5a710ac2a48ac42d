package binding

import (
	stderrors "errors"
	"fmt"

	"github.com/go-plank/plank/pkg/errors"
	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/render"
)

// PropertyBinding couples one widget to a path in the source graph plus a
// write-back setter. The widget is referenced by handle: a binding that
// outlives its tree resolves to nothing and syncs as a no-op.
type PropertyBinding struct {
	// Path is the access path resolved against the source each tick.
	Path string
	// Owner is the bound widget.
	Owner node.Handle
	// ResolveChoices recomputes the enumerated option list for choice
	// widgets. Nil for every other kind.
	ResolveChoices func() []string

	cachedChoices []string
}

// SyncResult reports what a sync changed. Changed means the widget's
// enabled flag flipped; Relayout means the choice list changed shape and
// the tree needs a fresh measure.
type SyncResult struct {
	Changed  bool
	Relayout bool
}

// SetValue writes a value back through the binding's path. A refused write
// is reported but does not interrupt dispatch.
func (b *PropertyBinding) SetValue(src Source, value any) {
	if !src.Set(b.Path, value) {
		errors.Report(errors.New("binding.SetValue", errors.KindBinding,
			fmt.Errorf("write to %q refused", b.Path)))
	}
}

// Sync resolves the binding and pushes the current value into the widget.
// An unreachable path disables the widget; Changed is set only when the
// enabled flag actually flips, so a path that stays dead does not trigger
// redundant relayouts. A reachable path re-enables the widget and adapts
// the value by kind.
func (b *PropertyBinding) Sync(cache *ResolverCache, src Source, arena *node.Arena) SyncResult {
	n, ok := arena.Get(b.Owner)
	if !ok {
		return SyncResult{}
	}
	w, ok := n.(*node.Widget)
	if !ok {
		errors.Assert(false, "binding.Sync",
			stderrors.New("binding owner is not a widget"))
		return SyncResult{}
	}

	value, reachable := cache.Resolve(b.Path, src)
	var result SyncResult
	if !reachable {
		if w.Enabled() {
			w.SetEnabled(false)
			result.Changed = true
		}
		return result
	}
	if !w.Enabled() {
		w.SetEnabled(true)
		result.Changed = true
	}

	switch w.Kind {
	case node.KindCheckbox:
		if on, ok := value.(bool); ok {
			w.Value = on
		}
	case node.KindSlider:
		if f, ok := toFloat(value); ok {
			w.Value = f
		}
	case node.KindLabel, node.KindField:
		w.Text = toText(value)
		w.Value = value
	case node.KindChoice:
		if b.ResolveChoices != nil {
			choices := b.ResolveChoices()
			if choicesDiffer(b.cachedChoices, choices) {
				result.Relayout = true
			}
			b.cachedChoices = choices
			w.Choices = choices
		}
		w.Value = value
		w.Text = choiceDisplayName(value, w.Choices)
	case node.KindColor:
		if col, ok := toColor(value); ok {
			w.Value = col
		}
	default:
		w.Value = value
	}
	return result
}

// choiceDisplayName maps a bound choice value to its display string: an
// integer selects by index, a string passes through.
func choiceDisplayName(value any, choices []string) string {
	switch v := value.(type) {
	case string:
		return v
	default:
		if f, ok := toFloat(value); ok {
			i := int(f)
			if i >= 0 && i < len(choices) {
				return choices[i]
			}
		}
	}
	return ""
}

func choicesDiffer(a, b []string) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// toColor adapts a bound color: a Color passes through, a packed
// 0xAARRGGBB integer is reinterpreted, a channel tuple is assembled.
func toColor(value any) (render.Color, bool) {
	switch v := value.(type) {
	case render.Color:
		return v, true
	case uint32:
		return render.Color(v), true
	case int:
		return render.Color(uint32(v)), true
	case int64:
		return render.Color(uint32(v)), true
	case uint64:
		return render.Color(uint32(v)), true
	case [4]uint8:
		return render.RGBA(v[0], v[1], v[2], v[3]), true
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
