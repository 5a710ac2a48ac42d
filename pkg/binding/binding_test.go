package binding

import (
	"testing"

	"github.com/go-plank/plank/pkg/node"
	"github.com/go-plank/plank/pkg/render"
)

// countingSource counts underlying resolutions per path.
type countingSource struct {
	values map[string]any
	gets   map[string]int
}

func newCountingSource() *countingSource {
	return &countingSource{values: make(map[string]any), gets: make(map[string]int)}
}

func (s *countingSource) Get(path string) (any, bool) {
	s.gets[path]++
	v, ok := s.values[path]
	return v, ok
}

func (s *countingSource) Set(path string, value any) bool {
	if _, ok := s.values[path]; !ok {
		return false
	}
	s.values[path] = value
	return true
}

func TestResolveOncePerEpoch(t *testing.T) {
	src := newCountingSource()
	src.values["node.gain"] = 0.5
	cache := NewResolverCache()
	cache.BeginTick(1)

	for i := 0; i < 5; i++ {
		v, ok := cache.Resolve("node.gain", src)
		if !ok || v != 0.5 {
			t.Fatalf("resolve %d = (%v, %v)", i, v, ok)
		}
	}
	if src.gets["node.gain"] != 1 {
		t.Errorf("source hit %d times within one epoch, want 1", src.gets["node.gain"])
	}
}

func TestEpochAdvanceDropsMemo(t *testing.T) {
	src := newCountingSource()
	src.values["node.gain"] = 0.5
	cache := NewResolverCache()

	cache.BeginTick(1)
	cache.Resolve("node.gain", src)
	src.values["node.gain"] = 0.9

	// Same epoch keeps the memoized value.
	cache.BeginTick(1)
	if v, _ := cache.Resolve("node.gain", src); v != 0.5 {
		t.Errorf("same-epoch resolve = %v, want the memoized 0.5", v)
	}

	cache.BeginTick(2)
	if v, _ := cache.Resolve("node.gain", src); v != 0.9 {
		t.Errorf("next-epoch resolve = %v, want the fresh 0.9", v)
	}
	if src.gets["node.gain"] != 2 {
		t.Errorf("source probed %d times across two epochs, want 2", src.gets["node.gain"])
	}
}

func TestUnreachablePathMemoizedToo(t *testing.T) {
	src := newCountingSource()
	cache := NewResolverCache()
	cache.BeginTick(1)

	for i := 0; i < 3; i++ {
		if _, ok := cache.Resolve("gone", src); ok {
			t.Fatal("resolved a path the source does not have")
		}
	}
	if src.gets["gone"] != 1 {
		t.Errorf("dead path probed %d times, want 1", src.gets["gone"])
	}
}

func TestSyncDisablesOnUnreachableOnlyOnFlip(t *testing.T) {
	arena := node.NewArena(2)
	w := node.NewWidget(node.KindSlider, "gain")
	h := arena.Add(w)
	src := newCountingSource()
	cache := NewResolverCache()
	b := &PropertyBinding{Path: "node.gain", Owner: h}

	cache.BeginTick(1)
	res := b.Sync(cache, src, arena)
	if !res.Changed || w.Enabled() {
		t.Errorf("first dead sync: changed=%v enabled=%v", res.Changed, w.Enabled())
	}

	cache.BeginTick(2)
	res = b.Sync(cache, src, arena)
	if res.Changed {
		t.Error("second dead sync reported a change with no flip")
	}

	src.values["node.gain"] = 0.25
	cache.BeginTick(3)
	res = b.Sync(cache, src, arena)
	if !res.Changed || !w.Enabled() {
		t.Errorf("revival sync: changed=%v enabled=%v", res.Changed, w.Enabled())
	}
	if w.Value != 0.25 {
		t.Errorf("value = %v, want 0.25", w.Value)
	}
}

func TestSyncAdaptsByKind(t *testing.T) {
	arena := node.NewArena(4)
	src := newCountingSource()
	cache := NewResolverCache()
	cache.BeginTick(1)

	check := node.NewWidget(node.KindCheckbox, "mute")
	src.values["node.mute"] = true
	(&PropertyBinding{Path: "node.mute", Owner: arena.Add(check)}).Sync(cache, src, arena)
	if check.Value != true {
		t.Errorf("checkbox value = %v", check.Value)
	}

	slider := node.NewWidget(node.KindSlider, "level")
	src.values["node.level"] = 7
	(&PropertyBinding{Path: "node.level", Owner: arena.Add(slider)}).Sync(cache, src, arena)
	if slider.Value != 7.0 {
		t.Errorf("slider value = %v, want float 7", slider.Value)
	}

	label := node.NewWidget(node.KindLabel, "name")
	src.values["node.name"] = "compressor"
	(&PropertyBinding{Path: "node.name", Owner: arena.Add(label)}).Sync(cache, src, arena)
	if label.Text != "compressor" {
		t.Errorf("label text = %q", label.Text)
	}

	swatch := node.NewWidget(node.KindColor, "tint")
	src.values["node.tint"] = uint32(0xFF336699)
	(&PropertyBinding{Path: "node.tint", Owner: arena.Add(swatch)}).Sync(cache, src, arena)
	if swatch.Value != render.Color(0xFF336699) {
		t.Errorf("swatch value = %v, want an adapted Color", swatch.Value)
	}
}

func TestSyncAdaptsColorChannelTuple(t *testing.T) {
	arena := node.NewArena(2)
	w := node.NewWidget(node.KindColor, "tint")
	src := newCountingSource()
	src.values["node.tint"] = [4]uint8{0x33, 0x66, 0x99, 0xFF}
	cache := NewResolverCache()
	cache.BeginTick(1)

	(&PropertyBinding{Path: "node.tint", Owner: arena.Add(w)}).Sync(cache, src, arena)
	if w.Value != render.RGBA(0x33, 0x66, 0x99, 0xFF) {
		t.Errorf("value = %v, want the assembled Color", w.Value)
	}
}

func TestSyncChoiceListShapeChangeFlagsRelayout(t *testing.T) {
	arena := node.NewArena(2)
	w := node.NewWidget(node.KindChoice, "mode")
	src := newCountingSource()
	src.values["node.mode"] = 1
	cache := NewResolverCache()

	choices := []string{"off", "low"}
	b := &PropertyBinding{
		Path:           "node.mode",
		Owner:          arena.Add(w),
		ResolveChoices: func() []string { return choices },
	}

	cache.BeginTick(1)
	res := b.Sync(cache, src, arena)
	if !res.Relayout {
		t.Error("first choice sync should flag relayout")
	}
	if w.Text != "low" {
		t.Errorf("display name = %q, want the index-1 choice", w.Text)
	}

	cache.BeginTick(2)
	if res = b.Sync(cache, src, arena); res.Relayout {
		t.Error("unchanged choice list flagged a relayout")
	}

	choices = []string{"off", "low", "high"}
	cache.BeginTick(3)
	if res = b.Sync(cache, src, arena); !res.Relayout {
		t.Error("grown choice list did not flag a relayout")
	}
	if len(w.Choices) != 3 {
		t.Errorf("widget carries %d choices, want 3", len(w.Choices))
	}
}

func TestSyncIgnoresStaleOwner(t *testing.T) {
	arena := node.NewArena(2)
	w := node.NewWidget(node.KindSlider, "gain")
	h := arena.Add(w)
	src := newCountingSource()
	src.values["node.gain"] = 0.5
	cache := NewResolverCache()
	cache.BeginTick(1)

	arena.Reset()
	b := &PropertyBinding{Path: "node.gain", Owner: h}
	if res := b.Sync(cache, src, arena); res.Changed || res.Relayout {
		t.Errorf("stale sync reported %+v", res)
	}
	if src.gets["node.gain"] != 0 {
		t.Error("stale binding still probed the source")
	}
}

func TestSetValueWriteBack(t *testing.T) {
	arena := node.NewArena(2)
	w := node.NewWidget(node.KindSlider, "gain")
	src := newCountingSource()
	src.values["node.gain"] = 0.5
	b := &PropertyBinding{Path: "node.gain", Owner: arena.Add(w)}

	b.SetValue(src, 0.75)
	if src.values["node.gain"] != 0.75 {
		t.Errorf("source holds %v after write-back", src.values["node.gain"])
	}
}
