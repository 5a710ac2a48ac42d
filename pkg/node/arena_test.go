package node

import "testing"

func TestArenaResolvesLiveHandles(t *testing.T) {
	arena := NewArena(4)
	w := NewWidget(KindButton, "ok")
	h := arena.Add(w)

	got, ok := arena.Get(h)
	if !ok {
		t.Fatal("live handle failed to resolve")
	}
	if got != LayoutNode(w) {
		t.Error("handle resolved to a different node")
	}
}

func TestArenaResetInvalidatesHandles(t *testing.T) {
	arena := NewArena(4)
	h := arena.Add(NewWidget(KindLabel, "a"))

	arena.Reset()
	if _, ok := arena.Get(h); ok {
		t.Error("handle from previous generation resolved after Reset")
	}

	// A recycled slot must not be reachable through the stale handle.
	h2 := arena.Add(NewWidget(KindLabel, "b"))
	if _, ok := arena.Get(h); ok {
		t.Error("stale handle aliases recycled slot")
	}
	if _, ok := arena.Get(h2); !ok {
		t.Error("fresh handle failed to resolve after Reset")
	}
}

func TestArenaRemove(t *testing.T) {
	arena := NewArena(2)
	h := arena.Add(NewWidget(KindChoice, "menu"))
	arena.Remove(h)
	if _, ok := arena.Get(h); ok {
		t.Error("removed handle still resolves")
	}
	if arena.Len() != 0 {
		t.Errorf("Len = %d after remove, want 0", arena.Len())
	}
	// Removing twice is a no-op.
	arena.Remove(h)
}

func TestNoHandleNeverResolves(t *testing.T) {
	arena := NewArena(1)
	arena.Add(NewWidget(KindIcon, ""))
	if _, ok := arena.Get(NoHandle); ok {
		t.Error("NoHandle resolved")
	}
	if !NoHandle.IsNone() {
		t.Error("NoHandle.IsNone() = false")
	}
}
