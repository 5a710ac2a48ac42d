package node

// Handle is a non-owning, generation-checked reference to a node in an
// Arena. The tree is torn down and rebuilt every rebuild trigger, so any
// reference that outlives a tree (hit regions, bindings, transient menu
// owners) must go through a handle: after the arena resets, old handles
// fail the generation check instead of aliasing a recycled slot.
type Handle struct {
	index int32
	gen   uint32
}

// NoHandle is the zero-value-adjacent sentinel that never resolves.
var NoHandle = Handle{index: -1}

// IsNone reports whether the handle is the sentinel.
func (h Handle) IsNone() bool { return h.index < 0 }

type slot struct {
	gen  uint32
	node LayoutNode
	live bool
}

// Arena owns the nodes of one tree generation and validates handles.
// One arena belongs to exactly one tree root.
type Arena struct {
	slots []slot
	free  []int32
}

// NewArena creates an arena with room for the expected node count.
func NewArena(capacity int) *Arena {
	return &Arena{slots: make([]slot, 0, capacity)}
}

// Add registers a node and returns its handle.
func (a *Arena) Add(n LayoutNode) Handle {
	if len(a.free) > 0 {
		idx := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		s := &a.slots[idx]
		s.node = n
		s.live = true
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{node: n, live: true})
	return Handle{index: int32(len(a.slots) - 1), gen: 0}
}

// Get resolves a handle. A handle from a previous tree generation, or one
// whose slot was removed, returns false.
func (a *Arena) Get(h Handle) (LayoutNode, bool) {
	if h.IsNone() || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return s.node, true
}

// Remove deterministically invalidates a single handle, used when a
// transient interaction (a popup menu owner) completes.
func (a *Arena) Remove(h Handle) {
	if h.IsNone() || int(h.index) >= len(a.slots) {
		return
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return
	}
	s.node = nil
	s.live = false
	s.gen++
	a.free = append(a.free, h.index)
}

// Reset discards every node and bumps all generations. Handles issued
// before the reset become stale and safely resolve to nothing.
func (a *Arena) Reset() {
	a.free = a.free[:0]
	for i := range a.slots {
		a.slots[i].node = nil
		a.slots[i].live = false
		a.slots[i].gen++
		a.free = append(a.free, int32(i))
	}
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].live {
			n++
		}
	}
	return n
}
