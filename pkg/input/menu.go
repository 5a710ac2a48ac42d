package input

import "github.com/go-plank/plank/pkg/node"

type menuEntry struct {
	owner  node.Handle
	commit func(index int)
}

// MenuTable maps transient menu identifiers to their owning widgets. A
// popup menu outlives the tick that opened it, so the owner is kept as a
// handle; entries are removed explicitly when the interaction completes,
// and a rebuild in between simply makes the entry go stale.
type MenuTable struct {
	arena   *node.Arena
	entries map[int]menuEntry
}

// NewMenuTable creates an empty table resolving owners against arena.
func NewMenuTable(arena *node.Arena) *MenuTable {
	return &MenuTable{arena: arena, entries: make(map[int]menuEntry)}
}

// Open records a menu interaction under id, replacing any previous entry
// for that id. commit runs when the host commits a selection; nil is
// allowed for menus that only need owner lookup.
func (t *MenuTable) Open(id int, owner node.Handle, commit func(index int)) {
	t.entries[id] = menuEntry{owner: owner, commit: commit}
}

// Lookup resolves the owner of an open menu. It misses when the id was
// never opened, was closed, or the owning tree was rebuilt since.
func (t *MenuTable) Lookup(id int) (node.LayoutNode, bool) {
	e, ok := t.entries[id]
	if !ok {
		return nil, false
	}
	return t.arena.Get(e.owner)
}

// Commit delivers the host's selection to the menu's commit hook and
// closes the entry. A stale owner drops the selection silently: the
// widget the menu belonged to no longer exists.
func (t *MenuTable) Commit(id int, index int) {
	e, ok := t.entries[id]
	if !ok {
		return
	}
	delete(t.entries, id)
	if _, live := t.arena.Get(e.owner); !live {
		return
	}
	if e.commit != nil {
		e.commit(index)
	}
}

// Close removes the entry for id without committing. Closing an unknown
// id is a no-op.
func (t *MenuTable) Close(id int) {
	delete(t.entries, id)
}

// Len returns the number of open entries.
func (t *MenuTable) Len() int { return len(t.entries) }
