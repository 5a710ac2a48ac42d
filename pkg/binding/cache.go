// Package binding couples widgets to paths into an external mutable object
// graph. Resolution goes through an epoch-scoped memo so one tick resolves
// each path at most once no matter how many widgets reference it.
package binding

// Source is the external object graph: values are read and written through
// described access paths. Get reports false when the path is unreachable.
type Source interface {
	Get(path string) (any, bool)
	Set(path string, value any) bool
}

type resolution struct {
	value any
	ok    bool
}

// ResolverCache memoizes path resolutions within one epoch. The cache
// survives across ticks; BeginTick wipes the memo whenever the epoch
// advances. A root propagates its epoch to nested subtrees, but each
// subtree keeps its own memo.
type ResolverCache struct {
	epoch uint64
	memo  map[string]resolution
}

// NewResolverCache creates an empty cache at epoch zero.
func NewResolverCache() *ResolverCache {
	return &ResolverCache{memo: make(map[string]resolution)}
}

// BeginTick clears the memo if the epoch changed since the last call.
// Calling it again with the same epoch keeps the memo intact.
func (c *ResolverCache) BeginTick(epoch uint64) {
	if epoch == c.epoch {
		return
	}
	c.epoch = epoch
	clear(c.memo)
}

// Epoch returns the epoch the memo is currently scoped to.
func (c *ResolverCache) Epoch() uint64 { return c.epoch }

// Resolve returns the memoized resolution of path, consulting src at most
// once per epoch. Unreachable results are memoized too, so a dead path
// costs one probe per tick rather than one per referencing widget.
func (c *ResolverCache) Resolve(path string, src Source) (any, bool) {
	if r, hit := c.memo[path]; hit {
		return r.value, r.ok
	}
	value, ok := src.Get(path)
	c.memo[path] = resolution{value: value, ok: ok}
	return value, ok
}
