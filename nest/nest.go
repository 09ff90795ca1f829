package nest

// Groups maps derived keys to the values derived from the records that
// produced them. Keys enumerate in first-seen order.
type Groups[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

func newGroups[K comparable, V any]() *Groups[K, V] {
	return &Groups[K, V]{
		keys:   []K{},
		values: map[K][]V{},
	}
}

// Group partitions records by key. Values keep their input order inside
// each group and duplicates are retained.
func Group[R any, K comparable, V any](key func(R) K, value func(R) V, records []R) *Groups[K, V] {
	g := newGroups[K, V]()
	for _, rec := range records {
		g.add(key(rec), value(rec))
	}
	return g
}

func (g *Groups[K, V]) add(k K, v V) {
	vs, ok := g.values[k]
	if !ok {
		g.keys = append(g.keys, k)
	}
	g.values[k] = append(vs, v)
}

func (g *Groups[K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)
	return keys
}

func (g *Groups[K, V]) Get(k K) []V {
	return g.values[k]
}

func (g *Groups[K, V]) Len() int {
	return len(g.keys)
}

// Each calls fn for every group in key order.
func (g *Groups[K, V]) Each(fn func(k K, vs []V)) {
	for _, k := range g.keys {
		fn(k, g.values[k])
	}
}

// MaxSize returns the size of the largest group.
func (g *Groups[K, V]) MaxSize() int {
	res := 0
	for _, vs := range g.values {
		res = max(res, len(vs))
	}
	return res
}

// Rollup replaces each group's values with reduce(values). The key order
// of g is kept.
func Rollup[K comparable, V, T any](g *Groups[K, V], reduce func([]V) T) *Groups[K, T] {
	res := newGroups[K, T]()
	for _, k := range g.keys {
		res.add(k, reduce(g.values[k]))
	}
	return res
}

// Reduced returns the single reduced value stored under k by Rollup.
func (g *Groups[K, V]) Reduced(k K) (V, bool) {
	var zero V
	vs, ok := g.values[k]
	if !ok || len(vs) == 0 {
		return zero, false
	}
	return vs[0], true
}
