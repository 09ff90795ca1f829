package nest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/ascii-boxplot/nest"
)

func identity(x int) int { return x }

func TestGroup_StableWithinGroup(t *testing.T) {
	g := nest.Group(func(x int) int { return x % 2 }, identity, []int{1, 2, 3, 4})

	require.Equal(t, []int{1, 0}, g.Keys())
	require.Equal(t, []int{1, 3}, g.Get(1))
	require.Equal(t, []int{2, 4}, g.Get(0))
	require.Equal(t, 2, g.Len())
	require.Equal(t, 2, g.MaxSize())
}

func TestGroup_DuplicatesAndFirstSeenOrder(t *testing.T) {
	type rec struct {
		g string
		v float64
	}
	records := []rec{{"b", 2}, {"a", 1}, {"b", 2}, {"c", 0}, {"a", 5}}
	g := nest.Group(func(r rec) string { return r.g }, func(r rec) float64 { return r.v }, records)

	require.Equal(t, []string{"b", "a", "c"}, g.Keys())
	require.Equal(t, []float64{2, 2}, g.Get("b"))
	require.Equal(t, []float64{1, 5}, g.Get("a"))
	require.Nil(t, g.Get("missing"))

	var seen []string
	g.Each(func(k string, vs []float64) { seen = append(seen, k) })
	require.Equal(t, g.Keys(), seen)
}

func TestGroup_Empty(t *testing.T) {
	g := nest.Group(identity, identity, nil)
	require.Equal(t, 0, g.Len())
	require.Equal(t, 0, g.MaxSize())
	require.Empty(t, g.Keys())
}

func TestRollup(t *testing.T) {
	g := nest.Group(func(x int) int { return x % 3 }, identity, []int{1, 2, 3, 4, 5, 6, 7})
	sums := nest.Rollup(g, func(vs []int) int {
		s := 0
		for _, v := range vs {
			s += v
		}
		return s
	})

	require.Equal(t, g.Keys(), sums.Keys())
	s, ok := sums.Reduced(1)
	require.True(t, ok)
	require.Equal(t, 1+4+7, s)
	s, ok = sums.Reduced(0)
	require.True(t, ok)
	require.Equal(t, 3+6, s)
	_, ok = sums.Reduced(42)
	require.False(t, ok)
}

func TestKeysIsACopy(t *testing.T) {
	g := nest.Group(identity, identity, []int{7, 8})
	keys := g.Keys()
	keys[0] = 99
	require.Equal(t, []int{7, 8}, g.Keys())
}
