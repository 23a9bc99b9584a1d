package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/xmldom/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := orderedmap.New[string, string]()
	m.Set("b", "2")
	m.Set("a", "1")
	m.Set("c", "3")

	require.Equal(t, 3, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = m.Get("nope")
	require.False(t, ok)

	var keys []string
	for k := range m.Range() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"b", "a", "c"}, keys, "iteration follows insertion order")

	t.Run("UpsertKeepsPosition", func(t *testing.T) {
		m.Set("b", "20")
		require.Equal(t, 3, m.Len())

		v, ok := m.Get("b")
		require.True(t, ok)
		require.Equal(t, "20", v)

		keys = keys[:0]
		for k := range m.Range() {
			keys = append(keys, k)
		}
		require.Equal(t, []string{"b", "a", "c"}, keys)
	})

	t.Run("RangeStopsEarly", func(t *testing.T) {
		var seen int
		for range m.Range() {
			seen++
			break
		}
		require.Equal(t, 1, seen)
	})
}
