package multiview

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/multiview/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ints(values ...int) []sortable.Int {
	out := make([]sortable.Int, len(values))
	for i, v := range values {
		out[i] = sortable.Int(v)
	}

	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty container", func(t *testing.T) {
		t.Parallel()

		c := New[sortable.Int]()

		require.NotNil(t, c)
		assert.Equal(t, 0, c.Size())
		assert.Empty(t, c.Entries())
	})

	t.Run("keeps the given order", func(t *testing.T) {
		t.Parallel()

		c := New(ints(9, 5, 7)...)

		assert.Equal(t, ints(9, 5, 7), c.Entries())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var c Container[sortable.Int]

		c.Add(3)

		assert.Equal(t, 1, c.Size())
		assert.Equal(t, ints(3), c.Collect(Ascending))
	})
}

func TestContainerAdd(t *testing.T) {
	t.Parallel()

	t.Run("appends duplicates", func(t *testing.T) {
		t.Parallel()

		c := New[sortable.Int]()
		c.Add(1)
		c.Add(1)
		c.Add(1)

		assert.Equal(t, 3, c.Size())
		assert.Equal(t, 3, c.Count(1))
	})

	t.Run("AddAll appends in order", func(t *testing.T) {
		t.Parallel()

		c := New(ints(1)...)
		c.AddAll(ints(3, 2)...)
		c.AddAll()

		assert.Equal(t, ints(1, 3, 2), c.Entries())
	})
}

func TestContainerCountUsesEquality(t *testing.T) {
	t.Parallel()

	c := New(ranked{"a", 1}, ranked{"b", 1}, ranked{"a", 1}, ranked{"a", 2})

	assert.Equal(t, 2, c.Count(ranked{"a", 1}))
	assert.Equal(t, 1, c.Count(ranked{"b", 1}))
	assert.Equal(t, 0, c.Count(ranked{"c", 1}))
	assert.Equal(t, 0, New[ranked]().Count(ranked{"a", 1}))
}

func TestContainerRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes every occurrence", func(t *testing.T) {
		t.Parallel()

		c := New(ints(1, 2, 2, 3, 2)...)

		require.NoError(t, c.Remove(2))

		assert.Equal(t, ints(1, 3), c.Entries())
		assert.Equal(t, 2, c.Size())
		assert.False(t, c.Contains(2))
	})

	t.Run("preserves the order of the remainder", func(t *testing.T) {
		t.Parallel()

		c := New(ints(5, 1, 4, 1, 3, 1, 2)...)

		require.NoError(t, c.Remove(1))

		assert.Equal(t, ints(5, 4, 3, 2), c.Entries())
	})

	t.Run("returns ErrElementNotFound and leaves the container unchanged", func(t *testing.T) {
		t.Parallel()

		c := New(ints(9, 5, 7)...)

		err := c.Remove(99)

		require.ErrorIs(t, err, ErrElementNotFound)
		assert.Contains(t, err.Error(), "99")
		assert.Equal(t, 3, c.Size())
		assert.Equal(t, ints(9, 5, 7), c.Entries())
	})

	t.Run("fails on an empty container", func(t *testing.T) {
		t.Parallel()

		c := New[sortable.Int]()

		require.ErrorIs(t, c.Remove(1), ErrElementNotFound)
		assert.Equal(t, 0, c.Size())
	})

	t.Run("second removal of the same value fails", func(t *testing.T) {
		t.Parallel()

		c := New(ints(4, 4)...)

		require.NoError(t, c.Remove(4))
		require.ErrorIs(t, c.Remove(4), ErrElementNotFound)
		assert.Equal(t, 0, c.Size())
	})

	t.Run("uses Equals rather than ordering ties", func(t *testing.T) {
		t.Parallel()

		c := New(ranked{"a", 1}, ranked{"b", 1}, ranked{"a", 1})

		require.NoError(t, c.Remove(ranked{"a", 1}))

		assert.Equal(t, []ranked{{"b", 1}}, c.Entries())
	})
}

func TestContainerRemoveAll(t *testing.T) {
	t.Parallel()

	t.Run("removes all found values and joins the failures", func(t *testing.T) {
		t.Parallel()

		c := New(ints(1, 2, 3, 2, 4)...)

		err := c.RemoveAll(2, 10, 4, 11)

		require.ErrorIs(t, err, ErrElementNotFound)
		assert.Contains(t, err.Error(), "10")
		assert.Contains(t, err.Error(), "11")
		assert.Equal(t, ints(1, 3), c.Entries())
	})

	t.Run("returns nil when every value was found", func(t *testing.T) {
		t.Parallel()

		c := New(ints(1, 2, 3)...)

		require.NoError(t, c.RemoveAll(1, 3))
		assert.Equal(t, ints(2), c.Entries())
	})
}

func TestContainerSizeTracksMutations(t *testing.T) {
	t.Parallel()

	c := New[sortable.Int]()
	assert.Equal(t, 0, c.Size())

	c.Add(10)
	assert.Equal(t, 1, c.Size())

	c.AddAll(20, 30)
	assert.Equal(t, 3, c.Size())

	require.NoError(t, c.Remove(20))
	assert.Equal(t, 2, c.Size())

	require.Error(t, c.Remove(20))
	assert.Equal(t, 2, c.Size())

	require.NoError(t, c.RemoveAll(10, 30))
	assert.Equal(t, 0, c.Size())
}

func TestContainerClear(t *testing.T) {
	t.Parallel()

	c := New(ints(3, 1, 2)...)
	assert.Equal(t, ints(1, 2, 3), c.Collect(Ascending))

	c.Clear()

	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.Collect(Ascending))
	assert.Empty(t, c.Collect(MiddleOut))

	c.Add(7)
	assert.Equal(t, ints(7), c.Collect(SideCross))
}

func TestContainerEntriesIsACopy(t *testing.T) {
	t.Parallel()

	c := New(ints(1, 2, 3)...)

	entries := c.Entries()
	entries[0] = 100

	assert.Equal(t, ints(1, 2, 3), c.Entries())
}

func TestContainerMinMax(t *testing.T) {
	t.Parallel()

	t.Run("empty container has neither", func(t *testing.T) {
		t.Parallel()

		c := New[sortable.Int]()

		_, ok := c.Min()
		assert.False(t, ok)

		_, ok = c.Max()
		assert.False(t, ok)
	})

	t.Run("matches the ends of the ascending view", func(t *testing.T) {
		t.Parallel()

		c := New(ints(9, 5, 7, 3, 1)...)

		minimum, ok := c.Min()
		require.True(t, ok)
		assert.Equal(t, sortable.Int(1), minimum)

		maximum, ok := c.Max()
		require.True(t, ok)
		assert.Equal(t, sortable.Int(9), maximum)
	})

	t.Run("ties resolve like the ascending and descending views", func(t *testing.T) {
		t.Parallel()

		c := New(ranked{"a", 1}, ranked{"b", 1}, ranked{"c", 2}, ranked{"d", 2})

		minimum, _ := c.Min()
		maximum, _ := c.Max()

		assert.Equal(t, ranked{"a", 1}, minimum)
		assert.Equal(t, ranked{"d", 2}, maximum)
		assert.Equal(t, c.Collect(Descending)[0], maximum)
	})
}

func TestContainerString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []sortable.Int
		expected string
	}{
		{name: "empty", values: nil, expected: ""},
		{name: "single", values: ints(4), expected: "4"},
		{name: "insertion order", values: ints(9, 5, 7, 3, 1), expected: "9, 5, 7, 3, 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, New(tt.values...).String())
		})
	}
}

func TestContainerMarshal(t *testing.T) {
	t.Parallel()

	t.Run("JSON array in insertion order", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(New(ints(9, 5, 7)...))
		require.NoError(t, err)
		assert.JSONEq(t, `[9, 5, 7]`, string(data))
	})

	t.Run("empty container is an empty JSON array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(New[sortable.Int]())
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})

	t.Run("YAML sequence in insertion order", func(t *testing.T) {
		t.Parallel()

		data, err := yaml.Marshal(New[sortable.String]("banana", "apple"))
		require.NoError(t, err)

		var decoded []string
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, []string{"banana", "apple"}, decoded)
	})
}
