package linkedlist

import (
	"testing"

	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/stretchr/testify/require"
)

func collect(c *Cursor) []primitive.NodeId {
	ids := make([]primitive.NodeId, 0)
	for {
		id, ok := c.Take()
		if !ok {
			return ids
		}
		ids = append(ids, id)
	}
}

func Test_Window(t *testing.T) {
	l := newList(10, 20, 30, 40, 50)

	cases := []struct {
		skip     int
		take     int
		expected []primitive.NodeId
	}{
		{skip: 0, take: 5, expected: []primitive.NodeId{0, 1, 2, 3, 4}},
		{skip: 1, take: 3, expected: []primitive.NodeId{1, 2, 3}},
		{skip: 4, take: 10, expected: []primitive.NodeId{4}},
		{skip: 2, take: 0, expected: []primitive.NodeId{}},
		{skip: 5, take: 1, expected: []primitive.NodeId{}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expected, collect(l.Window(tc.skip, tc.take)), "skip %d take %d", tc.skip, tc.take)
	}
}

func Test_WindowPeek(t *testing.T) {
	l := newList(10, 20, 30)
	c := l.Window(1, 2)

	v, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, primitive.Value(20), v)
	v, _ = c.Peek()
	require.Equal(t, primitive.Value(20), v)

	id, _ := c.Take()
	require.Equal(t, primitive.NodeId(1), id)
	v, _ = c.Peek()
	require.Equal(t, primitive.Value(30), v)

	c.Take()
	_, ok = c.Peek()
	require.False(t, ok)

	c.Reset()
	require.Equal(t, []primitive.NodeId{1, 2}, collect(c))
}

func Test_WindowOnEmptyList(t *testing.T) {
	c := New().Window(0, 3)
	_, ok := c.Peek()
	require.False(t, ok)
	require.Empty(t, collect(c))
}
