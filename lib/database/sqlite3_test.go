package database

import (
	"testing"

	"github.com/howeih/Day-67-Linked-list-mergesort/lib/linkedlist"
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) *Database {
	db := NewMemory()
	require.Nil(t, db.Connect())
	t.Cleanup(func() { require.Nil(t, db.Close()) })
	return db
}

func Test_InsertList(t *testing.T) {
	list := linkedlist.New()
	for _, v := range []primitive.Value{15, 10, 5, 20, 3, 2} {
		list.Push(v)
	}

	db := connect(t)
	require.Nil(t, db.InsertList(list))

	nodes, err := db.ResolveNodes()
	require.Nil(t, err)
	require.Len(t, nodes, 6)
	for i, node := range nodes {
		assert.Equal(t, i, node.Position)
		assert.Equal(t, primitive.NodeId(i), node.Id)
	}

	values, err := db.ResolveValues()
	require.Nil(t, err)
	assert.Equal(t, []primitive.Value{15, 10, 5, 20, 3, 2}, values)

	ordered, err := db.ResolveOrderedValues()
	require.Nil(t, err)
	assert.Equal(t, []primitive.Value{2, 3, 5, 10, 15, 20}, ordered)
}

func Test_ResolveValueCounts(t *testing.T) {
	list := linkedlist.New()
	for _, v := range []primitive.Value{5, 5, 1, -3, 5} {
		list.Push(v)
	}

	db := connect(t)
	require.Nil(t, db.InsertList(list))

	counts, err := db.ResolveValueCounts()
	require.Nil(t, err)
	assert.Equal(t, []ValueCount{{-3, 1}, {1, 1}, {5, 3}}, counts)
}

func Test_EmptyList(t *testing.T) {
	db := connect(t)
	require.Nil(t, db.InsertList(linkedlist.New()))

	values, err := db.ResolveOrderedValues()
	require.Nil(t, err)
	assert.Empty(t, values)
}

func Test_MemoryDatabasesAreIsolated(t *testing.T) {
	a := connect(t)
	b := connect(t)

	list := linkedlist.New()
	list.Push(1)
	require.Nil(t, a.InsertList(list))

	values, err := b.ResolveValues()
	require.Nil(t, err)
	assert.Empty(t, values)
}
