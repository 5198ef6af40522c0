package testutil

import (
	"testing"

	"github.com/howeih/Day-67-Linked-list-mergesort/lib/database"
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/linkedlist"
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/stretchr/testify/require"
)

func NewList(values ...primitive.Value) *linkedlist.List {
	list := linkedlist.New()
	for _, v := range values {
		list.Push(v)
	}
	return list
}

func connectDatabase(t *testing.T) *database.Database {
	db := database.NewMemory()
	require.Nil(t, db.Connect())
	t.Cleanup(func() { require.Nil(t, db.Close()) })
	return db
}

// Oracle records the current contents of list in sqlite and returns the
// values in the order the database sorts them.
func Oracle(t *testing.T, list *linkedlist.List) []primitive.Value {
	db := connectDatabase(t)
	require.Nil(t, db.InsertList(list))
	values, err := db.ResolveOrderedValues()
	require.Nil(t, err)
	return values
}

// ValueCounts returns the multiset of values in list as counted by sqlite.
func ValueCounts(t *testing.T, list *linkedlist.List) []database.ValueCount {
	db := connectDatabase(t)
	require.Nil(t, db.InsertList(list))
	counts, err := db.ResolveValueCounts()
	require.Nil(t, err)
	return counts
}
