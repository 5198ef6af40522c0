package linkedlist

import (
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/pkg/errors"
)

type node struct {
	value primitive.Value
	next  primitive.NodeId
}

// List is a singly linked list whose nodes live in an arena and are linked
// by slot index. A node keeps its NodeId for the lifetime of the list;
// sorting only rewrites next links.
type List struct {
	nodes []node
	head  primitive.NodeId
	tail  primitive.NodeId
	len   int
}

func New() *List {
	return &List{head: primitive.NilNode, tail: primitive.NilNode}
}

func (l *List) Len() int {
	return l.len
}

func (l *List) Head() (primitive.NodeId, bool) {
	return l.head, !l.head.IsNil()
}

func (l *List) Tail() (primitive.NodeId, bool) {
	return l.tail, !l.tail.IsNil()
}

func (l *List) valid(id primitive.NodeId) bool {
	return id >= 0 && int(id) < len(l.nodes)
}

func (l *List) Value(id primitive.NodeId) (primitive.Value, bool) {
	if !l.valid(id) {
		return 0, false
	}
	return l.nodes[id].value, true
}

func (l *List) Next(id primitive.NodeId) (primitive.NodeId, bool) {
	if !l.valid(id) {
		return primitive.NilNode, false
	}
	next := l.nodes[id].next
	return next, !next.IsNil()
}

func (l *List) Push(v primitive.Value) primitive.NodeId {
	id := primitive.NodeId(len(l.nodes))
	l.nodes = append(l.nodes, node{value: v, next: primitive.NilNode})
	l.len++

	if l.head.IsNil() {
		l.head = id
	} else {
		l.nodes[l.tail].next = id
	}
	l.tail = id
	return id
}

func (l *List) NodeAt(index int) (primitive.NodeId, bool) {
	if index < 0 || index >= l.len {
		return primitive.NilNode, false
	}
	return l.Window(index, 1).Take()
}

func (l *List) Map(fn func(index int, id primitive.NodeId, v primitive.Value) error) error {
	if l == nil {
		return nil
	}
	index := 0
	for current := l.head; !current.IsNil(); current = l.nodes[current].next {
		if err := fn(index, current, l.nodes[current].value); err != nil {
			return err
		}
		index++
	}
	return nil
}

func (l *List) Nodes() []primitive.NodeId {
	ids := make([]primitive.NodeId, 0, l.len)
	_ = l.Map(func(_ int, id primitive.NodeId, _ primitive.Value) error {
		ids = append(ids, id)
		return nil
	})
	return ids
}

func (l *List) Values() []primitive.Value {
	values := make([]primitive.Value, 0, l.len)
	_ = l.Map(func(_ int, _ primitive.NodeId, v primitive.Value) error {
		values = append(values, v)
		return nil
	})
	return values
}

func (l *List) IsSorted() bool {
	values := l.Values()
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

// CheckCorruption walks the chain and reports the first broken invariant.
func (l *List) CheckCorruption() error {
	if l.len == 0 {
		if !l.head.IsNil() || !l.tail.IsNil() {
			return errors.New("empty list has a head or tail")
		}
		return nil
	}
	if l.head.IsNil() || l.tail.IsNil() {
		return errors.Errorf("list of length %d is missing its head or tail", l.len)
	}

	count := 0
	last := primitive.NilNode
	for current := l.head; !current.IsNil(); current = l.nodes[current].next {
		if !l.valid(current) {
			return errors.Errorf("dangling link to node %d", current)
		}
		count++
		if count > l.len {
			return errors.Errorf("more than %d nodes reachable from head, cycle?", l.len)
		}
		last = current
	}

	if count != l.len {
		return errors.Errorf("len is %d but %d nodes are reachable", l.len, count)
	}
	if last != l.tail {
		return errors.Errorf("tail is node %d but the chain ends at node %d", l.tail, last)
	}
	return nil
}
