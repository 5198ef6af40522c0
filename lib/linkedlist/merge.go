package linkedlist

import (
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/pkg/errors"
)

var ErrInvalidRange = errors.New("invalid index range")

func (l *List) checkRange(start, mid, end int) error {
	if start < 0 || end > l.len || start > mid || mid > end {
		return errors.Wrapf(ErrInvalidRange, "start=%d mid=%d end=%d len=%d", start, mid, end, l.len)
	}
	return nil
}

// boundaries returns the node just before start and the node at end, found
// in one walk from head. Either may be NilNode.
func (l *List) boundaries(start, end int) (before, after primitive.NodeId) {
	before, after = primitive.NilNode, primitive.NilNode
	current := l.head
	for i := 0; i <= end && !current.IsNil(); i++ {
		if i == start-1 {
			before = current
		}
		if i == end {
			after = current
		}
		current = l.nodes[current].next
	}
	return before, after
}

// chain is a detached run of nodes built up during a merge.
type chain struct {
	head primitive.NodeId
	tail primitive.NodeId
}

func (l *List) link(c *chain, id primitive.NodeId) {
	if c.head.IsNil() {
		c.head = id
	} else {
		l.nodes[c.tail].next = id
	}
	c.tail = id
	l.nodes[id].next = primitive.NilNode
}

func (l *List) drain(c *chain, cursor *Cursor) {
	for {
		id, ok := cursor.Take()
		if !ok {
			return
		}
		l.link(c, id)
	}
}

// splice puts c between before and after, updating head and tail when the
// range touches either end of the list.
func (l *List) splice(before, after primitive.NodeId, c chain) {
	if before.IsNil() {
		l.head = c.head
	} else {
		l.nodes[before].next = c.head
	}
	if after.IsNil() {
		l.tail = c.tail
	} else {
		l.nodes[c.tail].next = after
	}
}

// Merge merges the sorted runs [start, mid) and [mid, end) in place by
// relinking their nodes. When the heads of both runs hold equal values the
// node from the right run is taken first.
func (l *List) Merge(start, mid, end int) error {
	if err := l.checkRange(start, mid, end); err != nil {
		return err
	}
	if start == end {
		return nil
	}

	before, after := l.boundaries(start, end)

	left := l.Window(start, mid-start)
	right := l.Window(mid, end-mid)
	out := chain{head: primitive.NilNode, tail: primitive.NilNode}

	for {
		lv, lok := left.Peek()
		rv, rok := right.Peek()
		if !lok || !rok {
			break
		}
		if lv < rv {
			id, _ := left.Take()
			l.link(&out, id)
		} else {
			id, _ := right.Take()
			l.link(&out, id)
		}
	}
	l.drain(&out, left)
	l.drain(&out, right)

	l.splice(before, after, out)
	return nil
}
