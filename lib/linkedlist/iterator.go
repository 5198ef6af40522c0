package linkedlist

import "github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"

// Cursor walks the positions [skip, skip+take) of a list.
type Cursor struct {
	list    *List
	skip    int
	take    int
	current primitive.NodeId
	left    int
	started bool
}

func (l *List) Window(skip, take int) *Cursor {
	return &Cursor{list: l, skip: skip, take: take}
}

func (c *Cursor) Reset() {
	c.started = false
}

// seek drops the first skip nodes. It runs lazily so that a cursor opened
// before its window is relinked still starts at the right node.
func (c *Cursor) seek() {
	if c.started {
		return
	}
	c.started = true
	c.left = c.take
	c.current = c.list.head
	for i := 0; i < c.skip && !c.current.IsNil(); i++ {
		c.current = c.list.nodes[c.current].next
	}
}

func (c *Cursor) Peek() (primitive.Value, bool) {
	c.seek()
	if c.left <= 0 || c.current.IsNil() {
		return 0, false
	}
	return c.list.nodes[c.current].value, true
}

// Take returns the next node and moves past it. The successor is read
// before the caller gets the node, so relinking the returned node does not
// disturb the rest of the window.
func (c *Cursor) Take() (primitive.NodeId, bool) {
	c.seek()
	if c.left <= 0 || c.current.IsNil() {
		return primitive.NilNode, false
	}
	id := c.current
	c.current = c.list.nodes[id].next
	c.left--
	return id, true
}
