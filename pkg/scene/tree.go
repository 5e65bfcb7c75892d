package scene

import (
	"fmt"
	"iter"
	"sync/atomic"

	"facet/pkg/style"
)

// NodeID is a stable handle into a Tree's arena. The zero value means
// "no node". Handles are valid only for the tree instance that issued
// them: every tree seeds its generations from a process-wide sequence,
// so a handle held across a rebuild (or passed to a different tree)
// fails the generation check instead of silently aliasing a new node.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsNone reports whether the handle refers to no node.
func (id NodeID) IsNone() bool {
	return id.gen == 0
}

func (id NodeID) String() string {
	if id.IsNone() {
		return "NodeID(none)"
	}
	return fmt.Sprintf("NodeID(%d.%d)", id.index, id.gen)
}

type slot struct {
	node Node
	gen  uint32
	live bool
}

// treeSeq hands out generation seeds so no two trees in a process issue
// the same handles.
var treeSeq atomic.Uint32

// Tree owns all nodes of one scene. It is single-threaded: built once,
// laid out, painted, then replaced wholesale on the next state change.
type Tree struct {
	slots []slot
	free  []uint32
	root  NodeID
	gen   uint32
}

// New creates a tree containing a single root element with the given
// style. The root has no parent.
func New(rootStyle style.Style) *Tree {
	t := &Tree{gen: treeSeq.Add(1)*2 + 1}
	t.root = t.alloc(Element(rootStyle))
	return t
}

// Root returns the handle of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].live {
			n++
		}
	}
	return n
}

// Node resolves a handle. Using a stale handle, or a handle issued by
// another tree, is a programming error and panics immediately.
func (t *Tree) Node(id NodeID) *Node {
	return &t.slot(id).node
}

func (t *Tree) slot(id NodeID) *slot {
	if id.IsNone() || int(id.index) >= len(t.slots) {
		panic(fmt.Sprintf("scene: invalid handle %v", id))
	}
	s := &t.slots[id.index]
	if !s.live || s.gen != id.gen {
		panic(fmt.Sprintf("scene: stale or foreign handle %v (handles do not survive a tree rebuild)", id))
	}
	return s
}

func (t *Tree) alloc(n Node) NodeID {
	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		s := &t.slots[idx]
		s.node = n
		s.live = true
		return NodeID{index: idx, gen: s.gen}
	}
	t.slots = append(t.slots, slot{node: n, gen: t.gen, live: true})
	return NodeID{index: uint32(len(t.slots) - 1), gen: t.gen}
}

// AddChild appends a node as the last child of parent and returns its
// handle. Iterating FirstChild -> NextSibling therefore yields children
// in the order they were added, which is the author declaration order.
func (t *Tree) AddChild(parent NodeID, n Node) NodeID {
	t.slot(parent) // validate before allocating
	n.Parent = parent
	n.FirstChild = NodeID{}
	n.LastChild = NodeID{}
	n.NextSibling = NodeID{}
	id := t.alloc(n)
	// alloc may grow the slot backing array; resolve the parent after.
	p := t.Node(parent)
	if p.FirstChild.IsNone() {
		p.FirstChild = id
		p.LastChild = id
	} else {
		t.Node(p.LastChild).NextSibling = id
		p.LastChild = id
	}
	return id
}

// Children iterates a node's children in declaration order. The
// sequence is finite and restartable.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	first := t.Node(id).FirstChild
	return func(yield func(NodeID) bool) {
		for cur := first; !cur.IsNone(); cur = t.Node(cur).NextSibling {
			if !yield(cur) {
				return
			}
		}
	}
}

// ChildCount returns the number of direct children of a node.
func (t *Tree) ChildCount(id NodeID) int {
	n := 0
	for range t.Children(id) {
		n++
	}
	return n
}

// RemoveSubtree deletes a node and all its descendants, children before
// the node itself. Siblings are unaffected: the sibling chain of the
// parent is repaired around the removed node. Removing the root empties
// the tree.
func (t *Tree) RemoveSubtree(id NodeID) {
	n := t.Node(id)
	if !n.Parent.IsNone() {
		t.unlink(n.Parent, id)
	} else if id == t.root {
		t.root = NodeID{}
	}
	t.freeSubtree(id)
}

// freeSubtree releases a node and its descendants depth-first. Freeing
// always runs child -> parent; the parent back-reference never owns.
func (t *Tree) freeSubtree(id NodeID) {
	n := t.Node(id)
	for child := n.FirstChild; !child.IsNone(); {
		next := t.Node(child).NextSibling
		t.freeSubtree(child)
		child = next
	}
	s := t.slot(id)
	s.live = false
	s.gen++
	s.node = Node{}
	t.free = append(t.free, id.index)
}

// unlink removes child from parent's sibling chain.
func (t *Tree) unlink(parent, child NodeID) {
	p := t.Node(parent)
	c := t.Node(child)
	if p.FirstChild == child {
		p.FirstChild = c.NextSibling
		if p.FirstChild.IsNone() {
			p.LastChild = NodeID{}
		}
		return
	}
	prev := p.FirstChild
	for !prev.IsNone() && t.Node(prev).NextSibling != child {
		prev = t.Node(prev).NextSibling
	}
	if prev.IsNone() {
		panic(fmt.Sprintf("scene: handle %v is not a child of %v", child, parent))
	}
	t.Node(prev).NextSibling = c.NextSibling
	if p.LastChild == child {
		p.LastChild = prev
	}
}
