package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Visitor is called for every node of a tree walk, together with the depth of the
// node relative to the start of the walk. If it returns false, the walk will not
// descend into the node's children.
type Visitor func(id NodeID, depth int) bool

type walkItem struct {
	id    NodeID
	depth int
}

// Walk traverses the subtree starting at from in pre-order. The start node itself
// is visited first. Dead nodes are visited like any other node; it is up to
// the visitor to skip them.
func (t *Tree) Walk(from NodeID, visit Visitor) {
	if !t.Valid(from) {
		return
	}
	stack := arraystack.New()
	stack.Push(walkItem{id: from})
	for !stack.Empty() {
		top, _ := stack.Pop()
		item := top.(walkItem)
		if !visit(item.id, item.depth) {
			continue
		}
		children := t.Children(item.id)
		for i := len(children) - 1; i >= 0; i-- { // push in reverse to keep source order
			stack.Push(walkItem{id: children[i], depth: item.depth + 1})
		}
	}
}

// Ancestors returns the chain of strict ancestors of a node, innermost first.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var chain []NodeID
	for p := t.Parent(id); p != None; p = t.Parent(p) {
		chain = append(chain, p)
	}
	return chain
}

// IsAncestor is true if a is a strict ancestor of id.
func (t *Tree) IsAncestor(a, id NodeID) bool {
	for p := t.Parent(id); p != None; p = t.Parent(p) {
		if p == a {
			return true
		}
	}
	return false
}

// Innermost finds the deepest live node in the subtree of from which contains
// offset. If no node contains offset, from is returned.
func (t *Tree) Innermost(from NodeID, offset int) NodeID {
	found := from
	t.Walk(from, func(id NodeID, depth int) bool {
		if t.IsDead(id) || !t.Span(id).Contains(offset) {
			return id == from // always look at children of the start node
		}
		found = id
		return true
	})
	return found
}
