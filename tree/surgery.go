package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/splicer"
	"golang.org/x/exp/slices"
)

// Remap adjusts the spans of all live nodes after delta bytes have been inserted
// (or, for negative delta, removed) into the source text.
//
// anchor is the node whose extent receives the edit: anchor and all of its
// ancestors keep their start position and move their end position by delta.
// Every other node which starts at or after pivot moves as a whole.
// All remaining nodes are located before the edit and stay untouched.
//
// For replacing node N, anchor is N's parent and pivot is N's old end position.
// For an insertion at position p into the child list of node P, anchor is P and
// pivot is p.
func (t *Tree) Remap(anchor NodeID, pivot, delta int) {
	if delta == 0 {
		return
	}
	grow := make(map[NodeID]bool)
	for a := anchor; a != None; a = t.Parent(a) {
		grow[a] = true
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.dead {
			continue
		}
		if grow[NodeID(i)] {
			n.span[1] += delta
		} else if n.span[0] >= pivot {
			n.span = n.span.Shift(delta)
		}
	}
	tracer().Debugf("remapped %d nodes: anchor=%d, pivot=%d, delta=%d", len(t.nodes), anchor, pivot, delta)
}

// Kill tombstones a node together with its complete subtree.
func (t *Tree) Kill(id NodeID) {
	t.Walk(id, func(n NodeID, depth int) bool {
		t.nodes[n].dead = true
		return true
	})
}

// Graft copies subtrees of another tree (usually a freshly parsed fragment) into t.
// The spans of all copied nodes are shifted by shift, and the copied roots get
// parent as their parent. Graft does not link the copies into any field of parent,
// this has to be done with Splice.
//
// Returns the handles of the copied roots.
func (t *Tree) Graft(frag *Tree, roots []NodeID, parent NodeID, shift int) []NodeID {
	copies := make([]NodeID, 0, len(roots))
	for _, r := range roots {
		copies = append(copies, t.copySubtree(frag, r, parent, shift))
	}
	return copies
}

func (t *Tree) copySubtree(frag *Tree, src NodeID, parent NodeID, shift int) NodeID {
	n := frag.nodes[src]
	id := t.Add(n.kind, n.span.Shift(shift))
	t.nodes[id].parent = parent
	fields := make([]Field, 0, len(n.fields))
	for _, f := range n.fields {
		kids := make([]NodeID, 0, len(f.Kids))
		for _, k := range f.Kids {
			kids = append(kids, t.copySubtree(frag, k, id, shift))
		}
		fields = append(fields, Field{Name: f.Name, Multi: f.Multi, Kids: kids})
	}
	t.nodes[id].fields = fields // arena may have been re-allocated meanwhile
	return id
}

// Slot is the position of a child within its parent's fields.
type Slot struct {
	Parent NodeID
	Field  int // index into the parent's fields
	Index  int // index into the field's children
}

// SlotOf locates a node within its parent, by identity. It is an error if the
// node has no parent (ErrDetached) or if the parent does not list the node in
// any of its fields (ErrStructure).
func (t *Tree) SlotOf(child NodeID) (Slot, error) {
	parent := t.Parent(child)
	if parent == None {
		return Slot{}, fmt.Errorf("%w: node %d (%s)", splicer.ErrDetached, child, t.Kind(child))
	}
	for fi, f := range t.nodes[parent].fields {
		for ki, k := range f.Kids {
			if k == child {
				return Slot{Parent: parent, Field: fi, Index: ki}, nil
			}
		}
	}
	return Slot{}, fmt.Errorf("%w: node %d (%s) not found within parent %d (%s)",
		splicer.ErrStructure, child, t.Kind(child), parent, t.Kind(parent))
}

// FieldOf returns the field a slot refers to.
func (t *Tree) FieldOf(slot Slot) Field {
	return t.nodes[slot.Parent].fields[slot.Field]
}

// Splice removes del children of a slot's field, starting at index, and inserts
// the replacement nodes in their place.
func (t *Tree) Splice(slot Slot, index, del int, repl []NodeID) error {
	if !t.Valid(slot.Parent) || slot.Field >= len(t.nodes[slot.Parent].fields) {
		return fmt.Errorf("%w: invalid slot %v", splicer.ErrStructure, slot)
	}
	f := &t.nodes[slot.Parent].fields[slot.Field]
	if index < 0 || index+del > len(f.Kids) {
		return fmt.Errorf("%w: splice [%d:%d] out of range for field %q of length %d",
			splicer.ErrStructure, index, index+del, f.Name, len(f.Kids))
	}
	if !f.Multi && len(repl) != del {
		tracer().Debugf("single-valued field %q receives %d nodes", f.Name, len(repl))
	}
	for _, r := range repl {
		t.nodes[r].parent = slot.Parent
	}
	f.Kids = slices.Replace(f.Kids, index, index+del, repl...)
	return nil
}
