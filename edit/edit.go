package edit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/tree"
)

// Position tells Insert where to put new text relative to a node.
type Position int

// Insertion positions
const (
	Before Position = iota
	After
)

func (pos Position) String() string {
	if pos == Before {
		return "before"
	}
	return "after"
}

// Replace replaces the text of a node and re-parses it. The node is tombstoned
// and its place within its parent is taken by the nodes parsed from text.
//
// Replacing a tombstoned node is a no-op. The root node of a unit cannot be
// replaced (splicer.ErrDetached).
func Replace(u *corpus.Unit, id tree.NodeID, text string) error {
	t := u.Tree()
	if !t.Valid(id) || t.IsDead(id) {
		return nil
	}
	slot, err := t.SlotOf(id)
	if err != nil {
		return err
	}
	frag, err := parseFragment(u, slot, t.Kind(id), text)
	if err != nil {
		return err
	}
	frag.retype(u.Syntax(), t.Kind(id))
	span := t.Span(id)
	if err = u.Splice(span.From(), span.To(), text); err != nil {
		return err
	}
	t.Kill(id)
	t.Remap(slot.Parent, span.To(), len(text)-span.Len())
	nodes := t.Graft(frag.tree, frag.nodes, slot.Parent, span.From()+frag.offset)
	tracer().Debugf("replaced %s%v in %s by %d node(s)", t.Kind(id), span, u.Name(), len(nodes))
	return t.Splice(slot, slot.Index, 1, nodes)
}

// Insert inserts text as a sibling of a node, either before or after it. New
// nodes parsed from text are linked into the same field of the parent as the
// node.
//
// Insertion next to a tombstoned node is a no-op. Insertion next to the root
// node of a unit is not possible (splicer.ErrDetached).
func Insert(u *corpus.Unit, id tree.NodeID, text string, pos Position) error {
	t := u.Tree()
	if !t.Valid(id) || t.IsDead(id) {
		return nil
	}
	slot, err := t.SlotOf(id)
	if err != nil {
		return err
	}
	frag, err := parseFragment(u, slot, t.Kind(id), text)
	if err != nil {
		return err
	}
	at, index := t.Span(id).From(), slot.Index
	if pos == After {
		at, index = t.Span(id).To(), slot.Index+1
	}
	if err = u.Splice(at, at, text); err != nil {
		return err
	}
	t.Remap(slot.Parent, at, len(text))
	nodes := t.Graft(frag.tree, frag.nodes, slot.Parent, at+frag.offset)
	tracer().Debugf("inserted %d node(s) %s %s in %s", len(nodes), pos, t.Kind(id), u.Name())
	return t.Splice(slot, index, 0, nodes)
}
