package corpus

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/grammar"
	"github.com/npillmayer/splicer/tree"
	"golang.org/x/exp/slices"
)

// NodeRef references a node of a unit. It does not own the node.
// Gen is the generation of the unit the reference has been created for; a
// reference outlives a reload of its file, but is stale from then on.
type NodeRef struct {
	File string
	Gen  uint64
	ID   tree.NodeID
}

func (ref NodeRef) String() string {
	return fmt.Sprintf("%s#%d", ref.File, ref.ID)
}

// Unit is a source file together with its syntax tree.
type Unit struct {
	name    string
	gen     uint64 // bumped every time a file is (re-)registered
	text    string
	origin  string // text as loaded
	tree    *tree.Tree
	grammar grammar.Grammar
	lines   []int // start offsets of lines, computed on demand
}

// Name returns the file name of a unit.
func (u *Unit) Name() string {
	return u.name
}

// Text returns the current text of a unit.
func (u *Unit) Text() string {
	return u.text
}

// Tree returns the syntax tree of a unit.
func (u *Unit) Tree() *tree.Tree {
	return u.tree
}

// Root returns a reference to the root node of a unit.
func (u *Unit) Root() NodeRef {
	return NodeRef{File: u.name, Gen: u.gen, ID: u.tree.Root()}
}

// Ref returns a reference to a node of a unit.
func (u *Unit) Ref(id tree.NodeID) NodeRef {
	return NodeRef{File: u.name, Gen: u.gen, ID: id}
}

// Owns checks if a reference has been created for this unit, i.e. if it names
// the unit's file and generation.
func (u *Unit) Owns(ref NodeRef) bool {
	return ref.File == u.name && ref.Gen == u.gen
}

// Grammar returns the grammar a unit has been parsed with.
func (u *Unit) Grammar() grammar.Grammar {
	return u.grammar
}

// Syntax is a shortcut for u.Grammar().Syntax().
func (u *Unit) Syntax() *grammar.Syntax {
	return u.grammar.Syntax()
}

// TextOf returns the text a node spans. Tombstoned nodes have no text.
func (u *Unit) TextOf(id tree.NodeID) string {
	if !u.tree.Valid(id) || u.tree.IsDead(id) {
		return ""
	}
	span := u.tree.Span(id)
	return u.text[span.From():span.To()]
}

// LineOf returns the 1-based line number of a byte offset.
func (u *Unit) LineOf(offset int) int {
	if u.lines == nil {
		u.lines = []int{0}
		for i := 0; i < len(u.text); i++ {
			if u.text[i] == '\n' {
				u.lines = append(u.lines, i+1)
			}
		}
	}
	pos, found := slices.BinarySearch(u.lines, offset)
	if found {
		return pos + 1
	}
	return pos
}

// Splice replaces the text between from and to with s. It does not touch the tree,
// this is the responsibility of the caller.
func (u *Unit) Splice(from, to int, s string) error {
	if from < 0 || to < from || to > len(u.text) {
		return fmt.Errorf("%w: splice %v out of range for %s", splicer.ErrStructure,
			splicer.Span{from, to}, u.name)
	}
	var b strings.Builder
	b.Grow(len(u.text) - (to - from) + len(s))
	b.WriteString(u.text[:from])
	b.WriteString(s)
	b.WriteString(u.text[to:])
	u.text = b.String()
	u.lines = nil
	return nil
}
