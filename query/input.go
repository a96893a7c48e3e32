package query

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/splicer/corpus"
	"golang.org/x/exp/slices"
)

type inputKind int8

const (
	everything inputKind = iota
	pattern
	collection
	nodes
)

// Input is what a collection is created from. Use one of Pattern, Of, Node,
// Nodes or Everything to create an Input.
type Input struct {
	kind    inputKind
	pattern string
	col     Collection
	refs    []corpus.NodeRef
}

// Pattern selects the nodes of all files of a corpus matching a selector pattern.
func Pattern(p string) Input {
	return Input{kind: pattern, pattern: p}
}

// Of copies a collection.
func Of(col Collection) Input {
	return Input{kind: collection, col: col}
}

// Node wraps a single node.
func Node(ref corpus.NodeRef) Input {
	return Input{kind: nodes, refs: []corpus.NodeRef{ref}}
}

// Nodes wraps a list of nodes.
func Nodes(refs []corpus.NodeRef) Input {
	return Input{kind: nodes, refs: refs}
}

// Everything selects the root nodes of all files of a corpus.
func Everything() Input {
	return Input{kind: everything}
}

// New creates a collection for a corpus.
func New(c *corpus.Corpus, in Input) Collection {
	switch in.kind {
	case pattern:
		return Collection{c: c, refs: c.Roots()}.Find(in.pattern)
	case collection:
		return Collection{c: c, refs: slices.Clone(in.col.refs), err: in.col.err}
	case nodes:
		return Collection{c: c, refs: slices.Clone(in.refs)}
	}
	return Collection{c: c, refs: c.Roots()}
}

// Find selects the nodes of all files of a corpus matching a selector pattern.
func Find(c *corpus.Corpus, pattern string) Collection {
	return New(c, Pattern(pattern))
}

// NodeAt creates a collection with the innermost node of a file covering a byte
// offset.
func NodeAt(c *corpus.Corpus, offset int, filename string) Collection {
	ref, err := c.NodeAt(offset, filename)
	if err != nil {
		return Collection{c: c, err: err}
	}
	return New(c, Node(ref))
}
