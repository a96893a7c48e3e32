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
)

// NodeID is a handle for a node within a tree's arena. Handles are stable for the
// lifetime of a tree.
type NodeID int32

// None is the null handle, used e.g. as the parent of a root node.
const None NodeID = -1

// Field is a child-bearing property of a node.
type Field struct {
	Name  string   // label of the field, "" for unlabeled children
	Multi bool     // is this a sequence of children?
	Kids  []NodeID // children in source order
}

type node struct {
	kind   string
	span   splicer.Span
	parent NodeID
	fields []Field
	dead   bool // tombstone
}

// Tree is an arena of syntax nodes. The zero value is not usable, create trees
// with New.
type Tree struct {
	nodes []node
	root  NodeID
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{
		nodes: make([]node, 0, 64),
		root:  None,
	}
}

// Add creates a new node without a parent. Clients will have to Attach it.
func (t *Tree) Add(kind string, span splicer.Span) NodeID {
	t.nodes = append(t.nodes, node{
		kind:   kind,
		span:   span,
		parent: None,
	})
	return NodeID(len(t.nodes) - 1)
}

// Attach appends child to a field of parent. If the field does not yet exist, it
// will be created. A field receiving its second child is turned into a sequence.
func (t *Tree) Attach(parent NodeID, field string, multi bool, child NodeID) {
	if !t.Valid(parent) || !t.Valid(child) {
		panic(fmt.Errorf("cannot attach node %d to node %d", child, parent))
	}
	p := &t.nodes[parent]
	t.nodes[child].parent = parent
	for i := range p.fields {
		if p.fields[i].Name == field {
			p.fields[i].Kids = append(p.fields[i].Kids, child)
			p.fields[i].Multi = true
			return
		}
	}
	p.fields = append(p.fields, Field{
		Name:  field,
		Multi: multi,
		Kids:  []NodeID{child},
	})
}

// SetRoot marks a node as the root of the tree.
func (t *Tree) SetRoot(id NodeID) {
	t.root = id
}

// Root returns the root node of the tree, or None for an empty tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of node slots in the arena, including dead ones.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Valid checks if id is a handle into t's arena.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// IsDead returns true for tombstoned nodes and for invalid handles.
func (t *Tree) IsDead(id NodeID) bool {
	if !t.Valid(id) {
		return true
	}
	return t.nodes[id].dead
}

// Kind returns the grammar's type name for a node.
func (t *Tree) Kind(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	return t.nodes[id].kind
}

// Span returns the byte span of a node. The span of a dead node is meaningless.
func (t *Tree) Span(id NodeID) splicer.Span {
	if !t.Valid(id) {
		return splicer.Span{}
	}
	return t.nodes[id].span
}

// SetKind overwrites the kind of a node.
func (t *Tree) SetKind(id NodeID, kind string) {
	if t.Valid(id) {
		t.nodes[id].kind = kind
	}
}

// SetSpan overwrites the span of a node.
func (t *Tree) SetSpan(id NodeID, span splicer.Span) {
	if t.Valid(id) {
		t.nodes[id].span = span
	}
}

// Parent returns the structural parent of a node, or None.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return None
	}
	return t.nodes[id].parent
}

// Fields returns the child-bearing fields of a node. Clients must not modify
// the result.
func (t *Tree) Fields(id NodeID) []Field {
	if !t.Valid(id) {
		return nil
	}
	return t.nodes[id].fields
}

// Field returns the children of a node stored under a given field name.
func (t *Tree) Field(id NodeID, name string) []NodeID {
	for _, f := range t.Fields(id) {
		if f.Name == name {
			return f.Kids
		}
	}
	return nil
}

// Children returns the direct children of a node, field by field.
func (t *Tree) Children(id NodeID) []NodeID {
	var children []NodeID
	for _, f := range t.Fields(id) {
		children = append(children, f.Kids...)
	}
	return children
}

// FirstChildOfKind returns the first direct child of a node with a given kind, or None.
func (t *Tree) FirstChildOfKind(id NodeID, kind string) NodeID {
	for _, ch := range t.Children(id) {
		if t.nodes[ch].kind == kind {
			return ch
		}
	}
	return None
}

func (t *Tree) String() string {
	return fmt.Sprintf("tree[%d nodes, root=%d]", len(t.nodes), t.root)
}
