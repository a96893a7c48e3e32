package query

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/match"
	"github.com/npillmayer/splicer/selector"
	"github.com/npillmayer/splicer/tree"
)

// Collection is an ordered list of references to syntax nodes. It may contain
// duplicates.
type Collection struct {
	c    *corpus.Corpus
	refs []corpus.NodeRef
	err  error
}

// Err returns the first error encountered by a collection, if any.
func (col Collection) Err() error {
	return col.err
}

// Len returns the number of nodes in a collection.
func (col Collection) Len() int {
	return len(col.refs)
}

// Refs returns the nodes of a collection.
func (col Collection) Refs() []corpus.NodeRef {
	return col.refs
}

func (col Collection) String() string {
	if col.err != nil {
		return fmt.Sprintf("collection[error: %v]", col.err)
	}
	return fmt.Sprintf("collection%v", col.refs)
}

// derive creates a new collection with the same corpus.
func (col Collection) derive(refs []corpus.NodeRef) Collection {
	return Collection{c: col.c, refs: refs}
}

func (col Collection) failed(err error) Collection {
	tracer().Errorf("collection error: %v", err)
	return Collection{c: col.c, refs: col.refs, err: err}
}

// each calls f for every node of a collection, stopping at the first error.
// Stale references are skipped, like tombstones.
func (col Collection) each(f func(u *corpus.Unit, id tree.NodeID) error) error {
	for _, ref := range col.refs {
		u, err := col.c.Resolve(ref)
		if errors.Is(err, splicer.ErrStale) {
			tracer().Debugf("skipping %v", err)
			continue
		} else if err != nil {
			return err
		}
		if err = f(u, ref.ID); err != nil {
			return err
		}
	}
	return nil
}

// read is each for accessors which return plain values. A collection cannot
// record an error from a read, so the error is traced and the nodes up to the
// failing one are used.
func (col Collection) read(f func(u *corpus.Unit, id tree.NodeID) error) {
	if err := col.each(f); err != nil {
		tracer().Errorf("reading collection: %v", err)
	}
}

// --- Navigation ------------------------------------------------------------

// Find selects the nodes matching a selector pattern within the subtrees of a
// collection's nodes.
func (col Collection) Find(pattern string) Collection {
	if col.err != nil {
		return col
	}
	sel, err := selector.Compile(pattern)
	if err != nil {
		return col.failed(err)
	}
	found := match.New(sel).Find(col.c, col.refs)
	tracer().Infof("find %q: %d of %d nodes", pattern, len(found), len(col.refs))
	return col.derive(found)
}

// Parent selects the parent of every node. Root nodes are their own parents.
func (col Collection) Parent() Collection {
	return col.ParentN(1)
}

// ParentN goes up n generations for every node, stopping at the root.
func (col Collection) ParentN(n int) Collection {
	if col.err != nil {
		return col
	}
	var parents []corpus.NodeRef
	err := col.each(func(u *corpus.Unit, id tree.NodeID) error {
		for i := 0; i < n; i++ {
			if p := u.Tree().Parent(id); p != tree.None {
				id = p
			}
		}
		parents = append(parents, u.Ref(id))
		return nil
	})
	if err != nil {
		return col.failed(err)
	}
	return col.derive(parents)
}

// ParentMatching selects for every node the nearest ancestor matching a selector
// pattern. If no ancestor matches, the root is selected.
func (col Collection) ParentMatching(pattern string) Collection {
	if col.err != nil {
		return col
	}
	sel, err := selector.Compile(pattern)
	if err != nil {
		return col.failed(err)
	}
	m := match.New(sel)
	var parents []corpus.NodeRef
	err = col.each(func(u *corpus.Unit, id tree.NodeID) error {
		t := u.Tree()
		found := t.Root()
		for _, a := range t.Ancestors(id) {
			if m.Matches(u, a) {
				found = a
				break
			}
		}
		parents = append(parents, u.Ref(found))
		return nil
	})
	if err != nil {
		return col.failed(err)
	}
	return col.derive(parents)
}

// Children selects the direct children of every node.
func (col Collection) Children() Collection {
	if col.err != nil {
		return col
	}
	var children []corpus.NodeRef
	err := col.each(func(u *corpus.Unit, id tree.NodeID) error {
		for _, ch := range u.Tree().Children(id) {
			children = append(children, u.Ref(ch))
		}
		return nil
	})
	if err != nil {
		return col.failed(err)
	}
	return col.derive(children)
}

// ChildrenMatching selects the direct children of every node which match a
// selector pattern.
func (col Collection) ChildrenMatching(pattern string) Collection {
	children := col.Children()
	if children.err != nil {
		return children
	}
	sel, err := selector.Compile(pattern)
	if err != nil {
		return col.failed(err)
	}
	m := match.New(sel)
	return children.Filter(func(child Collection, i int) bool {
		u, err := col.c.Resolve(child.refs[0])
		return err == nil && m.Matches(u, child.refs[0].ID)
	})
}

// Eq selects the i-th node of a collection. The result is empty if i is out
// of range.
func (col Collection) Eq(i int) Collection {
	if col.err != nil {
		return col
	}
	if i < 0 || i >= len(col.refs) {
		return col.derive(nil)
	}
	return col.derive([]corpus.NodeRef{col.refs[i]})
}

// Each calls f for every node of a collection, wrapped in a collection of its own.
func (col Collection) Each(f func(node Collection, i int)) Collection {
	if col.err != nil {
		return col
	}
	for i, ref := range col.refs {
		f(col.derive([]corpus.NodeRef{ref}), i)
	}
	return col
}

// Filter selects the nodes of a collection for which f returns true.
func (col Collection) Filter(f func(node Collection, i int) bool) Collection {
	if col.err != nil {
		return col
	}
	var filtered []corpus.NodeRef
	for i, ref := range col.refs {
		if f(col.derive([]corpus.NodeRef{ref}), i) {
			filtered = append(filtered, ref)
		}
	}
	return col.derive(filtered)
}

// Map calls f for every node of a collection and returns the results.
func Map[T any](col Collection, f func(node Collection, i int) T) []T {
	if col.err != nil {
		return nil
	}
	results := make([]T, 0, len(col.refs))
	for i, ref := range col.refs {
		results = append(results, f(col.derive([]corpus.NodeRef{ref}), i))
	}
	return results
}

// --- Reading ---------------------------------------------------------------

// Text returns the concatenated text of all nodes. Tombstoned nodes and stale
// references contribute nothing. Reading stops at a node of an unknown file.
func (col Collection) Text() string {
	if col.err != nil {
		return ""
	}
	var b strings.Builder
	col.read(func(u *corpus.Unit, id tree.NodeID) error {
		b.WriteString(u.TextOf(id))
		return nil
	})
	return b.String()
}

// Name returns the concatenated names of all nodes. Nodes without a name
// contribute nothing. Reading stops at a node of an unknown file.
func (col Collection) Name() string {
	if col.err != nil {
		return ""
	}
	var b strings.Builder
	col.read(func(u *corpus.Unit, id tree.NodeID) error {
		if name := match.NameOf(u, id); name != tree.None {
			b.WriteString(u.TextOf(name))
		}
		return nil
	})
	return b.String()
}

// Type returns the kind of the first node, or the empty string for empty collections.
func (col Collection) Type() string {
	if len(col.refs) == 0 {
		return ""
	}
	u, err := col.c.Resolve(col.refs[0])
	if err != nil {
		return ""
	}
	return u.Tree().Kind(col.refs[0].ID)
}

// FileName returns the file name of the first node.
func (col Collection) FileName() string {
	if len(col.refs) == 0 {
		return ""
	}
	return col.refs[0].File
}

// Attr returns an attribute of the first node:
//
//   - "type":  the kind, as a string
//   - "range": the span, as a splicer.Span
//   - "start", "end": span positions, as int
//   - "text":  the text, as a string
//
// Any other key is interpreted as a field name, and the children of the first
// node in this field are returned as a Collection. Attr returns nil if the key
// does not apply.
func (col Collection) Attr(key string) interface{} {
	if len(col.refs) == 0 {
		return nil
	}
	ref := col.refs[0]
	u, err := col.c.Resolve(ref)
	if err != nil {
		return nil
	}
	t := u.Tree()
	switch key {
	case "type":
		return t.Kind(ref.ID)
	case "range":
		return t.Span(ref.ID)
	case "start":
		return t.Span(ref.ID).From()
	case "end":
		return t.Span(ref.ID).To()
	case "text":
		return u.TextOf(ref.ID)
	}
	kids := t.Field(ref.ID, key)
	if kids == nil {
		return nil
	}
	refs := make([]corpus.NodeRef, len(kids))
	for i, k := range kids {
		refs[i] = u.Ref(k)
	}
	return col.derive(refs)
}

// Lines counts the distinct source lines the nodes of a collection cover.
// Counting stops at a node of an unknown file.
func (col Collection) Lines() int {
	if col.err != nil {
		return 0
	}
	lines := treeset.NewWithStringComparator()
	col.read(func(u *corpus.Unit, id tree.NodeID) error {
		if u.Tree().IsDead(id) {
			return nil
		}
		span := u.Tree().Span(id)
		for l := u.LineOf(span.From()); l <= u.LineOf(span.To()); l++ {
			lines.Add(fmt.Sprintf("%s:%d", u.Name(), l))
		}
		return nil
	})
	return lines.Size()
}
