package query

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/edit"
	"github.com/npillmayer/splicer/match"
	"github.com/npillmayer/splicer/tree"
)

// mutate applies an edit to every node. Edits of tombstoned nodes are ignored.
func (col Collection) mutate(f func(u *corpus.Unit, id tree.NodeID) error) Collection {
	if col.err != nil {
		return col
	}
	if err := col.each(f); err != nil {
		return col.failed(err)
	}
	return col
}

// SetText replaces the text of every node.
func (col Collection) SetText(text string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		return edit.Replace(u, id, text)
	})
}

// UpdateText replaces the text of every node with the result of calling f with
// the node's current text.
func (col Collection) UpdateText(f func(string) string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		if u.Tree().IsDead(id) {
			return nil
		}
		return edit.Replace(u, id, f(u.TextOf(id)))
	})
}

// SetName renames every node. Nodes without a name are left alone.
func (col Collection) SetName(name string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		if n := match.NameOf(u, id); n != tree.None {
			return edit.Replace(u, n, name)
		}
		return nil
	})
}

// UpdateName renames every node with the result of calling f with the node's
// current name. Nodes without a name are left alone.
func (col Collection) UpdateName(f func(string) string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		if n := match.NameOf(u, id); n != tree.None {
			return edit.Replace(u, n, f(u.TextOf(n)))
		}
		return nil
	})
}

// Before inserts text in front of every node.
func (col Collection) Before(text string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		return edit.Insert(u, id, text, edit.Before)
	})
}

// After inserts text behind every node.
func (col Collection) After(text string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		return edit.Insert(u, id, text, edit.After)
	})
}

// Prepend inserts text in front of the first child of every node. Nodes without
// children are skipped.
func (col Collection) Prepend(text string) Collection {
	return col.InsertAt(0, text)
}

// Append inserts text behind the last child of every node. Nodes without
// children are skipped.
func (col Collection) Append(text string) Collection {
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		children := u.Tree().Children(id)
		if len(children) == 0 {
			return nil
		}
		return edit.Insert(u, children[len(children)-1], text, edit.After)
	})
}

// InsertAt inserts text in front of the i-th child of every node. For nodes with
// i or fewer children, InsertAt behaves like Append. Nodes without children are
// skipped.
func (col Collection) InsertAt(i int, text string) Collection {
	if i < 0 {
		i = 0
	}
	return col.mutate(func(u *corpus.Unit, id tree.NodeID) error {
		children := u.Tree().Children(id)
		if len(children) == 0 {
			return nil
		}
		if i >= len(children) {
			return edit.Insert(u, children[len(children)-1], text, edit.After)
		}
		return edit.Insert(u, children[i], text, edit.Before)
	})
}

// ToNewFile moves the text of a collection's nodes into a new file. The nodes'
// text is removed from their files. Returns a collection with the root of the
// new file. The new file may replace an existing one, but not a file holding
// nodes of the collection.
func (col Collection) ToNewFile(filename string) Collection {
	if col.err != nil {
		return col
	}
	for _, ref := range col.refs {
		if ref.File == filename {
			return col.failed(fmt.Errorf("%w: cannot move %v into its own file",
				splicer.ErrStructure, ref))
		}
	}
	text := col.Text()
	u, err := col.c.Add(filename, text)
	if err != nil {
		return col.failed(err)
	}
	if moved := col.SetText(""); moved.err != nil {
		return moved
	}
	tracer().Infof("moved %d bytes to new file %s", len(text), filename)
	return New(col.c, Node(u.Root()))
}
