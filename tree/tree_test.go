package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splicer"
)

// makeTree builds a tree for the input
//
//     let a; f(x); let b;
//     0123456789012345678
//
func makeTree() (*Tree, map[string]NodeID) {
	t := New()
	ids := make(map[string]NodeID)
	add := func(name, kind string, from, to int) NodeID {
		id := t.Add(kind, splicer.Span{from, to})
		ids[name] = id
		return id
	}
	root := add("root", "program", 0, 19)
	t.SetRoot(root)
	s1 := add("s1", "decl", 0, 6)
	t.Attach(root, "", true, s1)
	t.Attach(s1, "name", false, add("a", "identifier", 4, 5))
	s2 := add("s2", "stmt", 7, 12)
	t.Attach(root, "", true, s2)
	call := add("call", "call", 7, 11)
	t.Attach(s2, "", true, call)
	t.Attach(call, "function", false, add("f", "identifier", 7, 8))
	args := add("args", "arguments", 8, 11)
	t.Attach(call, "arguments", false, args)
	t.Attach(args, "", true, add("x", "identifier", 9, 10))
	s3 := add("s3", "decl", 13, 19)
	t.Attach(root, "", true, s3)
	t.Attach(s3, "name", false, add("b", "identifier", 17, 18))
	return t, ids
}

func TestWalkPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.tree")
	defer teardown()
	//
	tr, ids := makeTree()
	var kinds []string
	maxDepth := 0
	tr.Walk(tr.Root(), func(id NodeID, depth int) bool {
		kinds = append(kinds, tr.Kind(id))
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	expected := []string{"program", "decl", "identifier", "stmt", "call", "identifier",
		"arguments", "identifier", "decl", "identifier"}
	if diff := cmp.Diff(expected, kinds); diff != "" {
		t.Errorf("unexpected walk order (-want +got):\n%s", diff)
	}
	if maxDepth != 4 {
		t.Errorf("expected max depth of 4, is %d", maxDepth)
	}
	var skipped []NodeID
	tr.Walk(tr.Root(), func(id NodeID, depth int) bool {
		skipped = append(skipped, id)
		return id != ids["s2"]
	})
	if len(skipped) != 6 {
		t.Errorf("expected walk to skip children of s2, visited %d nodes", len(skipped))
	}
}

func TestAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.tree")
	defer teardown()
	//
	tr, ids := makeTree()
	chain := tr.Ancestors(ids["x"])
	expected := []NodeID{ids["args"], ids["call"], ids["s2"], ids["root"]}
	if diff := cmp.Diff(expected, chain); diff != "" {
		t.Errorf("unexpected ancestor chain (-want +got):\n%s", diff)
	}
	if !tr.IsAncestor(ids["call"], ids["x"]) || tr.IsAncestor(ids["s1"], ids["x"]) {
		t.Errorf("IsAncestor is broken")
	}
	if tr.Innermost(tr.Root(), 9) != ids["x"] {
		t.Errorf("expected x to be innermost node at offset 9, is %d", tr.Innermost(tr.Root(), 9))
	}
	if tr.Innermost(tr.Root(), 12) != tr.Root() {
		t.Errorf("expected root to be innermost node at offset 12")
	}
}

// Replacing "f" (7…8) with "foo" has to move the ancestors' end positions only, while
// "arguments" starts exactly at the end of "f" and has to move as a whole.
func TestRemapReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.tree")
	defer teardown()
	//
	tr, ids := makeTree()
	f := ids["f"]
	tr.Remap(tr.Parent(f), tr.Span(f).To(), 2)
	expect := map[string]splicer.Span{
		"root": {0, 21}, "s1": {0, 6}, "a": {4, 5}, "s2": {7, 14}, "call": {7, 13},
		"args": {10, 13}, "x": {11, 12}, "s3": {15, 21}, "b": {19, 20},
	}
	for name, span := range expect {
		if tr.Span(ids[name]) != span {
			t.Errorf("expected span of %s to be %v, is %v", name, span, tr.Span(ids[name]))
		}
	}
}

func TestRemapInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.tree")
	defer teardown()
	//
	tr, ids := makeTree()
	// insert 3 bytes after s1, at position 6
	tr.Remap(tr.Root(), 6, 3)
	expect := map[string]splicer.Span{
		"root": {0, 22}, "s1": {0, 6}, "a": {4, 5}, "s2": {10, 15}, "s3": {16, 22},
	}
	for name, span := range expect {
		if tr.Span(ids[name]) != span {
			t.Errorf("expected span of %s to be %v, is %v", name, span, tr.Span(ids[name]))
		}
	}
}

func TestKillAndSplice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.tree")
	defer teardown()
	//
	tr, ids := makeTree()
	slot, err := tr.SlotOf(ids["s2"])
	if err != nil {
		t.Fatal(err)
	}
	if slot.Parent != ids["root"] || slot.Index != 1 {
		t.Errorf("unexpected slot for s2: %+v", slot)
	}
	tr.Kill(ids["s2"])
	for _, name := range []string{"s2", "call", "f", "args", "x"} {
		if !tr.IsDead(ids[name]) {
			t.Errorf("expected %s to be tombstoned", name)
		}
	}
	if tr.IsDead(ids["s1"]) || tr.IsDead(ids["root"]) {
		t.Errorf("expected siblings and ancestors to be alive")
	}
	// fragment "g();" parsed at offset 0
	frag := New()
	fr := frag.Add("program", splicer.Span{0, 4})
	frag.SetRoot(fr)
	st := frag.Add("stmt", splicer.Span{0, 4})
	frag.Attach(fr, "", true, st)
	frag.Attach(st, "", true, frag.Add("call", splicer.Span{0, 3}))
	grafted := tr.Graft(frag, frag.Children(fr), slot.Parent, 7)
	if len(grafted) != 1 || tr.Span(grafted[0]) != (splicer.Span{7, 11}) {
		t.Fatalf("unexpected graft result %v", grafted)
	}
	if tr.Span(tr.Children(grafted[0])[0]) != (splicer.Span{7, 10}) {
		t.Errorf("expected grafted child to be shifted")
	}
	if err := tr.Splice(slot, slot.Index, 1, grafted); err != nil {
		t.Fatal(err)
	}
	children := tr.Children(tr.Root())
	if len(children) != 3 || children[1] != grafted[0] {
		t.Errorf("expected graft to take the place of s2, children are %v", children)
	}
	if tr.Parent(grafted[0]) != tr.Root() {
		t.Errorf("expected grafted node to be linked to root")
	}
	if _, err := tr.SlotOf(ids["s2"]); !errors.Is(err, splicer.ErrStructure) {
		t.Errorf("expected dead node to be missing from its parent, err = %v", err)
	}
	if _, err := tr.SlotOf(tr.Root()); !errors.Is(err, splicer.ErrDetached) {
		t.Errorf("expected root to be detached, err = %v", err)
	}
}

func TestAttachTurnsFieldIntoSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.tree")
	defer teardown()
	//
	tr := New()
	p := tr.Add("jsx_opening_element", splicer.Span{0, 10})
	tr.Attach(p, "attribute", false, tr.Add("jsx_attribute", splicer.Span{3, 5}))
	if tr.Fields(p)[0].Multi {
		t.Errorf("expected field with one child to be single-valued")
	}
	tr.Attach(p, "attribute", false, tr.Add("jsx_attribute", splicer.Span{6, 8}))
	if !tr.Fields(p)[0].Multi || len(tr.Field(p, "attribute")) != 2 {
		t.Errorf("expected field with two children to be a sequence")
	}
}
