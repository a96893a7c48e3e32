package edit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/tree"
)

func load(t *testing.T, src string) (*corpus.Corpus, *corpus.Unit) {
	c := corpus.New()
	if diags := c.Load(map[string]string{"test.tsx": src}); len(diags) > 0 {
		t.Fatalf("cannot load test source: %v", diags)
	}
	u, _ := c.Unit("test.tsx")
	return c, u
}

// nth returns the n-th node of a kind, in pre-order, starting with 0.
func nth(u *corpus.Unit, kind string, n int) tree.NodeID {
	found := tree.None
	t := u.Tree()
	t.Walk(t.Root(), func(id tree.NodeID, depth int) bool {
		if found == tree.None && !t.IsDead(id) && t.Kind(id) == kind {
			if n == 0 {
				found = id
			}
			n--
		}
		return !t.IsDead(id)
	})
	return found
}

func first(u *corpus.Unit, kind string) tree.NodeID {
	return nth(u, kind, 0)
}

func spans(u *corpus.Unit) map[tree.NodeID]splicer.Span {
	m := make(map[tree.NodeID]splicer.Span)
	t := u.Tree()
	t.Walk(t.Root(), func(id tree.NodeID, depth int) bool {
		m[id] = t.Span(id)
		return true
	})
	return m
}

// checkConsistency re-parses the unit's text and compares node kinds and spans.
func checkConsistency(t *testing.T, u *corpus.Unit) {
	fresh, err := u.Grammar().Parse([]byte(u.Text()))
	if err != nil {
		t.Fatalf("text after edit does not parse: %v", err)
	}
	dump := func(tr *tree.Tree) []string {
		var nodes []string
		tr.Walk(tr.Root(), func(id tree.NodeID, depth int) bool {
			nodes = append(nodes, tr.Kind(id)+tr.Span(id).String())
			return true
		})
		return nodes
	}
	if diff := cmp.Diff(dump(fresh), dump(u.Tree())); diff != "" {
		t.Errorf("tree differs from fresh parse (-fresh +edited):\n%s", diff)
	}
}

func TestFixedLengthReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "let a = 1; let b = 2;")
	id := first(u, "identifier")
	before := spans(u)
	if err := Replace(u, id, "z"); err != nil {
		t.Fatal(err)
	}
	if u.Text() != "let z = 1; let b = 2;" {
		t.Errorf("unexpected text %q", u.Text())
	}
	after := spans(u)
	for n, span := range before {
		if n == id {
			continue
		}
		if after[n] != span {
			t.Errorf("span of node %d changed from %v to %v", n, span, after[n])
		}
	}
	checkConsistency(t, u)
}

func TestAncestorsGrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "a;b;")
	tr := u.Tree()
	a := first(u, "identifier")
	stmt1, stmt2 := nth(u, "expression_statement", 0), nth(u, "expression_statement", 1)
	if err := Replace(u, a, "aaa"); err != nil {
		t.Fatal(err)
	}
	if u.Text() != "aaa;b;" {
		t.Errorf("unexpected text %q", u.Text())
	}
	if tr.Span(stmt1) != (splicer.Span{0, 4}) {
		t.Errorf("expected enclosing statement to grow to (0…4), is %v", tr.Span(stmt1))
	}
	if u.TextOf(stmt2) != "b;" {
		t.Errorf("expected adjacent statement to move as a whole, text is %q", u.TextOf(stmt2))
	}
	if tr.Span(tr.Root()) != (splicer.Span{0, 6}) {
		t.Errorf("expected root to span complete text, is %v", tr.Span(tr.Root()))
	}
	checkConsistency(t, u)
}

func TestTombstones(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "f(x + y);")
	bin := first(u, "binary_expression")
	x := nth(u, "identifier", 1)
	if err := Replace(u, bin, "z"); err != nil {
		t.Fatal(err)
	}
	if !u.Tree().IsDead(bin) || !u.Tree().IsDead(x) {
		t.Errorf("expected replaced subtree to be tombstoned")
	}
	if err := Replace(u, bin, "nothing"); err != nil {
		t.Errorf("expected replacing a tombstoned node to be a no-op, have error %v", err)
	}
	if err := Insert(u, bin, "nothing", After); err != nil {
		t.Errorf("expected inserting next to a tombstoned node to be a no-op, have error %v", err)
	}
	if u.Text() != "f(z);" {
		t.Errorf("unexpected text %q", u.Text())
	}
	if u.TextOf(bin) != "" || u.TextOf(x) != "" {
		t.Errorf("expected tombstoned nodes to have no text")
	}
	checkConsistency(t, u)
}

func TestObjectMembers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "const a = {x: 1, y: 2}")
	x := first(u, "pair")
	if err := Insert(u, x, ", z: 3", After); err != nil {
		t.Fatal(err)
	}
	if u.Text() != "const a = {x: 1, z: 3, y: 2}" {
		t.Errorf("unexpected text %q", u.Text())
	}
	var members []string
	for _, m := range u.Tree().Children(first(u, "object")) {
		members = append(members, u.TextOf(m))
	}
	if diff := cmp.Diff([]string{"x: 1", "z: 3", "y: 2"}, members); diff != "" {
		t.Errorf("unexpected object members (-want +got):\n%s", diff)
	}
	if err := Replace(u, nth(u, "pair", 2), "w"); err != nil {
		t.Fatal(err)
	}
	if kind := u.Tree().Kind(u.Tree().Children(first(u, "object"))[2]); kind != "shorthand_property_identifier" {
		t.Errorf("expected shorthand property, have %s", kind)
	}
	checkConsistency(t, u)
}

func TestJSX(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, `const e = <div a="1">hello</div>;`)
	attr := first(u, "jsx_attribute")
	if err := Insert(u, attr, ` b={2}`, After); err != nil {
		t.Fatal(err)
	}
	open := first(u, "jsx_opening_element")
	if attrs := u.Tree().Field(open, "attribute"); len(attrs) != 2 || u.TextOf(attrs[1]) != "b={2}" {
		t.Errorf("expected second attribute b={2}, have %d attributes", len(attrs))
	}
	if err := Replace(u, first(u, "jsx_text"), "<span/>"); err != nil {
		t.Fatal(err)
	}
	if u.Text() != `const e = <div a="1" b={2}><span/></div>;` {
		t.Errorf("unexpected text %q", u.Text())
	}
	if span := first(u, "jsx_self_closing_element"); span == tree.None || u.TextOf(span) != "<span/>" {
		t.Errorf("expected new child element <span/>")
	}
	checkConsistency(t, u)
}

func TestTemplateSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	c, u := load(t, "let s = `a${b}c`;")
	sub := first(u, "template_substitution")
	if err := Replace(u, sub, "${d}"); err != nil {
		t.Fatal(err)
	}
	if u.Text() != "let s = `a${d}c`;" {
		t.Errorf("unexpected text %q", u.Text())
	}
	fp, _ := c.Fingerprint("test.tsx")
	err := Replace(u, first(u, "template_substitution"), "${x}${y}")
	if !errors.Is(err, splicer.ErrUnsupported) {
		t.Errorf("expected multi-segment replacement to be unsupported, error is %v", err)
	}
	if fp2, _ := c.Fingerprint("test.tsx"); fp2 != fp {
		t.Errorf("expected failing edit to leave unit untouched")
	}
	checkConsistency(t, u)
}

func TestArgumentsAndClassMembers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "f(a);\nclass A {\n  m() {}\n}\n")
	if err := Insert(u, nth(u, "identifier", 1), "b, ", Before); err != nil {
		t.Fatal(err)
	}
	args := first(u, "arguments")
	if n := len(u.Tree().Children(args)); n != 2 {
		t.Errorf("expected 2 arguments, have %d", n)
	}
	if err := Insert(u, first(u, "method_definition"), "\n  n() { return 1 }", After); err != nil {
		t.Fatal(err)
	}
	if u.Text() != "f(b, a);\nclass A {\n  m() {}\n  n() { return 1 }\n}\n" {
		t.Errorf("unexpected text %q", u.Text())
	}
	if m := nth(u, "method_definition", 1); m == tree.None || u.TextOf(m) != "n() { return 1 }" {
		t.Errorf("expected new method n")
	}
	checkConsistency(t, u)
}

func TestStatementsAndExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "x = a;\n")
	assign := first(u, "assignment_expression")
	if err := Replace(u, u.Tree().Field(assign, "right")[0], "b + c"); err != nil {
		t.Fatal(err)
	}
	right := u.Tree().Field(assign, "right")
	if len(right) != 1 || u.Tree().Kind(right[0]) != "binary_expression" {
		t.Errorf("expected expression statement to be lifted to binary expression")
	}
	if err := Insert(u, first(u, "expression_statement"), "let y = 1;\n", Before); err != nil {
		t.Fatal(err)
	}
	stmts := u.Tree().Children(u.Tree().Root())
	if len(stmts) != 2 || u.Tree().Kind(stmts[0]) != "lexical_declaration" {
		t.Errorf("expected a declaration in front of the assignment")
	}
	if u.Text() != "let y = 1;\nx = b + c;\n" {
		t.Errorf("unexpected text %q", u.Text())
	}
	checkConsistency(t, u)
}

func TestFailingEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	c, u := load(t, "let a = 1;")
	fp, _ := c.Fingerprint("test.tsx")
	if err := Replace(u, first(u, "number"), "((("); !errors.Is(err, splicer.ErrSyntax) {
		t.Errorf("expected syntax error, have %v", err)
	}
	if err := Insert(u, first(u, "lexical_declaration"), "let = ;", After); !errors.Is(err, splicer.ErrSyntax) {
		t.Errorf("expected syntax error, have %v", err)
	}
	if err := Replace(u, u.Tree().Root(), ""); !errors.Is(err, splicer.ErrDetached) {
		t.Errorf("expected root to be irreplaceable, error is %v", err)
	}
	if fp2, _ := c.Fingerprint("test.tsx"); fp2 != fp || u.Text() != "let a = 1;" {
		t.Errorf("expected failing edits to leave unit untouched")
	}
}

func TestRenameKeepsIdentifierKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "const o = {x: 1, y: 2}; o.x = 3;")
	key := first(u, "property_identifier")
	if err := Replace(u, key, "z"); err != nil {
		t.Fatal(err)
	}
	member := nth(u, "property_identifier", 2)
	if err := Replace(u, member, "z"); err != nil {
		t.Fatal(err)
	}
	if u.Text() != "const o = {z: 1, y: 2}; o.z = 3;" {
		t.Errorf("unexpected text %q", u.Text())
	}
	if kind := u.Tree().Kind(nth(u, "property_identifier", 0)); kind != "property_identifier" {
		t.Errorf("expected renamed key to stay a property identifier, is %s", kind)
	}
	checkConsistency(t, u)
}

func TestStringContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.edit")
	defer teardown()
	//
	_, u := load(t, "const a = \"hi\";\nconst b = 'yo';\n")
	if err := Replace(u, first(u, "string_fragment"), "hello world"); err != nil {
		t.Fatal(err)
	}
	if err := Replace(u, nth(u, "string_fragment", 1), "say \"cheese\""); err != nil {
		t.Fatal(err)
	}
	expected := "const a = \"hello world\";\nconst b = 'say \"cheese\"';\n"
	if u.Text() != expected {
		t.Errorf("unexpected text %q", u.Text())
	}
	checkConsistency(t, u)
	// the enclosing quote ends the fragment early
	if err := Replace(u, nth(u, "string_fragment", 1), "it's"); !errors.Is(err, splicer.ErrSyntax) {
		t.Errorf("expected syntax error for unbalanced quote, have %v", err)
	}
	if u.Text() != expected {
		t.Errorf("expected failing edit to leave text untouched, is %q", u.Text())
	}
}
