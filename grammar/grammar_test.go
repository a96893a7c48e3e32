package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testSyntax() *Syntax {
	return &Syntax{
		Contexts: []InsertionContext{
			{Name: "member", Parents: []string{"object"}, Prefix: "({", Suffix: "})"},
			{Name: "attr", Parents: []string{"jsx_opening_element"}, Field: "attribute"},
		},
		Default:     InsertionContext{Name: "statement", Lift: "expression_statement"},
		Identifiers: []string{"identifier", "property_identifier"},
		Sequences:   map[string][]string{"jsx_opening_element": {"attribute"}},
		Aliases:     map[string][]string{"Property": {"pair"}},
		Blocks:      []string{"program"},
	}
}

func TestSnakeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.grammar")
	defer teardown()
	//
	for in, out := range map[string]string{
		"FunctionDeclaration": "function_declaration",
		"JSXElement":          "jsx_element",
		"JSXOpeningElement":   "jsx_opening_element",
		"Identifier":          "identifier",
		"pair":                "pair",
		"CallExpression":      "call_expression",
	} {
		if s := SnakeCase(in); s != out {
			t.Errorf("expected %s → %s, have %s", in, out, s)
		}
	}
}

func TestKindMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.grammar")
	defer teardown()
	//
	syn := testSyntax()
	cases := []struct {
		want, kind string
		ok         bool
	}{
		{"", "identifier", true},
		{"", "property_identifier", true},
		{"Identifier", "property_identifier", true},
		{"", "pair", false},
		{"pair", "pair", true},
		{"Property", "pair", true},
		{"Property", "object", false},
		{"FunctionDeclaration", "function_declaration", true},
		{"FunctionDeclaration", "function", false},
	}
	for _, c := range cases {
		if syn.KindMatches(c.want, c.kind) != c.ok {
			t.Errorf("expected KindMatches(%q, %q) = %v", c.want, c.kind, c.ok)
		}
	}
}

func TestContextSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splicer.grammar")
	defer teardown()
	//
	syn := testSyntax()
	if ctx := syn.ContextFor("object", ""); ctx.Name != "member" {
		t.Errorf("expected member context for object, have %q", ctx.Name)
	}
	if ctx := syn.ContextFor("jsx_opening_element", "attribute"); ctx.Name != "attr" {
		t.Errorf("expected attr context, have %q", ctx.Name)
	}
	if ctx := syn.ContextFor("jsx_opening_element", "name"); ctx.Name != "statement" {
		t.Errorf("expected default context for tag name, have %q", ctx.Name)
	}
	if !syn.IsSequence("jsx_opening_element", "attribute") || syn.IsSequence("pair", "key") {
		t.Errorf("sequence fields not recognized")
	}
	if !syn.IsSequence("pair", "") {
		t.Errorf("unnamed children should always be a sequence")
	}
	if !syn.IsBlock("program") || syn.IsBlock("object") {
		t.Errorf("block kinds not recognized")
	}
}
