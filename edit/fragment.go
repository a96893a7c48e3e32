package edit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/grammar"
	"github.com/npillmayer/splicer/tree"
)

// fragment is a parsed piece of text, ready to be grafted.
type fragment struct {
	tree   *tree.Tree
	nodes  []tree.NodeID // nodes representing the text
	offset int           // add the position of the text in the unit to get real spans
}

// parseFragment parses text for the place given by slot. target is the kind of
// the node at slot, i.e., the node to be replaced or the sibling of an insertion.
func parseFragment(u *corpus.Unit, slot tree.Slot, target string, text string) (fragment, error) {
	t := u.Tree()
	syn := u.Syntax()
	parent := t.Kind(slot.Parent)
	ctx := syn.ContextFor(parent, t.FieldOf(slot).Name)
	body, lead := trimFragment(text, ctx.Trim)
	prefix, suffix := ctx.Prefix, ctx.Suffix
	if ctx.Delimit {
		if enclosing := u.TextOf(slot.Parent); len(enclosing) >= 2 {
			prefix, suffix = enclosing[:1], enclosing[len(enclosing)-1:]
		}
	}
	src := prefix + body + suffix
	ft, err := u.Grammar().Parse([]byte(src))
	if err != nil {
		return fragment{}, fmt.Errorf("fragment %q as %s: %w", text, ctx.Name, err)
	}
	holder := ft.Root()
	for _, kind := range ctx.Unwrap {
		next := ft.FirstChildOfKind(holder, kind)
		if next == tree.None {
			return fragment{}, fmt.Errorf("%w: fragment %q is not valid as %s, no %s found",
				splicer.ErrSyntax, text, ctx.Name, kind)
		}
		holder = next
	}
	var nodes []tree.NodeID
	if ctx.Holder == grammar.Any {
		nodes = ft.Children(holder)
	} else {
		nodes = ft.Field(holder, ctx.Holder)
	}
	if ctx.Max > 0 && len(nodes) > ctx.Max {
		return fragment{}, fmt.Errorf("%w: fragment %q results in %d nodes as %s, max. %d allowed",
			splicer.ErrUnsupported, text, len(nodes), ctx.Name, ctx.Max)
	}
	if lift(ft, syn, ctx, nodes, parent, target) {
		nodes = ft.Children(nodes[0])
	}
	tracer().Debugf("fragment %q parsed as %s into %d node(s)", text, ctx.Name, len(nodes))
	return fragment{
		tree:   ft,
		nodes:  nodes,
		offset: lead - len(prefix),
	}, nil
}

// retype gives a single identifier-like fragment node the kind of the identifier
// it replaces. Out of context, names parse as plain identifiers.
func (frag fragment) retype(syn *grammar.Syntax, target string) {
	if len(frag.nodes) != 1 || !syn.IsIdentifier(target) {
		return
	}
	if n := frag.nodes[0]; syn.IsIdentifier(frag.tree.Kind(n)) && frag.tree.Kind(n) != target {
		tracer().Debugf("fragment node %s takes kind %s", frag.tree.Kind(n), target)
		frag.tree.SetKind(n, target)
	}
}

// lift decides if a single wrapper node should be replaced by its only child. This
// is the case for a lone expression statement going into an expression slot.
func lift(ft *tree.Tree, syn *grammar.Syntax, ctx grammar.InsertionContext, nodes []tree.NodeID,
	parent, target string) bool {
	//
	if ctx.Lift == "" || len(nodes) != 1 || ft.Kind(nodes[0]) != ctx.Lift {
		return false
	}
	if syn.IsBlock(parent) || syn.IsStatement(target) {
		return false
	}
	return len(ft.Children(nodes[0])) == 1
}

// trimFragment strips whitespace and separator characters from both ends of a
// fragment. It returns the remaining body and the number of bytes stripped from
// the front. Without separators, text is left alone.
func trimFragment(text string, separators string) (string, int) {
	if separators == "" {
		return text, 0
	}
	strip := func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
	}
	body := strings.TrimLeftFunc(text, strip)
	lead := len(text) - len(body)
	return strings.TrimRightFunc(body, strip), lead
}
