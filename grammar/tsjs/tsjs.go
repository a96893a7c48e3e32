package tsjs

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/grammar"
	"github.com/npillmayer/splicer/tree"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Grammar is a tree-sitter based grammar. It implements grammar.Grammar.
// A Grammar holds a parser instance and is not safe for concurrent use.
type Grammar struct {
	name     string
	language *sitter.Language
	parser   *sitter.Parser
}

// TSX returns a grammar for TypeScript with JSX.
func TSX() *Grammar {
	return newGrammar("tsx", tsx.GetLanguage())
}

// TypeScript returns a grammar for TypeScript without JSX.
func TypeScript() *Grammar {
	return newGrammar("typescript", typescript.GetLanguage())
}

// JavaScript returns a grammar for JavaScript with JSX.
func JavaScript() *Grammar {
	return newGrammar("javascript", javascript.GetLanguage())
}

// ByName returns one of the grammars of this package by its name, which is one
// of "tsx", "typescript" (or "ts") and "javascript" (or "js", "jsx").
func ByName(name string) (*Grammar, error) {
	switch strings.ToLower(name) {
	case "tsx":
		return TSX(), nil
	case "typescript", "ts":
		return TypeScript(), nil
	case "javascript", "js", "jsx":
		return JavaScript(), nil
	}
	return nil, fmt.Errorf("no grammar named %q", name)
}

func newGrammar(name string, lang *sitter.Language) *Grammar {
	return &Grammar{name: name, language: lang}
}

// Name is part of interface grammar.Grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Syntax is part of interface grammar.Grammar.
func (g *Grammar) Syntax() *grammar.Syntax {
	return syntax
}

// Parse is part of interface grammar.Grammar.
// The root node of the resulting tree always spans the complete input, including
// leading and trailing whitespace.
func (g *Grammar) Parse(src []byte) (*tree.Tree, error) {
	if g.parser == nil {
		g.parser = sitter.NewParser()
		g.parser.SetLanguage(g.language)
	}
	st, err := g.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s parser failed: %v", splicer.ErrSyntax, g.name, err)
	}
	defer st.Close()
	root := st.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w: %s: %s", splicer.ErrSyntax, g.name, locateError(root, src))
	}
	t := convert(root, syntax)
	t.SetSpan(t.Root(), splicer.Span{0, len(src)})
	tracer().Debugf("%s parsed %d bytes into %d nodes", g.name, len(src), t.Len())
	return t, nil
}

var _ grammar.Grammar = &Grammar{}

// --- Conversion ------------------------------------------------------------

// convert copies the named nodes of a tree-sitter tree into an arena tree.
// Children are sorted into the fields the grammar labels them with; unlabeled
// children go to the unnamed field.
func convert(root *sitter.Node, syn *grammar.Syntax) *tree.Tree {
	t := tree.New()
	id := t.Add(root.Type(), spanOf(root))
	t.SetRoot(id)
	convertChildren(t, id, root, syn)
	return t
}

func convertChildren(t *tree.Tree, parent tree.NodeID, n *sitter.Node, syn *grammar.Syntax) {
	kind := n.Type()
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil || !c.IsNamed() {
			continue
		}
		field := n.FieldNameForChild(i)
		id := t.Add(c.Type(), spanOf(c))
		t.Attach(parent, field, syn.IsSequence(kind, field), id)
		convertChildren(t, id, c, syn)
	}
}

func spanOf(n *sitter.Node) splicer.Span {
	return splicer.Span{int(n.StartByte()), int(n.EndByte())}
}

// locateError finds the first erroneous node in pre-order and describes it.
func locateError(n *sitter.Node, src []byte) string {
	if bad := firstError(n); bad != nil {
		p := bad.StartPoint()
		if bad.IsMissing() {
			return fmt.Sprintf("missing %s at %d:%d", bad.Type(), p.Row+1, p.Column+1)
		}
		from, to := int(bad.StartByte()), int(bad.EndByte())
		if to-from > 20 {
			to = from + 20
		}
		return fmt.Sprintf("unexpected %q at %d:%d", src[from:to], p.Row+1, p.Column+1)
	}
	return "unknown syntax error"
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil {
			if bad := firstError(c); bad != nil {
				return bad
			}
		}
	}
	return n
}
