package selector

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
)

// Constraint is a condition on a single node. An empty Kind is satisfied by
// identifier-like nodes. If Named is set, the node's name has to equal Name.
type Constraint struct {
	Kind  string
	Name  string
	Named bool
}

func (c Constraint) String() string {
	if c.Named {
		return c.Kind + "." + c.Name
	}
	return c.Kind
}

// Path is a sequence of constraints, from outermost to innermost. The last
// constraint applies to the target node.
type Path []Constraint

// Target returns the innermost constraint of a path.
func (p Path) Target() Constraint {
	return p[len(p)-1]
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Selector is a list of alternative paths. Every path of a compiled selector
// holds at least one constraint.
type Selector []Path

// String renders a selector in canonical form.
func (sel Selector) String() string {
	parts := make([]string, len(sel))
	for i, p := range sel {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// Compile compiles a selector pattern. Malformed patterns result in an error
// wrapping splicer.ErrSelector.
func Compile(pattern string) (Selector, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	var sel Selector
	var path Path
	var word []token // tokens of the current constraint
	endWord := func() error {
		if len(word) == 0 {
			return nil
		}
		c, err := constraintOf(word, pattern)
		if err != nil {
			return err
		}
		path = append(path, c)
		word = word[:0]
		return nil
	}
	endPath := func(at int) error {
		if err := endWord(); err != nil {
			return err
		}
		if len(path) == 0 {
			return fmt.Errorf("%w: empty alternative at position %d of %q", splicer.ErrSelector, at, pattern)
		}
		sel = append(sel, path)
		path = nil
		return nil
	}
	for _, tok := range tokens {
		switch tok.TokType() {
		case SPACE:
			err = endWord()
		case COMMA:
			err = endPath(tok.Span().From())
		default:
			word = append(word, tok)
		}
		if err != nil {
			return nil, err
		}
	}
	if err = endPath(len(pattern)); err != nil {
		return nil, err
	}
	tracer().Debugf("compiled selector %q into %d path(s)", pattern, len(sel))
	return sel, nil
}

// MustCompile is like Compile, but panics on malformed patterns. It is intended
// for patterns known at compile time.
func MustCompile(pattern string) Selector {
	sel, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return sel
}

// constraintOf converts a run of IDENT and DOT tokens into a constraint. Valid
// forms are Kind, Kind.Name and .Name.
func constraintOf(word []token, pattern string) (Constraint, error) {
	shape := make([]splicer.TokType, len(word))
	for i, t := range word {
		shape[i] = t.TokType()
	}
	switch {
	case len(word) == 1 && shape[0] == IDENT:
		return Constraint{Kind: word[0].Lexeme()}, nil
	case len(word) == 2 && shape[0] == DOT && shape[1] == IDENT:
		return Constraint{Name: word[1].Lexeme(), Named: true}, nil
	case len(word) == 3 && shape[0] == IDENT && shape[1] == DOT && shape[2] == IDENT:
		return Constraint{Kind: word[0].Lexeme(), Name: word[2].Lexeme(), Named: true}, nil
	}
	from, to := word[0].Span().From(), word[len(word)-1].Span().To()
	return Constraint{}, fmt.Errorf("%w: malformed constraint %q at position %d",
		splicer.ErrSelector, pattern[from:to], from)
}
