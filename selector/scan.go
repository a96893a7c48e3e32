package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/splicer"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of selector patterns.
const (
	SPACE splicer.TokType = iota + 1
	DOT
	COMMA
	IDENT
)

var tokenNames = map[splicer.TokType]string{
	SPACE: "SPACE",
	DOT:   "DOT",
	COMMA: "COMMA",
	IDENT: "IDENT",
}

// token is the splicer.Token implementation of this package.
type token struct {
	typ    splicer.TokType
	lexeme string
	span   splicer.Span
}

func (t token) TokType() splicer.TokType { return t.typ }
func (t token) Lexeme() string           { return t.lexeme }
func (t token) Span() splicer.Span       { return t.span }

func (t token) String() string {
	return fmt.Sprintf("%s(%q)%v", tokenNames[t.typ], t.lexeme, t.span)
}

var _ splicer.Token = token{}

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once // monitors one-time DFA construction
)

func selectorLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), makeToken(SPACE))
		lexer.Add([]byte(`\.`), makeToken(DOT))
		lexer.Add([]byte(`,`), makeToken(COMMA))
		lexer.Add([]byte(`[^ \t\n\r\.,]+`), makeToken(IDENT))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling selector DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ splicer.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// tokenize splits a selector pattern into tokens.
func tokenize(pattern string) ([]token, error) {
	lx, err := selectorLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", splicer.ErrSelector, err)
	}
	var tokens []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("%w: unexpected input at position %d of %q",
					splicer.ErrSelector, ui.FailTC, pattern)
			}
			return nil, fmt.Errorf("%w: %v", splicer.ErrSelector, err)
		}
		lt := tok.(*lexmachine.Token)
		t := token{
			typ:    splicer.TokType(lt.Type),
			lexeme: string(lt.Lexeme),
			span:   splicer.Span{lt.TC, lt.TC + len(lt.Lexeme)},
		}
		tracer().Debugf("selector token %v", t)
		tokens = append(tokens, t)
	}
	return tokens, nil
}
