package splicer

import (
	"errors"
	"fmt"
)

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner.
//
// An example would be a token for a selector constraint:
//
//    TokType = Ident        // identifier for this kind of tokens (appliation specific)
//    Lexeme  = "pair"       // lexeme how it appreared in the input stream
//    Span    = 12…16        // occured from position 12 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of bytes in a source text. Every
// syntax node knows which bytes of its file it covers. A span denotes a start
// position and the position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull is true for (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Contains is true if offset lies within (x…y), excluding y.
func (s Span) Contains(offset int) bool {
	return s[0] <= offset && offset < s[1]
}

// Covers is true if other lies completely within s.
func (s Span) Covers(other Span) bool {
	return s[0] <= other[0] && other[1] <= s[1]
}

// Shift moves both positions of a span by delta.
func (s Span) Shift(delta int) Span {
	return Span{s[0] + delta, s[1] + delta}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Errors -----------------------------------------------------------

// Error kinds. Errors returned from the packages of this module wrap one of these,
// clients should test with errors.Is.
var (
	ErrUnknownFile = errors.New("unknown file")
	ErrSelector    = errors.New("malformed selector")
	ErrSyntax      = errors.New("syntax error")
	ErrStructure   = errors.New("broken tree structure")
	ErrDetached    = errors.New("node is detached from its parent")
	ErrUnsupported = errors.New("unsupported edit")
	ErrStale       = errors.New("stale node reference")
)
