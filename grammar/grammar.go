package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/splicer/tree"
)

// Grammar is the interface to a parser collaborator.
type Grammar interface {
	Name() string
	// Parse parses a complete source text. The root node of the resulting tree has
	// to span the complete input. Syntax errors are reported as errors wrapping
	// splicer.ErrSyntax.
	Parse(src []byte) (*tree.Tree, error)
	Syntax() *Syntax
}

// IdentifierCategory is the kind name which matches every identifier-like node kind.
const IdentifierCategory = "Identifier"

// InsertionContext describes how to re-parse a text fragment for a given place in
// a tree. A fragment is wrapped as
//
//     Prefix + fragment + Suffix
//
// and parsed as a complete source text. Starting from the root of the parse tree,
// Unwrap lists the kinds of nodes to descend to (always taking the first child of
// the given kind). The children in field Holder of the node found this way are the
// nodes representing the fragment.
//
// Field and Holder may be set to Any, which matches every field. With Delimit set,
// Prefix and Suffix are taken from the first and last character of the parent's
// text (e.g., the quotes of a string literal).
type InsertionContext struct {
	Name    string   // for tracing
	Parents []string // kinds of parent nodes this context applies to
	Field   string   // name of the parent's field holding the target
	Prefix  string
	Suffix  string
	Trim    string   // separator characters to strip from the ends of a fragment
	Unwrap  []string // path of node kinds from the root to the holder of the fragment
	Holder  string   // field of the holder containing the fragment's nodes
	Max     int      // maximum number of fragment nodes, 0 for unlimited
	Lift    string   // kind of a wrapper node to lift a single fragment node out of
	Delimit bool
}

// Any is a wildcard field name for insertion contexts.
const Any = "*"

// Syntax is data about a grammar's node kinds. Clients create a Syntax as a
// composite literal; lookup tables are built on first use.
type Syntax struct {
	Contexts    []InsertionContext  // insertion contexts for special places
	Default     InsertionContext    // context used everywhere else
	Identifiers []string            // identifier-like node kinds
	NameFields  []string            // fields holding the name of a node, by priority
	LeadingName []string            // kinds named by their first child
	Blocks      []string            // kinds holding lists of statements
	Statements  []string            // suffixes of statement kinds, e.g. "_statement"
	Sequences   map[string][]string // kind → named fields which are sequences
	Aliases     map[string][]string // alternative kind names, e.g. from ESTree

	once    sync.Once
	idents  map[string]bool
	leading map[string]bool
	blocks  map[string]bool
	seqs    map[string]map[string]bool
	aliases map[string]map[string]bool
}

func (syn *Syntax) index() {
	syn.once.Do(func() {
		syn.idents = toSet(syn.Identifiers)
		syn.leading = toSet(syn.LeadingName)
		syn.blocks = toSet(syn.Blocks)
		syn.seqs = make(map[string]map[string]bool, len(syn.Sequences))
		for kind, fields := range syn.Sequences {
			syn.seqs[kind] = toSet(fields)
		}
		syn.aliases = make(map[string]map[string]bool, len(syn.Aliases))
		for alias, kinds := range syn.Aliases {
			syn.aliases[alias] = toSet(kinds)
		}
	})
}

// ContextFor selects the insertion context for a fragment which will become a child
// of a node of kind parentKind, within the parent's field named field.
func (syn *Syntax) ContextFor(parentKind, field string) InsertionContext {
	for _, ctx := range syn.Contexts {
		if ctx.Field != field && ctx.Field != Any {
			continue
		}
		for _, p := range ctx.Parents {
			if p == parentKind {
				tracer().Debugf("insertion context for %s.%q is %s", parentKind, field, ctx.Name)
				return ctx
			}
		}
	}
	return syn.Default
}

// IsIdentifier returns true for identifier-like node kinds.
func (syn *Syntax) IsIdentifier(kind string) bool {
	syn.index()
	return syn.idents[kind]
}

// IsLeadingName returns true for node kinds which are named by their first child.
func (syn *Syntax) IsLeadingName(kind string) bool {
	syn.index()
	return syn.leading[kind]
}

// IsBlock returns true for node kinds holding statement lists.
func (syn *Syntax) IsBlock(kind string) bool {
	syn.index()
	return syn.blocks[kind]
}

// IsStatement returns true for statement kinds.
func (syn *Syntax) IsStatement(kind string) bool {
	for _, suffix := range syn.Statements {
		if strings.HasSuffix(kind, suffix) {
			return true
		}
	}
	return false
}

// IsSequence returns true if a field of a node kind is a sequence. Unlabeled
// children always form a sequence.
func (syn *Syntax) IsSequence(kind, field string) bool {
	if field == "" {
		return true
	}
	syn.index()
	return syn.seqs[kind][field]
}

// KindMatches checks if a node kind matches a kind requested by a client.
// Requested kinds are matched
//
//   - exactly,
//   - as the identifier category (IdentifierCategory or the empty string),
//   - by alias,
//   - by converting a CamelCase name to snake_case (FunctionDeclaration → function_declaration).
//
func (syn *Syntax) KindMatches(want, kind string) bool {
	if want == "" || want == IdentifierCategory {
		return syn.IsIdentifier(kind)
	}
	if want == kind {
		return true
	}
	syn.index()
	if syn.aliases[want][kind] {
		return true
	}
	return SnakeCase(want) == kind
}

// SnakeCase converts a CamelCase kind name to snake_case. Runs of upper case
// letters are treated as an acronym: JSXElement → jsx_element.
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
