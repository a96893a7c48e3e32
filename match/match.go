package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/grammar"
	"github.com/npillmayer/splicer/selector"
	"github.com/npillmayer/splicer/tree"
)

// Matcher matches nodes against a compiled selector.
type Matcher struct {
	sel selector.Selector
}

// New creates a matcher for a selector.
func New(sel selector.Selector) *Matcher {
	return &Matcher{sel: sel}
}

// Find traverses the subtrees below a list of scope nodes (including the scope
// nodes themselves) in pre-order and returns every node matching one of the
// matcher's paths, in order of discovery. A node is reported at most once per
// scope node, even if more than one path matches. Tombstoned scope nodes are
// skipped, as are stale references and references to unknown files.
func (m *Matcher) Find(c *corpus.Corpus, scope []corpus.NodeRef) []corpus.NodeRef {
	var result []corpus.NodeRef
	for _, s := range scope {
		u, err := c.Resolve(s)
		if errors.Is(err, splicer.ErrStale) {
			tracer().Debugf("skipping scope node: %v", err)
			continue
		} else if err != nil {
			tracer().Errorf("scope node %v: %v", s, err)
			continue
		}
		t := u.Tree()
		if !t.Valid(s.ID) || t.IsDead(s.ID) {
			continue
		}
		seen := hashset.New()
		t.Walk(s.ID, func(id tree.NodeID, depth int) bool {
			if t.IsDead(id) {
				return false
			}
			if !seen.Contains(id) && m.Matches(u, id) {
				seen.Add(id)
				result = append(result, u.Ref(id))
			}
			return true
		})
	}
	tracer().Debugf("selector %s matched %d nodes", m.sel, len(result))
	return result
}

// Matches checks a single node against the matcher's paths.
func (m *Matcher) Matches(u *corpus.Unit, id tree.NodeID) bool {
	for _, path := range m.sel {
		if matchPath(u, id, path) {
			return true
		}
	}
	return false
}

// matchPath checks the last constraint of a path against a node. Remaining
// constraints are consumed walking upwards, innermost first, skipping ancestors
// which do not match.
func matchPath(u *corpus.Unit, id tree.NodeID, path selector.Path) bool {
	if len(path) == 0 || !satisfies(u, id, path.Target()) {
		return false
	}
	pending := len(path) - 1
	t := u.Tree()
	for a := t.Parent(id); a != tree.None && pending > 0; a = t.Parent(a) {
		if satisfies(u, a, path[pending-1]) {
			pending--
		}
	}
	return pending == 0
}

func satisfies(u *corpus.Unit, id tree.NodeID, c selector.Constraint) bool {
	syn := u.Syntax()
	if !syn.KindMatches(c.Kind, u.Tree().Kind(id)) {
		return false
	}
	if !c.Named {
		return true
	}
	name := NameOf(u, id)
	return name != tree.None && u.TextOf(name) == c.Name
}

// NameOf resolves the node carrying the name of a node. Identifier-like nodes
// are their own names. Other nodes are named by the first of the grammar's name
// fields present, resolved recursively. Returns tree.None for nodes without
// a name.
func NameOf(u *corpus.Unit, id tree.NodeID) tree.NodeID {
	return nameOf(u.Tree(), u.Syntax(), id)
}

func nameOf(t *tree.Tree, syn *grammar.Syntax, id tree.NodeID) tree.NodeID {
	if !t.Valid(id) || t.IsDead(id) {
		return tree.None
	}
	if syn.IsIdentifier(t.Kind(id)) {
		return id
	}
	if syn.IsLeadingName(t.Kind(id)) {
		if children := t.Children(id); len(children) > 0 {
			return nameOf(t, syn, children[0])
		}
		return tree.None
	}
	for _, field := range syn.NameFields {
		if kids := t.Field(id, field); len(kids) > 0 {
			if name := nameOf(t, syn, kids[0]); name != tree.None {
				return name
			}
			return kids[0]
		}
	}
	return tree.None
}
