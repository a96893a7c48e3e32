package corpus

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/splicer"
	"github.com/npillmayer/splicer/grammar"
	"github.com/npillmayer/splicer/grammar/tsjs"
	"github.com/npillmayer/splicer/tree"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/exp/slices"
)

// Corpus is a set of units, addressed by file name.
// A corpus is not safe for concurrent use.
type Corpus struct {
	grammars []grammar.Grammar
	units    map[string]*Unit
	gen      uint64 // last generation handed out
}

// Option configures a corpus.
type Option func(*Corpus)

// WithGrammars sets the grammars to parse files with, in order of preference.
func WithGrammars(gs ...grammar.Grammar) Option {
	return func(c *Corpus) {
		if len(gs) > 0 {
			c.grammars = gs
		}
	}
}

// New creates an empty corpus. Without options, files are parsed as TypeScript
// with JSX, falling back to plain TypeScript.
func New(opts ...Option) *Corpus {
	c := &Corpus{
		grammars: []grammar.Grammar{tsjs.TSX(), tsjs.TypeScript()},
		units:    make(map[string]*Unit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Diagnostic reports a file which could not be loaded.
type Diagnostic struct {
	File string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.File, d.Err)
}

// Load replaces the contents of a corpus with a set of files, given as a map
// from file names to source texts. Files which cannot be parsed are skipped and
// reported as diagnostics. Loading continues with the remaining files.
func (c *Corpus) Load(files map[string]string) []Diagnostic {
	c.units = make(map[string]*Unit, len(files))
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	var diagnostics []Diagnostic
	for _, name := range names {
		if _, err := c.Add(name, files[name]); err != nil {
			tracer().Errorf("skipping %s: %v", name, err)
			diagnostics = append(diagnostics, Diagnostic{File: name, Err: err})
		}
	}
	tracer().Infof("loaded %d of %d files", len(c.units), len(files))
	return diagnostics
}

// Add parses a source text and adds it to the corpus. An existing unit with the
// same name is replaced.
func (c *Corpus) Add(name, text string) (*Unit, error) {
	var err error
	for _, g := range c.grammars {
		var t *tree.Tree
		if t, err = g.Parse([]byte(text)); err == nil {
			c.gen++
			u := &Unit{name: name, gen: c.gen, text: text, origin: text, tree: t, grammar: g}
			if _, exists := c.units[name]; exists {
				tracer().Infof("replacing unit %s", name)
			}
			c.units[name] = u
			tracer().Debugf("parsed %s with grammar %s", name, g.Name())
			return u, nil
		}
		tracer().Debugf("grammar %s failed for %s: %v", g.Name(), name, err)
	}
	if err == nil {
		err = fmt.Errorf("%w: no grammar configured", splicer.ErrSyntax)
	}
	return nil, fmt.Errorf("cannot parse %s: %w", name, err)
}

// Unit returns the unit for a file name.
func (c *Corpus) Unit(name string) (*Unit, error) {
	u, ok := c.units[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", splicer.ErrUnknownFile, name)
	}
	return u, nil
}

// Resolve returns the unit a reference points into. References created before
// their file has been reloaded or replaced result in ErrStale, references to
// files not in the corpus in ErrUnknownFile.
func (c *Corpus) Resolve(ref NodeRef) (*Unit, error) {
	u, err := c.Unit(ref.File)
	if err != nil {
		return nil, err
	}
	if !u.Owns(ref) || !u.tree.Valid(ref.ID) {
		return nil, fmt.Errorf("%w: %v (generation %d, file is at %d)", splicer.ErrStale,
			ref, ref.Gen, u.gen)
	}
	return u, nil
}

// Files returns the names of all files in the corpus, sorted.
func (c *Corpus) Files() []string {
	names := make([]string, 0, len(c.units))
	for name := range c.units {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Roots returns references to the root nodes of all units, ordered by file name.
func (c *Corpus) Roots() []NodeRef {
	roots := make([]NodeRef, 0, len(c.units))
	for _, name := range c.Files() {
		roots = append(roots, c.units[name].Root())
	}
	return roots
}

// Print returns a snapshot of the current texts of all files.
func (c *Corpus) Print() map[string]string {
	texts := make(map[string]string, len(c.units))
	for name, u := range c.units {
		texts[name] = u.text
	}
	return texts
}

// NodeAt returns the innermost node of a file which covers a byte offset. If no
// node covers the offset, the root node is returned.
func (c *Corpus) NodeAt(offset int, filename string) (NodeRef, error) {
	u, err := c.Unit(filename)
	if err != nil {
		return NodeRef{}, err
	}
	t := u.Tree()
	return u.Ref(t.Innermost(t.Root(), offset)), nil
}

// Diff returns the changes applied to a file since it has been loaded, as a
// patch in diff-match-patch text format. Unchanged files result in an empty string.
func (c *Corpus) Diff(filename string) (string, error) {
	u, err := c.Unit(filename)
	if err != nil {
		return "", err
	}
	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(u.origin, u.text)
	return dmp.PatchToText(patches), nil
}

type fingerprint struct {
	Text  string
	Nodes []fingerprintNode
}

type fingerprintNode struct {
	Kind  string
	From  int
	To    int
	Depth int
}

// Fingerprint returns a hash over the text and the live syntax tree of a file.
// Units with equal fingerprints have equal texts and trees of the same shape.
func (c *Corpus) Fingerprint(filename string) (string, error) {
	u, err := c.Unit(filename)
	if err != nil {
		return "", err
	}
	fp := fingerprint{Text: u.text}
	t := u.Tree()
	t.Walk(t.Root(), func(id tree.NodeID, depth int) bool {
		span := t.Span(id)
		fp.Nodes = append(fp.Nodes, fingerprintNode{t.Kind(id), span.From(), span.To(), depth})
		return true
	})
	return structhash.Hash(fp, 1)
}
