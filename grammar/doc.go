/*
Package grammar defines what the engine requires from a parser collaborator.

A grammar parses source text into a tree (see package tree), where every node
carries a byte span into the text. Apart from parsing, a grammar supplies syntax
data the engine cannot know by itself:

■ which named fields of a node kind are sequences (the "shape" of a node),

■ which node kinds are identifiers, and which fields of a node hold its name,

■ insertion contexts: how to wrap a text fragment to make it parseable, depending
on the syntactic role of the place where the fragment will be spliced in.

Insertion contexts are plain data. Adding support for a new syntactic context
means adding a record, not code.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.grammar")
}
