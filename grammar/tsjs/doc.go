/*
Package tsjs implements grammars for JavaScript and TypeScript, including JSX,
on top of tree-sitter.

Three grammars are provided:

■ TSX() parses TypeScript with JSX and is the richest of the three,

■ TypeScript() parses TypeScript without JSX, which is needed for files using
old-style type assertions like <T>x,

■ JavaScript() parses JavaScript with JSX.

All of them share the same syntax data (insertion contexts, identifier kinds,
aliases for ESTree-style kind names).

Parse trees of tree-sitter are converted into arena trees of package tree, keeping
only named nodes. Punctuation and keywords are not represented as nodes, but are
still covered by the spans of their parent nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tsjs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.grammar")
}
