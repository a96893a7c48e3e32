/*
Package selector compiles selector patterns.

A selector pattern describes nodes by their kind, their name, and the kinds and
names of their ancestors:

    FunctionDeclaration.foo Identifier.x, pair

Commas separate alternatives. Within an alternative (a path), whitespace separates
constraints, from outermost to innermost. The last constraint of a path describes
the target node, the others describe ancestors of the target, not necessarily
direct ones.

A constraint is either a kind ("pair"), a kind and a name ("pair.x"), or just a
name (".x"). The latter matches identifier-like nodes with the given name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.selector'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.selector")
}
