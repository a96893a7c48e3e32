/*
Package script implements a small command language on top of package query.

An interpreter holds a current collection, which commands navigate, read or edit:

    find FunctionDeclaration.foo
    name = bar
    all
    find Property.x
    after ", z: 3"
    print

Values may be given verbatim (the rest of the line) or as a Go string literal,
which allows for escapes like "\n". Command "filter" takes a boolean expression
in expr-lang syntax, with variables kind, name, text, file, start, end and lines
bound to the properties of a node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.script'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.script")
}
