/*
Package query provides collections of syntax nodes, with a chainable API to
navigate, read and edit them.

A collection is created from a selector pattern, from single nodes, or from all
the files of a corpus:

    query.Find(c, "FunctionDeclaration.foo").SetName("bar")
    query.Find(c, "Property.x").After(", z: 3")

Collections are values. Navigation creates new collections, mutations return the
receiver. Nodes of a collection stay valid across edits: every edit remaps all
nodes of the affected file. Nodes which have been replaced are tombstoned; they
stay in their collections, but have no text and ignore edits.

The first error a collection encounters is kept, and subsequent operations on the
collection are no-ops. Clients check for errors at the end of a chain:

    if err := query.Find(c, ".x").SetText("y").Err(); err != nil { … }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.query'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.query")
}
