/*
Package tree implements an arena of syntax tree nodes.

Trees of this package are edited destructively and in place, while clients hold
references to nodes. Nodes therefore are never addressed by pointer, but by
index handles (NodeID) into an arena. Parent links are stored as indices as well.
Nodes are never freed: a node which has been replaced is tombstoned, i.e. flagged
as dead, together with its complete subtree. References to dead nodes stay valid
handles, but clients will treat them as inert.

Every node carries a kind (the grammar's name for the node type), a byte span into
its source text and an ordered list of child-bearing fields. Fields are what a
grammar calls the labeled children of a node ("name", "body", …); children without
a label are collected in a field with an empty name. A field is either single-valued
or a sequence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.tree'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.tree")
}
