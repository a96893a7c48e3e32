/*
Package edit implements text-level mutations which keep a unit's syntax tree
consistent with its text.

A mutation splices a piece of text into a unit's text, then repairs the tree in
place:

■ the spans of all nodes are remapped to the new text (see tree.Remap),

■ a replaced node is tombstoned together with its subtree,

■ the new text is parsed as a fragment and the fragment's nodes are grafted
into the tree at the place of the edit.

Fragments usually are not complete programs. They are wrapped according to an
insertion context before parsing, which the unit's grammar selects from the kind
of the parent node and the field the new nodes go to. Fragments are parsed before
anything is changed, so that a failing mutation leaves the unit untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package edit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.edit'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.edit")
}
