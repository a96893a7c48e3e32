/*
Package splicer is a structural query-and-edit engine for syntax trees.

Splicer loads source files, parses them with a grammar collaborator and lets clients
select nodes with a compact pattern language. Selected nodes may then be edited by
text: a node's span may be replaced, or text may be inserted before or after it.
Every edit keeps the text buffer and the (destructively edited) tree in lockstep, so
that all other live references into the same file stay byte-accurate.
Package structure is as follows:

■ tree: Package tree implements an arena of syntax nodes, addressed by index handles,
with parent links, child-bearing fields and tombstones.

■ grammar: Package grammar defines the interface to parsers, together with syntax data
like insertion contexts. Sub-package tsjs implements it with tree-sitter grammars for
JavaScript, TypeScript and TSX.

■ corpus: Package corpus is the registry of loaded files.

■ selector and match: Selector patterns are compiled into ancestor-chain constraints,
which the matcher evaluates against trees.

■ edit: Package edit is the mutation engine (text splice, range remap, fragment
re-parse, tree splice).

■ query: Package query provides chainable collections of nodes, which glue selection
and mutation together.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package splicer
