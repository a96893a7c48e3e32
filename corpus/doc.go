/*
Package corpus holds the set of source files an application works on.

A corpus maps file names to units. A unit owns the current text of a file and its
syntax tree, and both are kept consistent by the mutation engine (package edit).
Files are parsed with a list of grammars, in order: if the first (richest) grammar
fails to parse a file, the next one is tried. Files no grammar is able to parse are
skipped, and reported as diagnostics.

There is no global registry of files. Clients create a corpus and pass it around
explicitly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corpus

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.corpus'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.corpus")
}
