/*
Command splq is an interactive shell for querying and editing JavaScript and
TypeScript files.

    splq [-trace level] [-init script] [-config file.yaml] file…

Files given on the command line are loaded at start. Commands are those of
package script, plus

    tree     display the syntax tree of the first node of the current collection
    help     list commands
    quit     leave the shell (or <ctrl>D)

The configuration file may select the grammars to parse files with, in order of
preference, and a trace level:

    grammars: [tsx, typescript]
    trace: Info

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.script'
func tracer() tracing.Trace {
	return tracing.Select("splicer.script")
}
