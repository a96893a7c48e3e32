/*
Package match finds the nodes of a corpus described by a selector.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splicer.match'.
func tracer() tracing.Trace {
	return tracing.Select("splicer.match")
}
