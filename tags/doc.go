/*
Package tags implements an interning table for tag names.

Every expression node carries a tag, naming its syntactic or semantic
category. Rule tables are keyed by tags, and it is convenient to have a
single place where all tags known to an application are collected. A tag
receives a serial number when it is first defined, thus the table behaves
like an open enumeration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tags

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formulae.tags'.
func tracer() tracing.Trace {
	return tracing.Select("formulae.tags")
}
