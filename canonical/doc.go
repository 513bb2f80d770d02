/*
Package canonical provides helpers for the bodies of reducers.

Reducers frequently have to access children by a user supplied index,
check lists of options, or test whether a list of lists forms a matrix.
Failures are reported in the canonical way: the offending node is set
in error (see reduction.SetInError), and an error of kind
reduction.ErrReduction aborts the current reduction pass.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canonical

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formulae.canonical'.
func tracer() tracing.Trace {
	return tracing.Select("formulae.canonical")
}
