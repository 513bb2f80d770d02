/*
Package reduction implements the normalization of expression trees.

Domain modules register reducers (rewrite rules) for tags of expression
nodes with a Registry. Reducing an expression tree applies matching
reducers to every node of the tree, until no reducer fires any more. The
result is a normal form of the expression.

Reducers come in two flavours. Special reducers are consulted before the
children of a node are reduced and may intercept the evaluation order of
a node, e.g. for short-circuiting operators. Normal reducers are consulted
after all children of a node have been reduced.

	registry := reduction.NewRegistry()
	registry.AddReducer("Math.Arithmetic.Addition", reduction.ItselfReducer)
	...
	session, err := reduction.NewSession(registry, "en", "UTC", 34)
	...
	err = reduction.ReduceHandler(handler, session)

Errors

Reducers report "no match" by returning false, never by returning an error.
Expected failures, e.g. an index out of range, are made visible in the tree
by SetInError, which wraps the offending node into an "Error" node. The
reducer then returns an error of kind ErrReduction, which aborts the
current pass. ReduceHandler swallows errors of this kind; any other error
is a defect and will be returned to the caller.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reduction

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formulae.reduction'.
func tracer() tracing.Trace {
	return tracing.Select("formulae.reduction")
}
