/*
Package expr implements expression trees for symbolic computation.

Expression trees are homogenous: every node is of the same Go type,
carrying a tag, an ordered list of children and a set of named attributes.
The tag names the syntactic or semantic category of a node, like
"Math.Arithmetic.Addition" or "List.List".

Reduction rules restructure trees in place. Therefore nodes link back to
their parent, and every mutating operation of this package keeps these
back-references consistent:

    parent.Child(child.Index()) == child

The root of a tree does not have a parent node. Instead it is held by a
Handler, which serves as its logical container. Replacing a root node will
update the handler.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formulae.expr'.
func tracer() tracing.Trace {
	return tracing.Select("formulae.expr")
}
