package canonical

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/formulae"
	"github.com/npillmayer/formulae/expr"
	"github.com/npillmayer/formulae/reduction"
)

// IndexOutOfRange is the description of error nodes for invalid indices.
const IndexOutOfRange = "Index out of range"

// ChildByIndex returns a child of e, given an index expression. Indices are
// 1-based; negative indices count from the end, i.e. -1 denotes the last
// child.
//
// If index does not denote an integer in range, index is set in error
// and an error of kind reduction.ErrReduction is returned.
func ChildByIndex(e *expr.Expression, index *expr.Expression) (*expr.Expression, error) {
	if i, ok := Integer(index); ok {
		n := int64(e.Len())
		if i > 0 && i <= n {
			return e.Child(int(i - 1)), nil
		} else if i < 0 && -i <= n {
			return e.Child(int(n + i)), nil
		}
		tracer().Debugf("index %d out of range 1…%d", i, n)
	}
	return nil, reduction.Fail(index, IndexOutOfRange)
}

// ChildBySpec returns a child of e, given an index specification. The
// specification is either a single index, or a list of indices. For a list,
// indices are applied one after the other, descending into nested
// expressions:
//
//     ChildBySpec(e, {2, 3})  ≡  ChildByIndex(ChildByIndex(e, 2), 3)
//
func ChildBySpec(e *expr.Expression, spec *expr.Expression) (*expr.Expression, error) {
	if !formulae.IsList(spec.Tag()) {
		return ChildByIndex(e, spec)
	}
	result := e
	for i := 0; i < spec.Len(); i++ {
		var err error
		if result, err = ChildByIndex(result, spec.Child(i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}
