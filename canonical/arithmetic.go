package canonical

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/cockroachdb/apd"
	"github.com/npillmayer/formulae"
	"github.com/npillmayer/formulae/expr"
	"github.com/spf13/cast"
)

// NewNumber creates a number expression for a decimal.
func NewNumber(d *apd.Decimal) *expr.Expression {
	e := expr.New(formulae.NumberTag)
	e.Set(formulae.ValueAttr, d)
	return e
}

// NewInteger creates a number expression for an integer.
func NewInteger(i int64) *expr.Expression {
	return NewNumber(apd.New(i, 0))
}

// NewString creates a string expression.
func NewString(s string) *expr.Expression {
	e := expr.New(formulae.StringTag)
	e.Set(formulae.ValueAttr, s)
	return e
}

// Decimal returns the value of a number expression.
func Decimal(e *expr.Expression) (*apd.Decimal, bool) {
	if e.Tag() != formulae.NumberTag {
		return nil, false
	}
	v, ok := e.Get(formulae.ValueAttr)
	if !ok {
		return nil, false
	}
	d, ok := v.(*apd.Decimal)
	return d, ok
}

// Integer returns the value of a number expression, if it is integral
// and fits into an int64.
func Integer(e *expr.Expression) (int64, bool) {
	if e.Tag() != formulae.NumberTag {
		return 0, false
	}
	v, _ := e.Get(formulae.ValueAttr)
	switch n := v.(type) {
	case *apd.Decimal:
		i, err := n.Int64()
		if err != nil {
			tracer().Debugf("number %s is not an int64: %v", n, err)
			return 0, false
		}
		return i, true
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(n)
		return i, err == nil
	}
	return 0, false
}
