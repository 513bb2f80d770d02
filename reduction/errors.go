package reduction

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/formulae"
	"github.com/npillmayer/formulae/expr"
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrReduction is returned by reducers after they have marked a location of
// the expression tree with an error node (see SetInError). It aborts the
// current reduction pass and is swallowed by ReduceHandler.
var ErrReduction = errors.NewKind("reduction aborted: %s")

// ErrSessionSetup is returned if a reduction session cannot be created.
var ErrSessionSetup = errors.NewKind("cannot set up reduction session")

// SetInError replaces e by an error node with a description, and makes e
// the only child of the error node:
//
//     e   ⇒   Error(e)  { Description = description }
//
// Callers will usually return ErrReduction.New(description) afterwards.
func SetInError(e *expr.Expression, description string) {
	errorExpression := expr.New(formulae.ErrorTag)
	errorExpression.Set(formulae.DescriptionAttr, description)
	e.ReplaceBy(errorExpression)
	errorExpression.AddChild(e)
	tracer().Debugf("%s set in error: %s", e.Tag(), description)
}

// Fail is a shortcut for SetInError followed by the creation of an
// ErrReduction error.
func Fail(e *expr.Expression, description string) error {
	SetInError(e, description)
	return ErrReduction.New(description)
}
