package reduction

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/formulae/expr"
)

// ExpansionReducer distributes a unary operator over the children of its
// operand:
//
//     A(T(x₁, x₂, …, xₙ))   ⇒   T(A(x₁), A(x₂), …, A(xₙ))
//
// e.g., N(x + y + z) ⇒ N(x) + N(y) + N(z). If T has no children, A is
// absorbed:
//
//     A(T)   ⇒   T
//
// Each new A(xᵢ) is reduced, then the rebuilt T is reduced again.
// ExpansionReducer will not match operators with more than one child.
func ExpansionReducer(e *expr.Expression, session *Session) (bool, error) {
	if e.Len() != 1 {
		return false, nil // leave other arities to different reducers
	}
	target := e.Child(0)
	tag, n := e.Tag(), target.Len()
	for i := 0; i < n; i++ {
		ch := expr.New(tag)
		ch.AddChild(target.Child(i))
		target.SetChild(i, ch)
	}
	e.ReplaceBy(target)
	if n == 0 {
		tracer().Debugf("absorption of %s", tag)
	} else {
		tracer().Debugf("expansion of %s over %d children", tag, n)
	}
	for i := 0; i < n; i++ {
		if err := session.Reduce(target.Child(i)); err != nil {
			return false, err
		}
	}
	if err := session.Reduce(target); err != nil {
		return false, err
	}
	return true, nil
}

// ItselfReducer flattens nested applications of an associative operator:
//
//     a @ (b @ c) @ d   ⇒   a @ b @ c @ d
//
// Children spliced into e are checked again, thus nesting of any depth is
// removed. If anything has been flattened, e is reduced again. Otherwise
// ItselfReducer does not match.
func ItselfReducer(e *expr.Expression, session *Session) (bool, error) {
	operator := e.Tag()
	updates := 0
	for i := 0; i < e.Len(); {
		child := e.Child(i)
		if child.Tag() != operator {
			i++
			continue
		}
		e.RemoveChildAt(i)
		updates++
		for j, grandchild := range child.Children() {
			e.InsertChildAt(i+j, grandchild)
		}
	}
	if updates == 0 {
		return false, nil // forward to other reducers
	}
	tracer().Debugf("flattened %d nested %s", updates, operator)
	if err := session.Reduce(e); err != nil {
		return false, err
	}
	return true, nil
}
