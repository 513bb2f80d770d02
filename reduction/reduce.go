package reduction

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/formulae/expr"
	"github.com/npillmayer/schuko/tracing"
)

// ReduceHandler reduces the expression tree held by a handler to normal form.
//
// Errors of kind ErrReduction are swallowed, as the tree already carries an
// error node at the location of failure. Any other error is returned.
// After successful completion, the (possibly replaced) root of the tree is
// marked as reduced.
func ReduceHandler(h *expr.Handler, session *Session) error {
	if session.adjustTrace {
		level := tracer().GetTraceLevel()
		tracer().SetTraceLevel(session.traceLevel)
		defer tracer().SetTraceLevel(level)
	}
	e := h.Expression()
	tracer().Infof("reducing %s", e)
	expr.Prepare(e)
	if _, err := Reduce(e, session); err != nil {
		if !ErrReduction.Is(err) {
			tracer().Errorf("reduction failed: %v", err)
			return err
		}
		tracer().Infof("reduction pass aborted: %v", err)
	}
	h.Expression().SetReduced()
	tracer().Infof("reduced to %s", h.Expression())
	expr.Dump(h.Expression(), tracing.LevelDebug)
	return nil
}

// Reduce reduces an expression to normal form, using the reducers of the
// session's registry. It returns true if any reducer fired at e.
//
// First, the special reducers for e's tag are consulted in order. If one of
// them fires, Reduce returns without touching the children of e.
// Otherwise all children not yet marked as reduced are reduced and marked,
// from left to right. Then the normal reducers for e's tag are consulted in
// order, again stopping at the first one which fires.
//
// Errors returned by reducers are passed on unchanged.
// Reducers may replace e in the tree; callers must not use e after
// Reduce returned true, but re-read the node from its former position
// (see Session.ReduceAndGet).
func Reduce(e *expr.Expression, session *Session) (bool, error) {
	registry := session.registry
	tag := e.Tag()
	if fired, err := fire(registry.lookup(tag, true), e, session); fired || err != nil {
		return fired, err
	}
	for i := 0; i < e.Len(); i++ {
		if ch := e.Child(i); !ch.IsReduced() {
			if _, err := Reduce(ch, session); err != nil {
				return false, err
			}
			e.Child(i).SetReduced() // ch may have been replaced
		}
	}
	return fire(registry.lookup(tag, false), e, session)
}

// fire consults reducers in order, until one of them fires.
func fire(rules *arraylist.List, e *expr.Expression, session *Session) (bool, error) {
	if rules == nil {
		return false, nil
	}
	tag := e.Tag()
	it := rules.Iterator()
	for it.Next() {
		rule := it.Value().(Rule)
		fired, err := rule.Reduce(e, session)
		if err != nil {
			tracer().Debugf("reducer %s for %s failed: %v", rule.Name, tag, err)
			return false, err
		}
		if fired {
			tracer().Debugf("reducer %s fired for %s", rule.Name, tag)
			return true, nil
		}
	}
	return false, nil
}
