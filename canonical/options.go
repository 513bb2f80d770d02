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

// Descriptions of error nodes for malformed options.
const (
	InvalidOption  = "Invalid format for option"
	InvalidOptions = "Invalid format for options"
)

// OptionChecker checks a single option, given as a pair
//
//     { "name", value }
//
// for an expression of a given tag. CheckOption returns true if the option
// is acceptable. An implementation rejecting an option should set the
// option (or its value) in error, as the caller will not.
type OptionChecker interface {
	CheckOption(tag string, option *expr.Expression) bool
}

// OptionCheckerFunc is an adapter to use ordinary functions as OptionCheckers.
type OptionCheckerFunc func(tag string, option *expr.Expression) bool

// CheckOption calls f(tag, option).
func (f OptionCheckerFunc) CheckOption(tag string, option *expr.Expression) bool {
	return f(tag, option)
}

// RejectAll is an OptionChecker accepting no option at all.
var RejectAll OptionChecker = OptionCheckerFunc(func(string, *expr.Expression) bool {
	return false
})

// CheckOptions validates an options expression for an expression of a tag.
// options is either a single option
//
//     { "name", value }
//
// or a list of options
//
//     { { "name₁", value₁ }, { "name₂", value₂ }, … }
//
// Every option is handed to checker. Malformed option lists are set in error,
// but CheckOptions will not abort the reduction pass; it just returns false.
func CheckOptions(tag string, options *expr.Expression, checker OptionChecker) bool {
	if !formulae.IsList(options.Tag()) {
		reduction.SetInError(options, InvalidOptions)
		return false
	}
	if isOption(options) {
		return checker.CheckOption(tag, options)
	}
	for i := 0; i < options.Len(); i++ {
		option := options.Child(i)
		if !isOption(option) {
			reduction.SetInError(option, InvalidOption)
			return false
		}
		if !checker.CheckOption(tag, option) {
			tracer().Debugf("option #%d for %s rejected", i+1, tag)
			return false
		}
	}
	return true
}

// isOption is a predicate: is e a pair { "name", value }?
func isOption(e *expr.Expression) bool {
	return formulae.IsList(e.Tag()) && e.Len() == 2 &&
		e.Child(0).Tag() == formulae.StringTag
}

// OptionName returns the name of an option pair.
func OptionName(option *expr.Expression) string {
	return option.Child(0).GetString(formulae.ValueAttr)
}
