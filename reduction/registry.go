package reduction

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
	"runtime"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/formulae/expr"
	"github.com/npillmayer/formulae/tags"
)

// Reducer is a rewrite rule for expressions of a tag. It either
// restructures the tree at e and returns true, or leaves the tree
// unchanged and returns false.
//
// An error is returned only for failures, never for a mismatch. Expected
// failures are of kind ErrReduction.
type Reducer func(e *expr.Expression, session *Session) (bool, error)

// Rule is a named reducer, as stored in a registry.
type Rule struct {
	Name   string
	Reduce Reducer
}

// Precedence is a tier controlling the position of a reducer within the
// list of reducers for a tag.
type Precedence int

// Precedence tiers.
const (
	PrecedenceLow    Precedence = -1
	PrecedenceNormal Precedence = 0
	PrecedenceHigh   Precedence = 1
)

func (p Precedence) String() string {
	switch p {
	case PrecedenceLow:
		return "low"
	case PrecedenceHigh:
		return "high"
	}
	return "normal"
}

// Option configures the registration of a reducer.
type Option func(*ruleOptions)

type ruleOptions struct {
	special    bool
	precedence Precedence
	name       string
}

// Special registers a reducer as a special reducer, i.e. one which is
// consulted before the children of a node are reduced.
func Special() Option {
	return func(o *ruleOptions) {
		o.special = true
	}
}

// WithPrecedence sets the precedence tier of a reducer. Default is
// PrecedenceNormal.
func WithPrecedence(p Precedence) Option {
	return func(o *ruleOptions) {
		o.precedence = p
	}
}

// Named sets a name for a reducer, used for tracing. Default is the name of
// the reducer's function.
func Named(name string) Option {
	return func(o *ruleOptions) {
		o.name = name
	}
}

// --- Registry --------------------------------------------------------------

// Registry maps tags to lists of reducers. A registry is set up once, before
// any reduction starts, and is read-only thereafter. There is no way to
// remove a reducer.
type Registry struct {
	tags *tags.Table
}

// entry holds the reducers for a tag. It lives in the UData of the tag.
type entry struct {
	special       *arraylist.List
	normal        *arraylist.List
	specialLimits [2]int // [high, normal] insertion counters
	normalLimits  [2]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tags: tags.NewTable()}
}

// AddReducer registers a reducer for a tag.
//
// Within its list (special or normal), a high precedence reducer is inserted
// at a position given by the number of high precedence reducers previously
// registered for the tag, a normal precedence reducer at a position given by
// the number of normal precedence reducers previously registered, and a low
// precedence reducer is appended. The insertion position of normal precedence
// reducers does not account for high precedence reducers, thus the relative
// order of high and normal precedence reducers depends on the order of
// registration. For example, registering H1 (high), N1 (normal), H2 (high)
// results in [N1, H2, H1].
//
// Registering a reducer twice will make it fire twice.
func (r *Registry) AddReducer(tag string, reducer Reducer, opts ...Option) {
	if reducer == nil {
		panic("attempt to register nil reducer")
	}
	o := ruleOptions{precedence: PrecedenceNormal}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = funcName(reducer)
	}
	t, _ := r.tags.ResolveOrDefineTag(tag)
	if t == nil {
		panic("attempt to register reducer for empty tag")
	}
	if t.UData == nil {
		t.UData = &entry{
			special: arraylist.New(),
			normal:  arraylist.New(),
		}
	}
	ent := t.UData.(*entry)
	list, limits := ent.normal, &ent.normalLimits
	if o.special {
		list, limits = ent.special, &ent.specialLimits
	}
	rule := Rule{Name: o.name, Reduce: reducer}
	switch o.precedence {
	case PrecedenceHigh:
		list.Insert(limits[0], rule)
		limits[0]++
	case PrecedenceNormal:
		list.Insert(limits[1], rule)
		limits[1]++
	case PrecedenceLow:
		list.Add(rule)
	default:
		panic("unknown precedence for reducer")
	}
	tracer().P("tag", tag).Debugf("added %s reducer %s, special=%v", o.precedence, o.name, o.special)
}

// SpecialRules returns the special reducers registered for a tag, in the
// order they will be consulted.
func (r *Registry) SpecialRules(tag string) []Rule {
	return rules(r.lookup(tag, true))
}

// NormalRules returns the normal reducers registered for a tag, in the
// order they will be consulted.
func (r *Registry) NormalRules(tag string) []Rule {
	return rules(r.lookup(tag, false))
}

// Tags returns all tags with registered reducers, in lexical order.
func (r *Registry) Tags() []string {
	return r.tags.Names()
}

func (r *Registry) lookup(tag string, special bool) *arraylist.List {
	t := r.tags.ResolveTag(tag)
	if t == nil || t.UData == nil {
		return nil
	}
	if special {
		return t.UData.(*entry).special
	}
	return t.UData.(*entry).normal
}

func rules(list *arraylist.List) []Rule {
	if list == nil {
		return nil
	}
	rr := make([]Rule, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		rr = append(rr, it.Value().(Rule))
	}
	return rr
}

func funcName(f interface{}) string {
	if fn := runtime.FuncForPC(reflect.ValueOf(f).Pointer()); fn != nil {
		return fn.Name()
	}
	return "<anonymous>"
}
