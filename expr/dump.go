package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/formulae"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cast"
)

// String is a debug Stringer for expressions. It returns a compact
// functional notation, e.g.
//
//     Math.Arithmetic.Addition(Symbol.Symbol, 3)
//
// Nodes carrying a "Value" attribute print the value instead of the tag.
func (e *Expression) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Expression) write(b *strings.Builder) {
	if v, ok := e.Get(formulae.ValueAttr); ok && len(e.children) == 0 {
		b.WriteString(cast.ToString(v))
		return
	}
	b.WriteString(e.tag)
	if len(e.children) == 0 {
		return
	}
	b.WriteByte('(')
	for i, ch := range e.children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.write(b)
	}
	b.WriteByte(')')
}

// --- Fingerprints ----------------------------------------------------------

// shape is the exported structure of an expression, as seen by structhash.
type shape struct {
	Tag      string
	Attrs    map[string]string
	Children []shape
}

func shapeOf(e *Expression) shape {
	s := shape{Tag: e.tag, Attrs: e.attributes()}
	if len(e.children) > 0 {
		s.Children = make([]shape, len(e.children))
		for i, ch := range e.children {
			s.Children[i] = shapeOf(ch)
		}
	}
	return s
}

// Fingerprint returns a hash of the structure of an expression tree, i.e.
// of tags, attributes and children. Reduction flags and back-references do
// not contribute.
func Fingerprint(e *Expression) string {
	if e == nil {
		return ""
	}
	h, err := structhash.Hash(shapeOf(e), 1)
	if err != nil {
		panic(err)
	}
	return h
}

// Equal is a predicate: are a and b structurally equal?
func Equal(a, b *Expression) bool {
	return Fingerprint(a) == Fingerprint(b)
}

// --- Debugging -------------------------------------------------------------

// Dump is a debugging helper. It renders an expression tree and writes it
// to the trace with the given level.
func Dump(e *Expression, level tracing.TraceLevel) {
	if e == nil {
		return
	}
	ll := leveled(e, pterm.LeveledList{}, 0)
	out, err := pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Srender()
	if err != nil {
		tracer().Errorf("cannot render expression: %v", err)
		return
	}
	switch level {
	case tracing.LevelDebug:
		tracer().Debugf("\n%s", out)
	case tracing.LevelInfo:
		tracer().Infof("\n%s", out)
	default:
		tracer().Errorf("\n%s", out)
	}
}

func leveled(e *Expression, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  label(e),
	})
	for _, ch := range e.children {
		ll = leveled(ch, ll, level+1)
	}
	return ll
}

func label(e *Expression) string {
	attrs := e.attributes()
	if len(attrs) == 0 {
		return e.tag
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(e.tag)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(attrs[k])
	}
	return b.String()
}
