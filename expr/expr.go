package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/spf13/cast"
)

// Expression is a node of an expression tree.
type Expression struct {
	tag      string
	children []*Expression
	parent   *Expression            // non-owning; nil for roots
	handler  *Handler               // set for roots held by a handler
	index    int                    // position within parent, -1 for roots
	attrs    map[string]interface{} // lazily created
	reduced  bool                   // transient, valid during one reduction pass
}

// New creates an expression node for a tag. Children, if given, are
// appended in order.
func New(tag string, children ...*Expression) *Expression {
	e := &Expression{tag: tag, index: -1}
	for _, ch := range children {
		e.AddChild(ch)
	}
	return e
}

// Tag returns the tag of an expression.
func (e *Expression) Tag() string {
	return e.tag
}

// Len returns the number of children.
func (e *Expression) Len() int {
	return len(e.children)
}

// Child returns the child at position i (0-based).
// Will panic if i is out of range.
func (e *Expression) Child(i int) *Expression {
	return e.children[i]
}

// Children returns a copy of the list of children.
func (e *Expression) Children() []*Expression {
	c := make([]*Expression, len(e.children))
	copy(c, e.children)
	return c
}

// Parent returns the parent node, or nil for a root.
func (e *Expression) Parent() *Expression {
	return e.parent
}

// Handler returns the handler holding e, if e is a root expression.
func (e *Expression) Handler() *Handler {
	return e.handler
}

// Index returns the position of e within its parent, or -1 for roots.
func (e *Expression) Index() int {
	if e.parent == nil {
		return -1
	}
	return e.index
}

// --- Attributes ------------------------------------------------------------

// Set sets a named attribute.
func (e *Expression) Set(key string, value interface{}) {
	if e.attrs == nil {
		e.attrs = make(map[string]interface{})
	}
	e.attrs[key] = value
}

// Get returns a named attribute.
func (e *Expression) Get(key string) (interface{}, bool) {
	if e.attrs == nil {
		return nil, false
	}
	v, ok := e.attrs[key]
	return v, ok
}

// GetString returns a named attribute, converted to a string.
// Returns an empty string if the attribute is not set or is not convertible.
func (e *Expression) GetString(key string) string {
	v, ok := e.Get(key)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		tracer().Debugf("attribute %s of %s is not a string: %v", key, e.tag, err)
		return ""
	}
	return s
}

// attributes returns a copy of the attributes, converted to strings.
func (e *Expression) attributes() map[string]string {
	if len(e.attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		m[k] = cast.ToString(v)
	}
	return m
}

// --- Reduction flag --------------------------------------------------------

// IsReduced is a predicate: has e already been brought to normal form
// during the current reduction pass?
func (e *Expression) IsReduced() bool {
	return e.reduced
}

// SetReduced marks e as reduced.
func (e *Expression) SetReduced() {
	e.reduced = true
}

// ClearReduced resets the reduced flag.
func (e *Expression) ClearReduced() {
	e.reduced = false
}

// --- Mutation --------------------------------------------------------------

// AddChild appends ch as the rightmost child of e.
//
// ch becomes a child of e, even if it currently is a child of another node.
// The former container is not modified; it is up to the caller to
// overwrite or drop it.
func (e *Expression) AddChild(ch *Expression) {
	if ch == nil {
		panic("attempt to add nil child to expression")
	}
	e.children = append(e.children, ch)
	e.adopt(ch, len(e.children)-1)
}

// SetChild overwrites the child at position i.
func (e *Expression) SetChild(i int, ch *Expression) {
	if ch == nil {
		panic("attempt to set nil child of expression")
	}
	e.release(e.children[i])
	e.children[i] = ch
	e.adopt(ch, i)
}

// InsertChildAt inserts ch at position i, shifting subsequent children to the
// right. i may be equal to e.Len(), which appends ch.
func (e *Expression) InsertChildAt(i int, ch *Expression) {
	if ch == nil {
		panic("attempt to insert nil child into expression")
	}
	if i < 0 || i > len(e.children) {
		panic(fmt.Sprintf("insertion index %d out of range [0…%d]", i, len(e.children)))
	}
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = ch
	e.reindex(i)
}

// RemoveChildAt removes the child at position i and returns it.
// Subsequent children are shifted to the left.
func (e *Expression) RemoveChildAt(i int) *Expression {
	ch := e.children[i]
	copy(e.children[i:], e.children[i+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
	e.release(ch)
	e.reindex(i)
	return ch
}

// ReplaceBy replaces e by another expression, at the same position in the tree.
// If e is the root of a tree, its handler will be updated.
// Afterwards e is detached from the tree, but keeps its own children.
// Will panic if e has neither a parent nor a handler.
func (e *Expression) ReplaceBy(other *Expression) {
	if other == nil {
		panic("attempt to replace expression by nil")
	}
	if other == e {
		return
	}
	switch {
	case e.parent != nil:
		p := e.parent
		if e.index < 0 || e.index >= len(p.children) || p.children[e.index] != e {
			panic("inconsistent parent-child combination; expression is no valid child")
		}
		p.SetChild(e.index, other)
	case e.handler != nil:
		e.handler.SetExpression(other)
	default:
		panic(fmt.Sprintf("cannot replace detached expression %s", e))
	}
}

func (e *Expression) adopt(ch *Expression, i int) {
	ch.parent = e
	ch.handler = nil
	ch.index = i
}

// release detaches ch from e, if ch still points back to e.
// ch may have been moved to another container in the meantime.
func (e *Expression) release(ch *Expression) {
	if ch.parent == e {
		ch.parent = nil
		ch.index = -1
	}
}

func (e *Expression) reindex(from int) {
	for i := from; i < len(e.children); i++ {
		e.adopt(e.children[i], i)
	}
}

// --- Handler ---------------------------------------------------------------

// Handler is the logical container of a root expression. Reduction may
// replace the root of a tree, and clients should always re-read the root
// from the handler after reduction.
type Handler struct {
	expression *Expression
}

// NewHandler creates a handler for a root expression.
func NewHandler(e *Expression) *Handler {
	h := &Handler{}
	h.SetExpression(e)
	return h
}

// Expression returns the root expression.
func (h *Handler) Expression() *Expression {
	return h.expression
}

// SetExpression makes e the root expression held by h.
func (h *Handler) SetExpression(e *Expression) {
	if old := h.expression; old != nil && old.handler == h {
		old.handler = nil
	}
	h.expression = e
	if e != nil {
		e.parent = nil
		e.handler = h
		e.index = -1
	}
}

// ---------------------------------------------------------------------------

// Prepare clears the reduced flag of every node in the tree, top-down.
// It has to be called before a new reduction pass is started.
func Prepare(e *Expression) {
	e.ClearReduced()
	for _, ch := range e.children {
		Prepare(ch)
	}
}
