package expr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// checkLinks asserts that every child of every node links back to its container.
func checkLinks(t *testing.T, e *Expression) {
	t.Helper()
	for i, ch := range e.children {
		if ch.Parent() != e {
			t.Errorf("child #%d (%s) of %s has wrong parent %v", i, ch, e, ch.Parent())
		}
		if ch.Index() != i {
			t.Errorf("child #%d (%s) of %s has wrong index %d", i, ch, e, ch.Index())
		}
		checkLinks(t, ch)
	}
}

func TestNewExpression(t *testing.T) {
	e := New("F", New("x"), New("y"))
	if e.Tag() != "F" || e.Len() != 2 {
		t.Fatalf("expected F with 2 children, have %s", e)
	}
	if e.String() != "F(x, y)" {
		t.Errorf("expected F(x, y), have %s", e)
	}
	checkLinks(t, e)
	if e.Index() != -1 || e.Parent() != nil {
		t.Errorf("root should not have a parent")
	}
}

func TestInsertRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formulae.expr")
	defer teardown()
	//
	e := New("F", New("a"), New("b"), New("c"))
	e.InsertChildAt(1, New("x"))
	e.InsertChildAt(e.Len(), New("z"))
	if e.String() != "F(a, x, b, c, z)" {
		t.Errorf("unexpected insertion result %s", e)
	}
	checkLinks(t, e)
	b := e.RemoveChildAt(2)
	if b.Tag() != "b" || b.Parent() != nil || b.Index() != -1 {
		t.Errorf("removed child should be detached, is %s at %d", b, b.Index())
	}
	if e.String() != "F(a, x, c, z)" {
		t.Errorf("unexpected removal result %s", e)
	}
	checkLinks(t, e)
	Dump(e, tracing.LevelDebug)
}

func TestSetChild(t *testing.T) {
	e := New("F", New("a"), New("b"))
	old := e.Child(1)
	e.SetChild(1, New("c"))
	if e.String() != "F(a, c)" {
		t.Errorf("unexpected result %s", e)
	}
	if old.Parent() != nil {
		t.Errorf("overwritten child should be detached")
	}
	checkLinks(t, e)
}

func TestMovedChildKeepsNewParent(t *testing.T) {
	target := New("T", New("x"), New("y"))
	x := target.Child(0)
	wrapper := New("A")
	wrapper.AddChild(x) // x is moved into wrapper
	target.SetChild(0, wrapper)
	if x.Parent() != wrapper {
		t.Errorf("moved child should point to its new parent")
	}
	if target.String() != "T(A(x), y)" {
		t.Errorf("unexpected result %s", target)
	}
	checkLinks(t, target)
}

func TestReplaceByInner(t *testing.T) {
	e := New("F", New("a"), New("G", New("b")), New("c"))
	g := e.Child(1)
	g.ReplaceBy(New("H"))
	if e.String() != "F(a, H, c)" {
		t.Errorf("unexpected result %s", e)
	}
	if g.Parent() != nil {
		t.Errorf("replaced node should be detached")
	}
	checkLinks(t, e)
}

func TestReplaceByRoot(t *testing.T) {
	root := New("A", New("T"))
	h := NewHandler(root)
	target := root.Child(0)
	root.ReplaceBy(target)
	if h.Expression() != target {
		t.Fatalf("handler should hold the replacement, holds %s", h.Expression())
	}
	if target.Handler() != h || target.Parent() != nil {
		t.Errorf("new root should link to handler")
	}
	if root.Handler() != nil {
		t.Errorf("old root should have been released from handler")
	}
}

func TestAttributes(t *testing.T) {
	e := New("Error")
	if _, ok := e.Get("Description"); ok {
		t.Errorf("attribute should not be set")
	}
	e.Set("Description", "Index out of range")
	if e.GetString("Description") != "Index out of range" {
		t.Errorf("attribute not set correctly")
	}
	e.Set("Count", 7)
	if e.GetString("Count") != "7" {
		t.Errorf("expected int attribute to be converted to string, is %q", e.GetString("Count"))
	}
	if e.GetString("missing") != "" {
		t.Errorf("missing attribute should be empty")
	}
}

func TestPrepare(t *testing.T) {
	e := New("F", New("a"), New("G", New("b")))
	e.SetReduced()
	e.Child(1).SetReduced()
	e.Child(1).Child(0).SetReduced()
	Prepare(e)
	var check func(*Expression)
	check = func(x *Expression) {
		if x.IsReduced() {
			t.Errorf("node %s is still marked reduced", x)
		}
		for _, ch := range x.Children() {
			check(ch)
		}
	}
	check(e)
}

func TestFingerprint(t *testing.T) {
	a := New("F", New("x"), New("y"))
	b := New("F", New("x"), New("y"))
	if !Equal(a, b) {
		t.Errorf("expected %s and %s to be equal", a, b)
	}
	b.Child(1).Set("Value", 3)
	if Equal(a, b) {
		t.Errorf("attributes should contribute to fingerprint")
	}
	c := New("F", New("y"), New("x"))
	if Equal(a, c) {
		t.Errorf("order of children should contribute to fingerprint")
	}
	a.SetReduced()
	if !Equal(a, New("F", New("x"), New("y"))) {
		t.Errorf("reduced flag should not contribute to fingerprint")
	}
}

func TestReplaceByDetached(t *testing.T) {
	e := New("A", New("T"))
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected replacing a detached expression to panic")
		}
	}()
	e.ReplaceBy(e.Child(0))
}
