package jsontree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/solvang/jsontree"
)

func TestObject_InsertionOrderPreserved(t *testing.T) {
	o := jsontree.NewObject().
		Set("z", jsontree.Number(1)).
		Set("a", jsontree.Number(2)).
		Set("m", jsontree.Number(3))

	got := o.Keys()
	want := []string{"z", "a", "m"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_SetReplacesInPlace(t *testing.T) {
	o := jsontree.NewObject().
		Set("a", jsontree.Number(1)).
		Set("b", jsontree.Number(2)).
		Set("a", jsontree.Number(3))

	if o.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", o.Len())
	}
	k, v := o.At(0)
	if k != "a" || v.Number() != 3 {
		t.Fatalf("expected a=3 at position 0, got %s=%v", k, v)
	}
	if got, ok := o.Get("a"); !ok || got.Number() != 3 {
		t.Fatalf("Get(a) = %v, %v", got, ok)
	}
}

func TestObject_GetMissingAndNil(t *testing.T) {
	o := jsontree.NewObject()
	if _, ok := o.Get("nope"); ok {
		t.Fatalf("expected miss for absent key")
	}
	var nilObj *jsontree.Object
	if _, ok := nilObj.Get("x"); ok {
		t.Fatalf("nil object must report miss")
	}
	if nilObj.Len() != 0 {
		t.Fatalf("nil object length must be 0")
	}
	if nilObj.Has("x") {
		t.Fatalf("nil object must not report presence")
	}
}

func TestObject_HasSeesExplicitNull(t *testing.T) {
	o := jsontree.NewObject().Set("k", jsontree.Null())
	if !o.Has("k") {
		t.Fatalf("explicitly null field must count as present")
	}
	v, ok := o.Get("k")
	if !ok || !v.IsNull() {
		t.Fatalf("Get(k) = %v, %v; want null, true", v, ok)
	}
}

func TestValue_KindsAndZero(t *testing.T) {
	var zero jsontree.Value
	if !zero.IsNull() || zero.Kind() != jsontree.KindNull {
		t.Fatalf("zero Value must be null, got kind %v", zero.Kind())
	}
	cases := []struct {
		v    jsontree.Value
		kind jsontree.Kind
	}{
		{jsontree.Null(), jsontree.KindNull},
		{jsontree.Bool(true), jsontree.KindBool},
		{jsontree.Number(1.5), jsontree.KindNumber},
		{jsontree.String("x"), jsontree.KindString},
		{jsontree.Array(jsontree.Null()), jsontree.KindArray},
		{jsontree.ObjectOf(), jsontree.KindObject},
	}
	for _, c := range cases {
		if c.v.Kind() != c.kind {
			t.Fatalf("kind = %v, want %v", c.v.Kind(), c.kind)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	a := jsontree.ObjectOf(
		jsontree.Member{Key: "x", Value: jsontree.Number(1)},
		jsontree.Member{Key: "y", Value: jsontree.Array(jsontree.String("s"), jsontree.Bool(false))},
	)
	b := jsontree.ObjectOf(
		jsontree.Member{Key: "x", Value: jsontree.Number(1)},
		jsontree.Member{Key: "y", Value: jsontree.Array(jsontree.String("s"), jsontree.Bool(false))},
	)
	if !a.Equal(b) {
		t.Fatalf("structurally identical objects must be equal")
	}

	// Same members, different order: not equal under ordered semantics.
	c := jsontree.ObjectOf(
		jsontree.Member{Key: "y", Value: jsontree.Array(jsontree.String("s"), jsontree.Bool(false))},
		jsontree.Member{Key: "x", Value: jsontree.Number(1)},
	)
	if a.Equal(c) {
		t.Fatalf("reordered objects must not be equal")
	}
	if a.Equal(jsontree.Null()) {
		t.Fatalf("object must not equal null")
	}
}
