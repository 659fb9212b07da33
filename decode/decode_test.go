package decode_test

import (
	"strings"
	"testing"

	"github.com/solvang/jsontree"
	"github.com/solvang/jsontree/decode"
)

func TestFromString(t *testing.T) {
	got, err := decode.FromString(userDecoder, `{"firstname":"maxime","age":25}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != (user{Name: "maxime", Age: 25}) {
		t.Fatalf("got %+v", got)
	}
}

func TestFromString_InvalidJSON(t *testing.T) {
	_, err := decode.FromString(userDecoder, `{"firstname":`)
	e := wantCode(t, err, jsontree.CodeDirect)
	if !strings.HasPrefix(e.Error(), "Given an invalid JSON: ") {
		t.Fatalf("parser failures must surface as a Direct message, got %q", e.Error())
	}
}

func TestFromValue(t *testing.T) {
	v := jsontree.Number(5)
	got, err := decode.FromValue(decode.Int, v)
	if err != nil || got != 5 {
		t.Fatalf("got %v, err %v", got, err)
	}
}

func TestUnwrap(t *testing.T) {
	if got := decode.Unwrap(decode.Int, jsontree.Number(7)); got != 7 {
		t.Fatalf("got %v", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on decode failure")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "Expecting an int") {
			t.Fatalf("panic must carry the rendered message, got %v", r)
		}
	}()
	decode.Unwrap(decode.Int, jsontree.String("no"))
}

func TestRoundTrip_DecodeOfEncodeIsIdentity(t *testing.T) {
	// decode(parse(print(x))) == x for the primitive shapes.
	v := jsontree.ObjectOf(
		m("s", jsontree.String("text")),
		m("i", jsontree.Number(42)),
		m("b", jsontree.Bool(true)),
		m("f", jsontree.Number(0.5)),
		m("xs", jsontree.Array(jsontree.Number(1), jsontree.Number(2))),
	)
	text, err := v.JSON(0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	type rec struct {
		S  string
		I  int
		B  bool
		F  float64
		Xs []int
	}
	d := decode.Object(func(f *decode.Fields) rec {
		return rec{
			S:  decode.Required(f, "s", decode.String),
			I:  decode.Required(f, "i", decode.Int),
			B:  decode.Required(f, "b", decode.Bool),
			F:  decode.Required(f, "f", decode.Float),
			Xs: decode.Required(f, "xs", decode.List(decode.Int)),
		}
	})
	got, err := decode.FromString(d, text)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.S != "text" || got.I != 42 || got.B != true || got.F != 0.5 || len(got.Xs) != 2 {
		t.Fatalf("got %+v", got)
	}
}
