package yaml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/solvang/jsontree"
	"github.com/solvang/jsontree/decode"
	srcyaml "github.com/solvang/jsontree/source/yaml"
)

func TestParse_MappingOrderPreserved(t *testing.T) {
	got, err := srcyaml.ParseString("z: 1\na: 2\nm: 3\n")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Kind() != jsontree.KindObject {
		t.Fatalf("kind = %v", got.Kind())
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, got.Object().Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Scalars(t *testing.T) {
	got, err := srcyaml.ParseString("s: hello\nb: true\ni: 42\nf: 0.5\nn: null\nhex: 0x1A\n")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := jsontree.ObjectOf(
		jsontree.Member{Key: "s", Value: jsontree.String("hello")},
		jsontree.Member{Key: "b", Value: jsontree.Bool(true)},
		jsontree.Member{Key: "i", Value: jsontree.Number(42)},
		jsontree.Member{Key: "f", Value: jsontree.Number(0.5)},
		jsontree.Member{Key: "n", Value: jsontree.Null()},
		jsontree.Member{Key: "hex", Value: jsontree.Number(26)},
	)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParse_Sequence(t *testing.T) {
	got, err := srcyaml.ParseString("- 1\n- two\n- false\n")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := jsontree.Array(jsontree.Number(1), jsontree.String("two"), jsontree.Bool(false))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParse_AnchorAndAlias(t *testing.T) {
	got, err := srcyaml.ParseString("base: &b 5\ncopy: *b\n")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := jsontree.ObjectOf(
		jsontree.Member{Key: "base", Value: jsontree.Number(5)},
		jsontree.Member{Key: "copy", Value: jsontree.Number(5)},
	)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParse_EmptyDocumentIsNull(t *testing.T) {
	got, err := srcyaml.ParseString("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.IsNull() {
		t.Fatalf("got %v, want null", got)
	}
}

func TestParse_NonScalarKeyRejected(t *testing.T) {
	if _, err := srcyaml.ParseString("? [a, b]\n: 1\n"); err == nil {
		t.Fatalf("non-scalar mapping key must fail")
	}
}

func TestParse_SameDecodersRunOverYAML(t *testing.T) {
	v, err := srcyaml.ParseString("firstname: maxime\nage: 25\n")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	type user struct {
		Name string
		Age  int
	}
	d := decode.Object(func(f *decode.Fields) user {
		return user{
			Name: decode.Required(f, "firstname", decode.String),
			Age:  decode.Required(f, "age", decode.Int),
		}
	})
	got, err := decode.FromValue(d, v)
	if err != nil || got != (user{Name: "maxime", Age: 25}) {
		t.Fatalf("got %+v, err %v", got, err)
	}
}
