package decode

import (
	"github.com/solvang/jsontree"
)

// List requires the input to be an array and applies d to every element in
// order. The first element failure aborts the whole decode with that
// element's error; there are no partial results.
func List[T any](d Decoder[T]) Decoder[[]T] {
	return func(v jsontree.Value) ([]T, error) {
		if v.Kind() != jsontree.KindArray {
			return nil, jsontree.NewBadPrimitive("a list", v)
		}
		elems := v.Elems()
		out := make([]T, 0, len(elems))
		for _, e := range elems {
			t, err := d(e)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// Array decodes a JSON array into a slice. It behaves exactly like List and
// exists so call sites can name the shape they expect.
func Array[T any](d Decoder[T]) Decoder[[]T] {
	return func(v jsontree.Value) ([]T, error) {
		if v.Kind() != jsontree.KindArray {
			return nil, jsontree.NewBadPrimitive("an array", v)
		}
		return List(d)(v)
	}
}

// Pair is one decoded object member, keeping the key it was stored under.
type Pair[T any] struct {
	Key   string
	Value T
}

// KeyValuePairs requires the input to be an object (never an array) and
// applies d to every member value, yielding key/value pairs in the object's
// original order. Fail-fast on the first bad member.
func KeyValuePairs[T any](d Decoder[T]) Decoder[[]Pair[T]] {
	return func(v jsontree.Value) ([]Pair[T], error) {
		if v.Kind() != jsontree.KindObject {
			return nil, jsontree.NewBadPrimitive("an object", v)
		}
		o := v.Object()
		out := make([]Pair[T], 0, o.Len())
		for i := 0; i < o.Len(); i++ {
			k, mv := o.At(i)
			t, err := d(mv)
			if err != nil {
				return nil, err
			}
			out = append(out, Pair[T]{Key: k, Value: t})
		}
		return out, nil
	}
}

// Dict decodes an object into a Go map. Key order is necessarily lost; use
// KeyValuePairs when it matters.
func Dict[T any](d Decoder[T]) Decoder[map[string]T] {
	return func(v jsontree.Value) (map[string]T, error) {
		pairs, err := KeyValuePairs(d)(v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]T, len(pairs))
		for _, p := range pairs {
			out[p.Key] = p.Value
		}
		return out, nil
	}
}

// Option runs d and recovers absence into nil: a presence failure (missing
// field or path) yields (nil, nil). Any other failure — the value was
// present but malformed, or a Fail/OneOf fired inside d — still fails the
// decode, so optionality never masks bad data.
func Option[T any](d Decoder[T]) Decoder[*T] {
	return func(v jsontree.Value) (*T, error) {
		t, err := d(v)
		if err == nil {
			return &t, nil
		}
		if e, ok := jsontree.AsError(err); ok && e.PresenceError() {
			return nil, nil
		}
		return nil, err
	}
}

// Nil succeeds only on literal null, yielding the supplied default.
func Nil[T any](def T) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		if !v.IsNull() {
			var zero T
			return zero, jsontree.NewBadPrimitive("null", v)
		}
		return def, nil
	}
}

// Succeed ignores its input and yields t.
func Succeed[T any](t T) Decoder[T] {
	return func(jsontree.Value) (T, error) { return t, nil }
}

// Fail ignores its input and fails with the given message.
func Fail[T any](msg string) Decoder[T] {
	return func(jsontree.Value) (T, error) {
		var zero T
		return zero, jsontree.NewFailMessage(msg)
	}
}

// OneOf tries the decoders in order against the same input; the first
// success wins. When every alternative fails, the rendered sub-errors are
// aggregated into a single BadOneOf in trial order. List the most specific
// alternative first: there is no backtracking beyond sequential trial.
func OneOf[T any](ds ...Decoder[T]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		causes := make([]string, 0, len(ds))
		for _, d := range ds {
			t, err := d(v)
			if err == nil {
				return t, nil
			}
			causes = append(causes, err.Error())
		}
		var zero T
		return zero, jsontree.NewBadOneOf(causes)
	}
}

// AndThen runs d and, on success, feeds the result to f to obtain the
// decoder for the rest — re-applied to the same original input, not a
// sub-value. This enables value-dependent decoding, e.g. a discriminator
// field selecting the decoder for the whole object:
//
//	shape := decode.AndThen(decode.Field("kind", decode.String),
//		func(kind string) decode.Decoder[Shape] { ... })
func AndThen[A, T any](d Decoder[A], f func(A) Decoder[T]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		a, err := d(v)
		if err != nil {
			var zero T
			return zero, err
		}
		return f(a)(v)
	}
}
