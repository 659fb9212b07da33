package decode

import "github.com/solvang/jsontree"

// Fields is the capability handle passed to an Object builder function. It
// captures the root input value of the current decode and latches the first
// getter failure: once a getter has failed, every later getter returns its
// zero value (or fallback) without evaluating its decoder, and the Object
// decoder reports the latched error.
//
// Getters are package-level functions rather than methods because Go
// methods cannot carry their own type parameters.
type Fields struct {
	root jsontree.Value
	err  error
}

// Err exposes the latched error, letting a builder function bail out early
// from its own logic if it wants to.
func (f *Fields) Err() error { return f.err }

// Object builds a record-like value from independent field accessors in one
// flat expression. build runs once per decode with a fresh Fields bound to
// the input value:
//
//	user := decode.Object(func(f *decode.Fields) User {
//		return User{
//			Name: decode.Required(f, "firstname", decode.String),
//			Age:  decode.Required(f, "age", decode.Int),
//		}
//	})
//
// Evaluation is fail-fast and ordered: the first failing getter decides the
// error, matching how structured-data validation is usually consumed.
func Object[T any](build func(*Fields) T) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		f := &Fields{root: v}
		t := build(f)
		if f.err != nil {
			var zero T
			return zero, f.err
		}
		return t, nil
	}
}

// Required decodes the named field of the root object, failing the whole
// Object decode if the field is missing or d rejects its value.
func Required[T any](f *Fields, name string, d Decoder[T]) T {
	return runRequired(f, Field(name, d))
}

// RequiredAt decodes the value at a nested key path, failing the whole
// Object decode if the path is absent or d rejects the value.
func RequiredAt[T any](f *Fields, path []string, d Decoder[T]) T {
	return runRequired(f, At(path, d))
}

// RequiredIndex decodes element i of the root array, failing the whole
// Object decode if the array is too short or d rejects the element.
func RequiredIndex[T any](f *Fields, i int, d Decoder[T]) T {
	return runRequired(f, Index(i, d))
}

// Optional decodes the named field of the root object, yielding fallback
// when the field is absent. A present-but-malformed value still fails the
// whole decode: optionality covers absence, not bad data.
func Optional[T any](f *Fields, name string, d Decoder[T], fallback T) T {
	return runOptional(f, Field(name, d), fallback)
}

// OptionalAt decodes the value at a nested key path, yielding fallback when
// any key along the path is absent.
func OptionalAt[T any](f *Fields, path []string, d Decoder[T], fallback T) T {
	return runOptional(f, At(path, d), fallback)
}

// OptionalIndex decodes element i of the root array, yielding fallback when
// the array is too short. A non-array root still fails.
func OptionalIndex[T any](f *Fields, i int, d Decoder[T], fallback T) T {
	if f.err != nil {
		return fallback
	}
	t, err := Index(i, d)(f.root)
	if err == nil {
		return t
	}
	if e, ok := jsontree.AsError(err); ok && e.Code == jsontree.CodeTooSmallArray {
		return fallback
	}
	f.err = err
	return fallback
}

func runRequired[T any](f *Fields, d Decoder[T]) T {
	var zero T
	if f.err != nil {
		return zero
	}
	t, err := d(f.root)
	if err != nil {
		f.err = err
		return zero
	}
	return t
}

func runOptional[T any](f *Fields, d Decoder[T], fallback T) T {
	if f.err != nil {
		return fallback
	}
	t, err := d(f.root)
	if err == nil {
		return t
	}
	if e, ok := jsontree.AsError(err); ok && e.PresenceError() {
		return fallback
	}
	f.err = err
	return fallback
}
