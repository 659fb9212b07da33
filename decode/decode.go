// Package decode implements composable decoders from the generic
// jsontree.Value into typed Go values.
//
// A Decoder is a pure function; decoders are built once, composed freely,
// and run per input. Failures are structured *jsontree.Error values that
// render a path-aware message only when asked.
//
// Entry points
//   - FromValue / FromString / FromBytes: run a decoder against input.
//   - Primitives: String, Bool, Int, Float, plus the extended set
//     (Int64, Uint64, BigInt, Decimal, Guid, Datetime, DatetimeOffset).
//   - Navigation: Field, At, Index.
//   - Combinators: List, Dict, Option, OneOf, Nil, Succeed, Fail, AndThen,
//     Map..Map8.
//   - Object builder: Object with Required/Optional getters.
package decode

import (
	"github.com/solvang/jsontree"
	jsonsrc "github.com/solvang/jsontree/source/json"
)

// Decoder maps a Value to a typed result. It is stateless and referentially
// transparent: the same decoder applied to the same Value always yields the
// same result, so decoders may be shared across goroutines.
//
// A non-nil error is always a *jsontree.Error.
type Decoder[T any] func(jsontree.Value) (T, error)

// FromValue runs d against an already-parsed value.
func FromValue[T any](d Decoder[T], v jsontree.Value) (T, error) {
	return d(v)
}

// FromBytes parses b as JSON and runs d against the result. A parse failure
// surfaces as a Direct error wrapping the parser's message.
func FromBytes[T any](d Decoder[T], b []byte) (T, error) {
	v, err := jsonsrc.Parse(b)
	if err != nil {
		var zero T
		return zero, jsontree.NewDirect("Given an invalid JSON: " + err.Error())
	}
	return d(v)
}

// FromString is FromBytes over a string input.
func FromString[T any](d Decoder[T], s string) (T, error) {
	return FromBytes(d, []byte(s))
}

// Unwrap runs d against v and panics with the rendered error on failure,
// for call sites that treat a decode failure as fatal.
func Unwrap[T any](d Decoder[T], v jsontree.Value) T {
	t, err := d(v)
	if err != nil {
		panic(err.Error())
	}
	return t
}
