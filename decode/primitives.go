package decode

import (
	"math"

	"github.com/solvang/jsontree"
)

// String succeeds only on a JSON string.
var String Decoder[string] = func(v jsontree.Value) (string, error) {
	if v.Kind() != jsontree.KindString {
		return "", jsontree.NewBadPrimitive("a string", v)
	}
	return v.Text(), nil
}

// Bool succeeds only on a JSON boolean.
var Bool Decoder[bool] = func(v jsontree.Value) (bool, error) {
	if v.Kind() != jsontree.KindBool {
		return false, jsontree.NewBadPrimitive("a boolean", v)
	}
	return v.Bool(), nil
}

// Float succeeds on any JSON number.
var Float Decoder[float64] = func(v jsontree.Value) (float64, error) {
	if v.Kind() != jsontree.KindNumber {
		return 0, jsontree.NewBadPrimitive("a float", v)
	}
	return v.Number(), nil
}

// Int succeeds on an integral JSON number within the 32-bit signed range.
// Fractional or out-of-range numbers fail with an extra reason so "looks
// numeric but invalid" reads differently from "not numeric at all".
var Int Decoder[int] = func(v jsontree.Value) (int, error) {
	if v.Kind() != jsontree.KindNumber {
		return 0, jsontree.NewBadPrimitive("an int", v)
	}
	f := v.Number()
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, jsontree.NewBadPrimitiveExtra("an int", v, "value is not an integral value")
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, jsontree.NewBadPrimitiveExtra("an int", v, "value was either too large or too small for an int")
	}
	return int(f), nil
}
