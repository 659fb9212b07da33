// Package encode builds jsontree.Value trees from typed Go values and
// renders them to JSON text. Construction has no failure mode; wide numeric
// and domain types are emitted in their canonical string forms so they
// survive the float64 number representation without precision loss.
package encode

import (
	"math/big"
	"sort"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/solvang/jsontree"
)

// Null returns the null value.
func Null() jsontree.Value { return jsontree.Null() }

// Bool wraps a boolean.
func Bool(b bool) jsontree.Value { return jsontree.Bool(b) }

// Int wraps a 32-bit-range integer as a JSON number.
func Int(i int) jsontree.Value { return jsontree.Number(float64(i)) }

// Float wraps a float as a JSON number.
func Float(f float64) jsontree.Value { return jsontree.Number(f) }

// String wraps a string.
func String(s string) jsontree.Value { return jsontree.String(s) }

// Int64 emits a 64-bit integer in its canonical decimal string form.
func Int64(i int64) jsontree.Value {
	return jsontree.String(big.NewInt(i).String())
}

// Uint64 emits a 64-bit unsigned integer in its canonical string form.
func Uint64(u uint64) jsontree.Value {
	return jsontree.String(new(big.Int).SetUint64(u).String())
}

// BigInt emits an arbitrary-precision integer in its decimal string form.
func BigInt(i *big.Int) jsontree.Value { return jsontree.String(i.String()) }

// Decimal emits an arbitrary-precision decimal in its canonical string form.
func Decimal(d *apd.Decimal) jsontree.Value { return jsontree.String(d.String()) }

// Guid emits a UUID in its canonical hyphenated form.
func Guid(u uuid.UUID) jsontree.Value { return jsontree.String(u.String()) }

// Datetime emits a timestamp as RFC 3339 in UTC, the form Datetime decodes.
func Datetime(t time.Time) jsontree.Value {
	return jsontree.String(t.UTC().Format(time.RFC3339Nano))
}

// DatetimeOffset emits a timestamp as RFC 3339 keeping its zone offset.
func DatetimeOffset(t time.Time) jsontree.Value {
	return jsontree.String(t.Format(time.RFC3339Nano))
}

// Object builds an object value from members in order.
func Object(members ...jsontree.Member) jsontree.Value {
	return jsontree.ObjectOf(members...)
}

// Field pairs a key with a value for Object.
func Field(key string, v jsontree.Value) jsontree.Member {
	return jsontree.Member{Key: key, Value: v}
}

// Array builds an array value from elements in order.
func Array(elems ...jsontree.Value) jsontree.Value {
	return jsontree.Array(elems...)
}

// Tuple2 builds a fixed-size two-element array.
func Tuple2(a, b jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b)
}

// Tuple3 builds a fixed-size three-element array.
func Tuple3(a, b, c jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b, c)
}

// Tuple4 builds a fixed-size four-element array.
func Tuple4(a, b, c, d jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b, c, d)
}

// Tuple5 builds a fixed-size five-element array.
func Tuple5(a, b, c, d, e jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b, c, d, e)
}

// Tuple6 builds a fixed-size six-element array.
func Tuple6(a, b, c, d, e, f jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b, c, d, e, f)
}

// Tuple7 builds a fixed-size seven-element array.
func Tuple7(a, b, c, d, e, f, g jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b, c, d, e, f, g)
}

// Tuple8 builds a fixed-size eight-element array.
func Tuple8(a, b, c, d, e, f, g, h jsontree.Value) jsontree.Value {
	return jsontree.Array(a, b, c, d, e, f, g, h)
}

// List builds an array value from a slice.
func List(elems []jsontree.Value) jsontree.Value {
	return jsontree.Array(elems...)
}

// Dict builds an object from a Go map. Map iteration order is random, so
// keys are sorted for a deterministic result.
func Dict(m map[string]jsontree.Value) jsontree.Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := jsontree.NewObject()
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o.Value()
}

// ToString renders v as JSON text. indent 0 produces the compact
// single-line form; indent > 0 pretty-prints with that many spaces per
// nesting level. ToString panics on a cyclic Object graph, which cannot
// occur for trees built with this package's constructors.
func ToString(v jsontree.Value, indent int) string {
	s, err := v.JSON(indent)
	if err != nil {
		panic(err)
	}
	return s
}
