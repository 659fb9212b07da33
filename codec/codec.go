// Package codec pairs a decoder with its matching encoder so a domain type
// round-trips through the generic tree with one declaration.
package codec

import (
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/solvang/jsontree"
	"github.com/solvang/jsontree/decode"
	"github.com/solvang/jsontree/encode"
)

// Codec is a bidirectional converter for T: Decoder consumes the wire tree,
// Encode rebuilds it. Encode has no failure mode; values that came out of
// Decoder always re-encode.
type Codec[T any] struct {
	Decoder decode.Decoder[T]
	Encode  func(T) jsontree.Value
}

// Time round-trips a timestamp through RFC 3339 text, normalized to UTC.
func Time() Codec[time.Time] {
	return Codec[time.Time]{Decoder: decode.Datetime, Encode: encode.Datetime}
}

// TimeOffset round-trips a timestamp through RFC 3339 text, keeping the
// zone offset it was written with.
func TimeOffset() Codec[time.Time] {
	return Codec[time.Time]{Decoder: decode.DatetimeOffset, Encode: encode.DatetimeOffset}
}

// Guid round-trips an RFC 4122 UUID through its hyphenated string form.
func Guid() Codec[uuid.UUID] {
	return Codec[uuid.UUID]{Decoder: decode.Guid, Encode: encode.Guid}
}

// Decimal round-trips an arbitrary-precision decimal through its canonical
// string form, avoiding float64 precision loss.
func Decimal() Codec[*apd.Decimal] {
	return Codec[*apd.Decimal]{Decoder: decode.Decimal, Encode: encode.Decimal}
}

// BigInt round-trips an arbitrary-precision integer through its decimal
// string form.
func BigInt() Codec[*big.Int] {
	return Codec[*big.Int]{Decoder: decode.BigInt, Encode: encode.BigInt}
}

// Int64 round-trips a 64-bit integer through its canonical string form.
func Int64() Codec[int64] {
	return Codec[int64]{Decoder: decode.Int64, Encode: encode.Int64}
}

// Uint64 round-trips a 64-bit unsigned integer through its canonical string
// form.
func Uint64() Codec[uint64] {
	return Codec[uint64]{Decoder: decode.Uint64, Encode: encode.Uint64}
}

// Map projects a codec for the wire type A onto a domain type B. dec may
// reject values; a rejection that is not already a *jsontree.Error is
// wrapped as a FailMessage so the Decoder contract holds. enc must be
// total.
func Map[A, B any](c Codec[A], dec func(A) (B, error), enc func(B) A) Codec[B] {
	return Codec[B]{
		Decoder: func(v jsontree.Value) (B, error) {
			a, err := c.Decoder(v)
			if err != nil {
				var zero B
				return zero, err
			}
			b, err := dec(a)
			if err != nil {
				var zero B
				if _, ok := jsontree.AsError(err); ok {
					return zero, err
				}
				return zero, jsontree.NewFailMessage(err.Error())
			}
			return b, nil
		},
		Encode: func(b B) jsontree.Value { return c.Encode(enc(b)) },
	}
}
