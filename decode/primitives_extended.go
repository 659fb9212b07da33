package decode

import (
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/solvang/jsontree"
)

// maxSafeNumber is the largest integer a float64 JSON number can hold
// exactly (2^53 - 1). Wider values must arrive as strings.
const maxSafeNumber = 1<<53 - 1

// Int64 decodes a 64-bit signed integer from its canonical decimal string
// form, or from an integral JSON number inside the exact float64 range.
var Int64 Decoder[int64] = func(v jsontree.Value) (int64, error) {
	switch v.Kind() {
	case jsontree.KindString:
		i, err := strconv.ParseInt(v.Text(), 10, 64)
		if err != nil {
			return 0, jsontree.NewBadPrimitiveExtra("an int64", v, err.Error())
		}
		return i, nil
	case jsontree.KindNumber:
		f, err := integralNumber(v, "an int64")
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	default:
		return 0, jsontree.NewBadPrimitive("an int64", v)
	}
}

// Uint64 decodes a 64-bit unsigned integer; same representations as Int64.
var Uint64 Decoder[uint64] = func(v jsontree.Value) (uint64, error) {
	switch v.Kind() {
	case jsontree.KindString:
		u, err := strconv.ParseUint(v.Text(), 10, 64)
		if err != nil {
			return 0, jsontree.NewBadPrimitiveExtra("an uint64", v, err.Error())
		}
		return u, nil
	case jsontree.KindNumber:
		f, err := integralNumber(v, "an uint64")
		if err != nil {
			return 0, err
		}
		if f < 0 {
			return 0, jsontree.NewBadPrimitiveExtra("an uint64", v, "value is negative")
		}
		return uint64(f), nil
	default:
		return 0, jsontree.NewBadPrimitive("an uint64", v)
	}
}

// BigInt decodes an arbitrary-precision integer from its decimal string
// form, or from an integral JSON number.
var BigInt Decoder[*big.Int] = func(v jsontree.Value) (*big.Int, error) {
	switch v.Kind() {
	case jsontree.KindString:
		i, ok := new(big.Int).SetString(v.Text(), 10)
		if !ok {
			return nil, jsontree.NewBadPrimitiveExtra("a bigint", v, "value is not a valid integer literal")
		}
		return i, nil
	case jsontree.KindNumber:
		f, err := integralNumber(v, "a bigint")
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(f)), nil
	default:
		return nil, jsontree.NewBadPrimitive("a bigint", v)
	}
}

// Decimal decodes an arbitrary-precision decimal from its canonical string
// form, or from any JSON number via its shortest decimal rendering.
var Decimal Decoder[*apd.Decimal] = func(v jsontree.Value) (*apd.Decimal, error) {
	var text string
	switch v.Kind() {
	case jsontree.KindString:
		text = v.Text()
	case jsontree.KindNumber:
		text = strconv.FormatFloat(v.Number(), 'g', -1, 64)
	default:
		return nil, jsontree.NewBadPrimitive("a decimal", v)
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, jsontree.NewBadPrimitiveExtra("a decimal", v, err.Error())
	}
	return d, nil
}

// Guid decodes an RFC 4122 UUID from its string form.
var Guid Decoder[uuid.UUID] = func(v jsontree.Value) (uuid.UUID, error) {
	if v.Kind() != jsontree.KindString {
		return uuid.UUID{}, jsontree.NewBadPrimitive("a guid", v)
	}
	u, err := uuid.Parse(v.Text())
	if err != nil {
		return uuid.UUID{}, jsontree.NewBadPrimitiveExtra("a guid", v, err.Error())
	}
	return u, nil
}

// Datetime decodes an ISO-8601 / RFC 3339 timestamp and normalizes it to
// UTC. Use DatetimeOffset to keep the original offset.
var Datetime Decoder[time.Time] = func(v jsontree.Value) (time.Time, error) {
	t, err := rfc3339(v, "a datetime")
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// DatetimeOffset decodes an ISO-8601 / RFC 3339 timestamp, preserving the
// zone offset it was written with.
var DatetimeOffset Decoder[time.Time] = func(v jsontree.Value) (time.Time, error) {
	return rfc3339(v, "a datetimeoffset")
}

func rfc3339(v jsontree.Value, desc string) (time.Time, error) {
	if v.Kind() != jsontree.KindString {
		return time.Time{}, jsontree.NewBadPrimitive(desc, v)
	}
	t, err := time.Parse(time.RFC3339Nano, v.Text())
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, v.Text()); err2 == nil {
			return t2, nil
		}
		return time.Time{}, jsontree.NewBadPrimitiveExtra(desc, v, err.Error())
	}
	return t, nil
}

func integralNumber(v jsontree.Value, desc string) (float64, error) {
	f := v.Number()
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, jsontree.NewBadPrimitiveExtra(desc, v, "value is not an integral value")
	}
	if f < -maxSafeNumber || f > maxSafeNumber {
		return 0, jsontree.NewBadPrimitiveExtra(desc, v, "value is outside the exactly representable number range; use the string form")
	}
	return f, nil
}
