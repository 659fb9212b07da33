package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/solvang/jsontree"
	"github.com/solvang/jsontree/codec"
	"github.com/solvang/jsontree/decode"
)

func TestTime_RoundTrip(t *testing.T) {
	c := codec.Time()
	ts := time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)
	v := c.Encode(ts)
	got, err := c.Decoder(v)
	if err != nil || !got.Equal(ts) {
		t.Fatalf("got %v, err %v", got, err)
	}
}

func TestTimeOffset_RoundTripKeepsZone(t *testing.T) {
	c := codec.TimeOffset()
	ts := time.Date(2021, 3, 14, 15, 9, 26, 0, time.FixedZone("plus9", 9*60*60))
	got, err := c.Decoder(c.Encode(ts))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, offset := got.Zone()
	if offset != 9*60*60 {
		t.Fatalf("offset = %d, want +9h", offset)
	}
}

func TestGuid_RoundTrip(t *testing.T) {
	c := codec.Guid()
	id := uuid.MustParse("8b2e41c4-90dd-4e59-91b1-a8a2c4b2c3d4")
	got, err := c.Decoder(c.Encode(id))
	if err != nil || got != id {
		t.Fatalf("got %v, err %v", got, err)
	}
}

func TestDecimal_RoundTripKeepsPrecision(t *testing.T) {
	c := codec.Decimal()
	// A value float64 cannot hold exactly.
	in := jsontree.String("0.10000000000000000000000000001")
	d, err := c.Decoder(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !c.Encode(d).Equal(in) {
		t.Fatalf("canonical form changed: %v", c.Encode(d))
	}
}

func TestBigIntAndIntegers_RoundTrip(t *testing.T) {
	bi := codec.BigInt()
	v := jsontree.String("123456789012345678901234567890")
	x, err := bi.Decoder(v)
	if err != nil || !bi.Encode(x).Equal(v) {
		t.Fatalf("bigint round-trip failed: %v, %v", x, err)
	}

	i64 := codec.Int64()
	n, err := i64.Decoder(jsontree.String("-42"))
	if err != nil || n != -42 {
		t.Fatalf("int64: %v, %v", n, err)
	}
	u64 := codec.Uint64()
	u, err := u64.Decoder(jsontree.Number(7))
	if err != nil || u != 7 {
		t.Fatalf("uint64: %v, %v", u, err)
	}
}

func TestMap_ProjectsDomainType(t *testing.T) {
	type userID uuid.UUID
	c := codec.Map(codec.Guid(),
		func(u uuid.UUID) (userID, error) { return userID(u), nil },
		func(id userID) uuid.UUID { return uuid.UUID(id) },
	)
	id := uuid.MustParse("f6a5e9ab-6f5f-4c2f-9f53-6a2cf9a33111")
	got, err := c.Decoder(jsontree.String(id.String()))
	if err != nil || uuid.UUID(got) != id {
		t.Fatalf("got %v, err %v", got, err)
	}
}

func TestMap_WrapsRejections(t *testing.T) {
	c := codec.Map(codec.Int64(),
		func(n int64) (int64, error) {
			if n < 0 {
				return 0, errors.New("must be non-negative")
			}
			return n, nil
		},
		func(n int64) int64 { return n },
	)
	_, err := decode.FromValue(c.Decoder, jsontree.Number(-1))
	e, ok := jsontree.AsError(err)
	if !ok || e.Code != jsontree.CodeFailMessage {
		t.Fatalf("rejections must surface as FailMessage, got %v", err)
	}
}
