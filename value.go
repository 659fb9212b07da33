package jsontree

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a lowercase name for the kind, suitable for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a node of the generic JSON-shaped tree that decoders consume and
// encoders produce. It is a closed tagged union over the six JSON variants.
// The zero Value is Null. Decoders never mutate a Value; they only read it
// and narrow to sub-values, so a Value may be shared freely across
// goroutines.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool wraps a boolean into a Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64 into a Value. JSON has a single number type; integer
// constructors live in the encode package and funnel through here.
func Number(f float64) Value { return Value{kind: KindNumber, n: f} }

// String wraps a string into a Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array builds an array Value from the given elements. The elements are
// retained as-is; callers must not mutate the backing slice afterwards.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Member is a single key/value entry of an object, used where insertion
// order matters and a Go map would lose it.
type Member struct {
	Key   string
	Value Value
}

// ObjectOf builds an object Value from members in order. A repeated key
// replaces the earlier value but keeps its original position.
func ObjectOf(members ...Member) Value {
	o := NewObject()
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o.Value()
}

// Kind reports which variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the wrapped boolean. Valid only when Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the wrapped number. Valid only when Kind is KindNumber.
func (v Value) Number() float64 { return v.n }

// Text returns the wrapped string. Valid only when Kind is KindString.
func (v Value) Text() string { return v.s }

// Elems returns the array elements. Valid only when Kind is KindArray; the
// returned slice is the backing store and must not be mutated.
func (v Value) Elems() []Value { return v.arr }

// Object returns the ordered member table, or nil when the Value is not an
// object.
func (v Value) Object() *Object { return v.obj }

// Equal reports deep equality. Objects are equal when they hold the same
// keys in the same order with equal values.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.n == w.n
	case KindString:
		return v.s == w.s
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != w.obj.Len() {
			return false
		}
		for i := 0; i < v.obj.Len(); i++ {
			ka, va := v.obj.At(i)
			kb, vb := w.obj.At(i)
			if ka != kb || !va.Equal(vb) {
				return false
			}
		}
		return true
	}
	return false
}

// Object is an insertion-ordered string-to-Value table with unique keys.
type Object struct {
	keys []string
	idx  map[string]int
	vals []Value
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{idx: map[string]int{}}
}

// Set inserts or replaces the value for key. Replacing keeps the key's
// original position.
func (o *Object) Set(key string, v Value) *Object {
	if i, ok := o.idx[key]; ok {
		o.vals[i] = v
		return o
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
	return o
}

// Get looks up the value for key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.idx[key]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

// Has reports whether key is present, regardless of its value.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.idx[key]
	return ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// At returns the i-th member in insertion order.
func (o *Object) At(i int) (string, Value) { return o.keys[i], o.vals[i] }

// Keys returns the keys in insertion order as a fresh slice.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Value wraps the table into an object Value.
func (o *Object) Value() Value { return Value{kind: KindObject, obj: o} }
