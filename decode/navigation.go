package decode

import (
	"strings"

	"github.com/solvang/jsontree"
)

// Field requires the input to be an object carrying the named field, then
// delegates d to that field's value. A missing field is a BadField error; a
// non-object input is a BadType error. A field explicitly set to null is
// present: d decides whether null is acceptable.
func Field[T any](name string, d Decoder[T]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		if v.Kind() != jsontree.KindObject {
			var zero T
			return zero, jsontree.NewBadType("an object", v)
		}
		fv, ok := v.Object().Get(name)
		if !ok {
			var zero T
			return zero, jsontree.NewBadField(name, v)
		}
		return d(fv)
	}
}

// At walks the given keys through nested objects and delegates d to the
// value found at the end. A non-object mid-path is a BadType error citing
// the segments walked so far; a missing key is a BadPath error citing the
// full requested path and the missing segment.
func At[T any](path []string, d Decoder[T]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		cur := v
		for i, name := range path {
			if cur.Kind() != jsontree.KindObject {
				var zero T
				desc := "an object"
				if i > 0 {
					desc += " at `" + strings.Join(path[:i], ".") + "`"
				}
				return zero, jsontree.NewBadType(desc, cur)
			}
			next, ok := cur.Object().Get(name)
			if !ok {
				var zero T
				return zero, jsontree.NewBadPath(path, v, name)
			}
			cur = next
		}
		return d(cur)
	}
}

// Index requires the input to be an array longer than i and delegates d to
// element i. A shorter array is a TooSmallArray error reporting the
// requested index against the actual length; a non-array input is a BadType
// error.
func Index[T any](i int, d Decoder[T]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		if v.Kind() != jsontree.KindArray {
			var zero T
			return zero, jsontree.NewBadType("an array", v)
		}
		elems := v.Elems()
		if i < 0 || i >= len(elems) {
			var zero T
			return zero, jsontree.NewTooSmallArray(i, v)
		}
		return d(elems[i])
	}
}
