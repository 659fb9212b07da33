package decode

import "github.com/solvang/jsontree"

// Map transforms a decoder's result with a pure function.
func Map[A, T any](f func(A) T, da Decoder[A]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		a, err := da(v)
		if err != nil {
			var zero T
			return zero, err
		}
		return f(a), nil
	}
}

// Map2 runs two decoders against the same input value and combines their
// results. Sub-decoders are evaluated left to right and the first failure
// aborts, so which error surfaces is deterministic. Compose with Field/At/
// Index when the parts live in different sub-values:
//
//	point := decode.Map2(
//		func(x, y float64) Point { return Point{x, y} },
//		decode.Field("x", decode.Float),
//		decode.Field("y", decode.Float),
//	)
func Map2[A, B, T any](f func(A, B) T, da Decoder[A], db Decoder[B]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	}
}

// Map3 is Map2 for three decoders.
func Map3[A, B, C, T any](f func(A, B, C) T, da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c), nil
	}
}

// Map4 is Map2 for four decoders.
func Map4[A, B, C, D, T any](f func(A, B, C, D) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d), nil
	}
}

// Map5 is Map2 for five decoders.
func Map5[A, B, C, D, E, T any](f func(A, B, C, D, E) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e), nil
	}
}

// Map6 is Map2 for six decoders.
func Map6[A, B, C, D, E, F, T any](f func(A, B, C, D, E, F) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		g, err := df(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g), nil
	}
}

// Map7 is Map2 for seven decoders.
func Map7[A, B, C, D, E, F, G, T any](f func(A, B, C, D, E, F, G) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		g, err := df(v)
		if err != nil {
			return zero, err
		}
		h, err := dg(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g, h), nil
	}
}

// Map8 is Map2 for eight decoders.
func Map8[A, B, C, D, E, F, G, H, T any](f func(A, B, C, D, E, F, G, H) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H]) Decoder[T] {
	return func(v jsontree.Value) (T, error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		g, err := df(v)
		if err != nil {
			return zero, err
		}
		h, err := dg(v)
		if err != nil {
			return zero, err
		}
		i, err := dh(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g, h, i), nil
	}
}
