// Package jsontree provides:
//
// - A generic, immutable JSON-shaped tree (Value) with insertion-ordered objects
// - A closed structured error model for decode failures (Error, ErrorCode)
// - A deterministic JSON serializer with configurable indentation (Value.JSON)
//
// Design policy:
// - Keep only the shared kernel in the root package: the tree, the errors, the printer.
// - Place the decoder combinators under decode/, the encoder mirror under encode/,
//   bidirectional helpers under codec/, and text parsers under source/.
// - Error rendering is lazy: combinators build and discard Error values freely;
//   only the final consumer pays for pretty-printing the offending value.
//
// Typical usage:
//
//	v, err := json.Parse(data) // source/json
//	user, err := decode.FromValue(userDecoder, v)
//
//	text := encode.ToString(encode.Object(
//		jsontree.Member{Key: "name", Value: encode.String("maxime")},
//	), 4)
package jsontree
