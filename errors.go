package jsontree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode names the failure reason of a decode. The set is closed; callers
// can switch over it exhaustively.
type ErrorCode string

const (
	CodeBadPrimitive      ErrorCode = "bad_primitive"       // Value has the wrong primitive kind.
	CodeBadPrimitiveExtra ErrorCode = "bad_primitive_extra" // Right kind family, but the value cannot be converted.
	CodeBadType           ErrorCode = "bad_type"            // Value has the wrong structural kind.
	CodeBadField          ErrorCode = "bad_field"           // Object lacks a required field.
	CodeBadPath           ErrorCode = "bad_path"            // A key along a nested path is missing.
	CodeTooSmallArray     ErrorCode = "too_small_array"     // Array shorter than the requested index.
	CodeFailMessage       ErrorCode = "fail_message"        // A user-supplied Fail decoder ran.
	CodeBadOneOf          ErrorCode = "bad_one_of"          // Every alternative of a OneOf failed.
	CodeDirect            ErrorCode = "direct"              // Opaque boundary failure (e.g. unparseable input text).
)

// Error is the single structured decode failure. Composition never renders
// it; Error() builds the human-readable message on demand, including a
// pretty-printed dump of the offending value, so building and discarding
// errors (as OneOf and Option do) stays cheap.
type Error struct {
	Code        ErrorCode
	Description string   // Expected-kind description ("an int") or, for FailMessage/Direct, the message itself.
	Value       Value    // The offending value; meaningless for FailMessage, BadOneOf and Direct.
	Reason      string   // Extra parse reason (BadPrimitiveExtra) or the missing path segment (BadPath).
	Causes      []string // Rendered sub-messages (BadOneOf only).
}

// NewBadPrimitive reports a value of the wrong primitive kind. desc is the
// expected-kind phrase, e.g. "an int" or "a string".
func NewBadPrimitive(desc string, v Value) *Error {
	return &Error{Code: CodeBadPrimitive, Description: desc, Value: v}
}

// NewBadPrimitiveExtra reports a value of a plausible kind that still could
// not be converted, citing the reason ("value is not an integral value",
// a strconv message, ...).
func NewBadPrimitiveExtra(desc string, v Value, reason string) *Error {
	return &Error{Code: CodeBadPrimitiveExtra, Description: desc, Value: v, Reason: reason}
}

// NewBadType reports a value of the wrong structural kind.
func NewBadType(desc string, v Value) *Error {
	return &Error{Code: CodeBadType, Description: desc, Value: v}
}

// NewBadField reports an object missing the named field.
func NewBadField(name string, v Value) *Error {
	return &Error{
		Code:        CodeBadField,
		Description: "an object with a field named `" + name + "`",
		Value:       v,
	}
}

// NewBadPath reports a missing key while walking a nested path. path is the
// full requested path; missing is the segment that was absent.
func NewBadPath(path []string, v Value, missing string) *Error {
	return &Error{
		Code:        CodeBadPath,
		Description: "an object with a path `" + strings.Join(path, ".") + "`",
		Value:       v,
		Reason:      missing,
	}
}

// NewTooSmallArray reports an array too short for the requested index.
func NewTooSmallArray(index int, v Value) *Error {
	return &Error{
		Code: CodeTooSmallArray,
		Description: fmt.Sprintf(
			"a longer array. Need index `%d` but there are only `%d` entries",
			index, len(v.Elems()),
		),
		Value: v,
	}
}

// NewFailMessage reports a user-triggered failure from a Fail decoder.
func NewFailMessage(msg string) *Error {
	return &Error{Code: CodeFailMessage, Description: msg}
}

// NewBadOneOf reports alternation exhaustion. causes holds the already
// rendered message of every alternative, in trial order.
func NewBadOneOf(causes []string) *Error {
	return &Error{Code: CodeBadOneOf, Causes: causes}
}

// NewDirect wraps an opaque boundary failure, such as a JSON parser message.
func NewDirect(msg string) *Error {
	return &Error{Code: CodeDirect, Description: msg}
}

// ShapeError reports whether the failure means "value present but of the
// wrong kind". Optionality combinators must propagate these rather than
// treat the value as absent.
func (e *Error) ShapeError() bool {
	switch e.Code {
	case CodeBadPrimitive, CodeBadPrimitiveExtra, CodeBadType, CodeTooSmallArray:
		return true
	}
	return false
}

// PresenceError reports whether the failure means "the requested field or
// path is absent". Only these are recoverable with a fallback.
func (e *Error) PresenceError() bool {
	return e.Code == CodeBadField || e.Code == CodeBadPath
}

// Error renders the failure as a multi-line human-readable message. The
// offending value is pretty-printed at indent 4; a value that cannot be
// printed (cyclic object graph) degrades to a fixed fallback line.
func (e *Error) Error() string {
	switch e.Code {
	case CodeBadPrimitiveExtra:
		return "Expecting " + e.Description + " but instead got:\n" + dump(e.Value) +
			"\nReason: " + e.Reason
	case CodeBadPath:
		return "Expecting " + e.Description + " but instead got:\n" + dump(e.Value) +
			"\nNode `" + e.Reason + "` is unknown."
	case CodeFailMessage:
		return "The following `failure` occurred with the decoder: " + e.Description
	case CodeBadOneOf:
		return "The following errors were found:\n\n" + strings.Join(e.Causes, "\n\n")
	case CodeDirect:
		return e.Description
	default:
		// BadPrimitive, BadType, BadField, TooSmallArray share one shape.
		return "Expecting " + e.Description + " but instead got:\n" + dump(e.Value)
	}
}

func dump(v Value) string {
	s, err := v.JSON(4)
	if err != nil {
		return "value could not be printed due to a circular structure"
	}
	return s
}

// AsError extracts a structured decode Error from err using errors.As.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
