// Package grierr defines the exhaustive set of error kinds the parser and
// decoders can raise, per the GRIB2 core's error handling design. No kind
// here ever aborts the process: callers inspect Kind to decide whether to
// skip a field, skip a message, or stop the file.
package grierr

import "fmt"

// Kind is one of the eight error kinds the core distinguishes.
type Kind int

const (
	// Truncated means a section length exceeds the remaining file bytes.
	// Policy: stop parsing this file; return partial results.
	Truncated Kind = iota
	// BadSignature means the "GRIB" or "7777" markers were not found.
	// Policy: skip bytes to the next signature; warn.
	BadSignature
	// UnsupportedTemplate means a grid/product/packing template isn't
	// implemented. Policy: skip this field; warn once per template id
	// per file.
	UnsupportedTemplate
	// MalformedSection means internal lengths or counts don't add up.
	// Policy: skip this message; warn.
	MalformedSection
	// DuplicateLayer means an identity key collision was found at
	// registry insertion. Policy: discard the new layer; info-level.
	DuplicateLayer
	// DecodeUnderflow means the bit stream ran out mid-field.
	// Policy: skip this field; warn.
	DecodeUnderflow
	// CacheIOError means the on-disk decoded cache could not be read or
	// written. Policy: fall back to an in-memory decode; info-level.
	CacheIOError
	// CodecError means the JPEG2000 codec refused the stream.
	// Policy: skip this field; warn.
	CodecError
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "Truncated"
	case BadSignature:
		return "BadSignature"
	case UnsupportedTemplate:
		return "UnsupportedTemplate"
	case MalformedSection:
		return "MalformedSection"
	case DuplicateLayer:
		return "DuplicateLayer"
	case DecodeUnderflow:
		return "DecodeUnderflow"
	case CacheIOError:
		return "CacheIOError"
	case CodecError:
		return "CodecError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the core's single error type. Section and Offset are informational
// and may be zero when not applicable (e.g. a cache error has no section).
type Error struct {
	Kind    Kind
	Section int
	Offset  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Section > 0 {
		return fmt.Sprintf("%s: section %d at offset %d: %s", e.Kind, e.Section, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an Error with no wrapped cause.
func New(kind Kind, section, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Section: section, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error that wraps an underlying cause (typically a
// pkg/errors-decorated parse failure from a section/template parser).
func Wrap(cause error, kind Kind, section, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Section: section, Offset: offset, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Fatal reports whether a Kind's policy is to stop parsing the whole file,
// as opposed to skipping a field or message and continuing.
func (k Kind) Fatal() bool {
	return k == Truncated
}
