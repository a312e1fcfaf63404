package abi

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped in a *DecodeError) by Decode.
//
// Callers should use errors.Is against these, not string-match error text.
var (
	// ErrTruncatedInput is returned when a read runs past the end of the
	// region being decoded.
	ErrTruncatedInput = errors.New("abi: truncated input")

	// ErrOffsetOutOfBounds is returned when a dynamic-type offset does not
	// resolve inside the region it is relative to.
	ErrOffsetOutOfBounds = errors.New("abi: offset out of bounds")

	// ErrUnalignedLength is returned when a length value does not leave
	// enough room for its word-padded payload inside the region.
	ErrUnalignedLength = errors.New("abi: length exceeds region")

	// ErrInvalidBool is returned when a Bool word is neither 0 nor 1 and
	// DecodeOptions.LenientBool was not set.
	ErrInvalidBool = errors.New("abi: invalid boolean word")

	// ErrDirtyAddressPadding is returned when the 12 leading bytes of an
	// Address word are non-zero and DecodeOptions.StrictAddressPadding was
	// set.
	ErrDirtyAddressPadding = errors.New("abi: dirty address padding")

	// ErrDirtyIntPadding is returned when the sign/zero-extension bytes of
	// an Int(n)/Uint(n) word above bit n are not clean and strict integer
	// validation was requested.
	ErrDirtyIntPadding = errors.New("abi: dirty integer padding")

	// ErrInvalidUTF8 is returned when a String payload is not valid UTF-8
	// and DecodeOptions.ValidateUTF8 was set.
	ErrInvalidUTF8 = errors.New("abi: invalid utf-8 string")

	// ErrNonCanonicalOffset is returned when DecodeOptions.RequireCanonicalOffsets
	// is set and a dynamic element's offset does not equal the position the
	// canonical encoder would have produced.
	ErrNonCanonicalOffset = errors.New("abi: non-canonical offset")

	// ErrRecursionLimit is returned when decoding would recurse deeper than
	// MaxRecursionDepth; it guards against hostile, cyclic-looking offsets.
	ErrRecursionLimit = errors.New("abi: recursion depth exceeded")

	// ErrTypeMismatch is returned by Token.Validate when a Token's carried
	// variant does not structurally match its declared ParamType, and by
	// NewInt/NewUint when a value does not fit the requested bit width.
	ErrTypeMismatch = errors.New("abi: token does not match type")

	// ErrInvalidType is returned when a ParamType itself is malformed, e.g.
	// an Int/Uint bit width that is not a multiple of 8 in [8, 256], a
	// FixedBytes size outside [1, 32], or a FixedArray(T, 0) with dynamic T.
	ErrInvalidType = errors.New("abi: invalid type")
)

// DecodeError wraps one of the sentinels above with the byte offset into the
// top-level input where the failure was detected and the name of the type
// being decoded at that point (a single type name, not the chain of
// enclosing types), so callers can diagnose a failure without
// re-walking the input themselves.
type DecodeError struct {
	Err    error
	Offset int
	Path   string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v (at byte %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (at byte %d, decoding %s)", e.Err, e.Offset, e.Path)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(err error, offset int, path string) error {
	return &DecodeError{Err: err, Offset: offset, Path: path}
}
