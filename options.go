package abi

// DecodeOptions controls the handful of strictness policies a decoder can
// reasonably choose either way. The zero value is the default policy:
// lenient address padding, strict bool, no UTF-8 validation, offsets may
// appear in any order, and a recursion depth guard of 32.
type DecodeOptions struct {
	// StrictAddressPadding rejects a non-zero 12-byte pad in an Address word
	// instead of ignoring it. Default: lenient (false).
	StrictAddressPadding bool

	// LenientBool accepts any non-zero 32-byte word as true instead of
	// requiring exactly 0 or 1. Default: strict (false).
	LenientBool bool

	// ValidateUTF8 rejects a String payload that is not valid UTF-8 instead
	// of returning the raw bytes as-is. Default: off (false).
	ValidateUTF8 bool

	// StrictInts rejects an Int(n)/Uint(n) word whose sign/zero-extension
	// bytes above bit n are not clean. Default: off (false); by default a
	// decoded word is returned verbatim with no range check.
	StrictInts bool

	// RequireCanonicalOffsets rejects any dynamic-type offset that does not
	// equal the position a canonical encoder would have produced, matching
	// generated decoders that assume sequential tail layout. Default: off
	// (false); offsets may otherwise appear in any order in the tail.
	RequireCanonicalOffsets bool

	// MaxRecursionDepth bounds recursive descent into nested
	// arrays/fixed-arrays/tuples to guard against hostile offsets. Zero
	// means the default of 32 is used.
	MaxRecursionDepth int
}

// DecodeOption mutates a DecodeOptions in place; grounded in the same approach as
// generator/options.go functional-option pattern.
type DecodeOption func(*DecodeOptions)

func WithStrictAddressPadding() DecodeOption {
	return func(o *DecodeOptions) { o.StrictAddressPadding = true }
}

func WithLenientBool() DecodeOption {
	return func(o *DecodeOptions) { o.LenientBool = true }
}

func WithValidateUTF8() DecodeOption {
	return func(o *DecodeOptions) { o.ValidateUTF8 = true }
}

func WithStrictInts() DecodeOption {
	return func(o *DecodeOptions) { o.StrictInts = true }
}

func WithRequireCanonicalOffsets() DecodeOption {
	return func(o *DecodeOptions) { o.RequireCanonicalOffsets = true }
}

func WithMaxRecursionDepth(depth int) DecodeOption {
	return func(o *DecodeOptions) { o.MaxRecursionDepth = depth }
}

const defaultMaxRecursionDepth = 32

func resolveOptions(opts []DecodeOption) DecodeOptions {
	var o DecodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxRecursionDepth == 0 {
		o.MaxRecursionDepth = defaultMaxRecursionDepth
	}
	return o
}
