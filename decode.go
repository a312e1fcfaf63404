package abi

import "unicode/utf8"

// Decode recovers a sequence of tokens from data according to types
// (head/tail layout rules). It validates alignment, offset bounds, and length
// bounds against adversarial input and bounds recursion depth.
func Decode(types []ParamType, data []byte, opts ...DecodeOption) ([]Token, error) {
	o := resolveOptions(opts)
	return decodeRegion(types, data, 0, 0, o)
}

// decodeRegion walks types against region (a suffix of the original input,
// with base the absolute byte offset of region[0] in that input, used only
// for error context). Static types decode in place and advance the head
// cursor by their head width; dynamic types leave an offset in the head and
// are dereferenced relative to base.
func decodeRegion(types []ParamType, region []byte, base, depth int, o DecodeOptions) ([]Token, error) {
	tokens := make([]Token, len(types))
	pos := 0 // word cursor

	expectedOffset := 0
	for _, t := range types {
		expectedOffset += t.HeadWords() * WordSize
	}

	for i, t := range types {
		if err := t.Validate(); err != nil {
			return nil, decodeErr(err, base+pos*WordSize, t.String())
		}

		headWords := t.HeadWords()
		headBytes := headWords * WordSize
		if pos*WordSize+headBytes > len(region) {
			return nil, decodeErr(ErrTruncatedInput, base+pos*WordSize, t.String())
		}

		if !t.IsDynamic() {
			tok, err := decodeStatic(t, region[pos*WordSize:], base+pos*WordSize, depth, o, t.String())
			if err != nil {
				return nil, err
			}
			tokens[i] = tok
			pos += headWords
			continue
		}

		slotBase := base + pos*WordSize
		offset, err := readOffsetWord(region[pos*WordSize : pos*WordSize+WordSize])
		if err != nil {
			return nil, decodeErr(err, slotBase, t.String())
		}
		if offset < 0 || offset > len(region) {
			return nil, decodeErr(ErrOffsetOutOfBounds, slotBase, t.String())
		}
		if o.RequireCanonicalOffsets && offset != expectedOffset {
			return nil, decodeErr(ErrNonCanonicalOffset, slotBase, t.String())
		}

		tok, err := decodeDynamic(t, region[offset:], base+offset, depth, o, t.String())
		if err != nil {
			return nil, err
		}
		tokens[i] = tok
		pos++

		if o.RequireCanonicalOffsets {
			expectedOffset += len(encodeTail(tok))
		}
	}

	return tokens, nil
}

// decodeStatic decodes a static type in place, consuming exactly
// t.HeadWords()*WordSize bytes of data (already bounds-checked by the
// caller for the outermost call; FixedArray recursion re-checks for its own
// sub-slices).
func decodeStatic(t ParamType, data []byte, base, depth int, o DecodeOptions, path string) (Token, error) {
	switch t.Kind {
	case KindAddress:
		addr, err := decodeAddressWord(data[:WordSize], o.StrictAddressPadding)
		if err != nil {
			return Token{}, decodeErr(err, base, path)
		}
		return NewAddress(addr), nil
	case KindBool:
		b, err := decodeBoolWord(data[:WordSize], o.LenientBool)
		if err != nil {
			return Token{}, decodeErr(err, base, path)
		}
		return NewBool(b), nil
	case KindInt, KindUint:
		var word [32]byte
		copy(word[:], data[:WordSize])
		if o.StrictInts {
			if err := validateIntWordPadding(word[:], t.Size, t.Kind == KindInt); err != nil {
				return Token{}, decodeErr(err, base, path)
			}
		}
		if t.Kind == KindInt {
			return NewIntWord(word), nil
		}
		return NewUintWord(word), nil
	case KindFixedBytes:
		return NewFixedBytes(decodeFixedBytesWord(data[:WordSize], t.Size)), nil
	case KindFixedArray:
		// T static: concatenation of k in-place encodings of T.
		elems := make([]Token, t.Size)
		offset := 0
		elemSize, err := t.Elem.FixedSize()
		if err != nil {
			return Token{}, decodeErr(err, base, path)
		}
		for i := 0; i < t.Size; i++ {
			need := offset + elemSize*WordSize
			if need > len(data) {
				return Token{}, decodeErr(ErrTruncatedInput, base+offset, path)
			}
			elem, err := decodeStatic(*t.Elem, data[offset:], base+offset, depth, o, path)
			if err != nil {
				return Token{}, err
			}
			elems[i] = elem
			offset += elemSize * WordSize
		}
		return NewFixedArray(elems), nil
	default:
		return Token{}, decodeErr(ErrTypeMismatch, base, path)
	}
}

// maxElementCount bounds Array element counts read from adversarial input:
// a region can never plausibly contain more elements than it has bytes, so
// one more than the remaining region length is a safe, cheap upper bound
// that avoids allocating a huge token slice before the first bounds check
// would otherwise fail.
func maxElementCount(remaining int) int {
	return remaining + 1
}

// decodeDynamic dereferences and decodes a dynamic type's tail, starting at
// region (already sliced to the dereferenced position) with base its
// absolute offset in the original input.
func decodeDynamic(t ParamType, region []byte, base, depth int, o DecodeOptions, path string) (Token, error) {
	if depth+1 > o.MaxRecursionDepth {
		return Token{}, decodeErr(ErrRecursionLimit, base, path)
	}

	switch t.Kind {
	case KindBytes:
		data, _, err := decodeBytesPayload(region)
		if err != nil {
			return Token{}, decodeErr(err, base, path)
		}
		return NewBytes(data), nil

	case KindString:
		data, _, err := decodeBytesPayload(region)
		if err != nil {
			return Token{}, decodeErr(err, base, path)
		}
		if o.ValidateUTF8 && !utf8.Valid(data) {
			return Token{}, decodeErr(ErrInvalidUTF8, base, path)
		}
		return NewString(string(data)), nil

	case KindArray:
		if len(region) < WordSize {
			return Token{}, decodeErr(ErrTruncatedInput, base, path)
		}
		count, err := readLengthWord(region[:WordSize])
		if err != nil {
			return Token{}, decodeErr(err, base, path)
		}
		elementsRegion := region[WordSize:]
		if count > maxElementCount(len(elementsRegion)) {
			return Token{}, decodeErr(ErrTruncatedInput, base+WordSize, path)
		}
		types := make([]ParamType, count)
		for i := range types {
			types[i] = *t.Elem
		}
		elems, err := decodeRegion(types, elementsRegion, base+WordSize, depth+1, o)
		if err != nil {
			return Token{}, err
		}
		return NewArray(elems), nil

	case KindFixedArray:
		// T dynamic: encode-region(elements) with no length prefix, base is
		// the start of this region (head/tail layout rules).
		types := make([]ParamType, t.Size)
		for i := range types {
			types[i] = *t.Elem
		}
		elems, err := decodeRegion(types, region, base, depth+1, o)
		if err != nil {
			return Token{}, err
		}
		return NewFixedArray(elems), nil

	default:
		return Token{}, decodeErr(ErrTypeMismatch, base, path)
	}
}
