package abi

// IsDynamic reports whether tok's encoding requires a tail (an offset in the
// head plus a payload appended after all heads). For Array it is always
// true; for FixedArray it follows the element type, inferred from the first
// element when present. A FixedArray(T,0) token carries no elements to
// inspect and is always treated as the static, zero-head-word case.
func (tok Token) IsDynamic() bool {
	switch tok.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		if len(tok.Elems) == 0 {
			return false
		}
		return tok.Elems[0].IsDynamic()
	default:
		return false
	}
}

// HeadWords mirrors ParamType.HeadWords but is computed directly from the
// token, since Encode is type-list-free (Encode is pure
// and total over well-formed tokens).
func (tok Token) HeadWords() int {
	if tok.IsDynamic() {
		return 1
	}
	if tok.Kind == KindFixedArray {
		total := 0
		for _, e := range tok.Elems {
			total += e.HeadWords()
		}
		return total
	}
	return 1
}

// Encode lays out tokens using the ABI two-phase head/tail algorithm. It is
// infallible for well-formed tokens; callers that want a structural check
// against an expected type list first should call Token.Validate.
func Encode(tokens []Token) []byte {
	return encodeRegion(tokens)
}

// encodeRegion implements one head/tail layout pass. It is reused for the
// top-level tuple, for Array element lists, and for FixedArray-of-dynamic
// element lists (the "Region" concept).
func encodeRegion(tokens []Token) []byte {
	headWords := 0
	for _, tok := range tokens {
		headWords += tok.HeadWords()
	}
	headLen := headWords * WordSize

	heads := make([]byte, headLen)
	var tails [][]byte
	tailLen := 0

	pos := 0 // word cursor into heads
	for _, tok := range tokens {
		if tok.IsDynamic() {
			writeOffsetWord(heads[pos*WordSize:pos*WordSize+WordSize], headLen+tailLen)
			pos++
			tail := encodeTail(tok)
			tails = append(tails, tail)
			tailLen += len(tail)
			continue
		}
		b := encodeInPlace(tok)
		copy(heads[pos*WordSize:], b)
		pos += tok.HeadWords()
	}

	out := make([]byte, 0, headLen+tailLen)
	out = append(out, heads...)
	for _, tail := range tails {
		out = append(out, tail...)
	}
	return out
}

// encodeInPlace renders a static token's in-place head encoding.
func encodeInPlace(tok Token) []byte {
	switch tok.Kind {
	case KindAddress:
		word := encodeAddressWord(tok.AddressVal)
		return word[:]
	case KindInt, KindUint:
		word := tok.Word
		return word[:]
	case KindBool:
		word := encodeBoolWord(tok.BoolVal)
		return word[:]
	case KindFixedBytes:
		word := encodeFixedBytesWord(tok.BytesVal)
		return word[:]
	case KindFixedArray:
		out := make([]byte, 0, len(tok.Elems)*WordSize)
		for _, elem := range tok.Elems {
			out = append(out, encodeInPlace(elem)...)
		}
		return out
	default:
		// Bytes/String/Array never reach here: IsDynamic() is true for them.
		return nil
	}
}

// encodeTail renders a dynamic token's self-contained tail buffer.
func encodeTail(tok Token) []byte {
	switch tok.Kind {
	case KindBytes:
		return encodeBytesPayload(tok.BytesVal)
	case KindString:
		return encodeBytesPayload([]byte(tok.StringVal))
	case KindArray:
		countWord := encodeUint64Word(uint64(len(tok.Elems)))
		body := encodeRegion(tok.Elems)
		out := make([]byte, 0, WordSize+len(body))
		out = append(out, countWord[:]...)
		out = append(out, body...)
		return out
	case KindFixedArray:
		return encodeRegion(tok.Elems)
	default:
		return nil
	}
}

func encodeUint64Word(n uint64) [32]byte {
	var word [32]byte
	writeOffsetWord(word[:], int(n))
	return word
}
