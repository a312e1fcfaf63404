package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Token is the closed variant of ABI values (head/tail layout rules), mirroring
// ParamType. Only the field(s) relevant to Kind are meaningful; constructors
// below are the supported way to build one.
type Token struct {
	Kind Kind

	AddressVal common.Address // KindAddress
	BytesVal   []byte         // KindBytes, KindFixedBytes
	Word       [32]byte       // KindInt, KindUint: the full 32-byte word, verbatim
	BoolVal    bool           // KindBool
	StringVal  string         // KindString
	Elems      []Token        // KindArray, KindFixedArray
}

func NewAddress(addr common.Address) Token {
	return Token{Kind: KindAddress, AddressVal: addr}
}

func NewBytes(b []byte) Token {
	return Token{Kind: KindBytes, BytesVal: b}
}

func NewIntWord(word [32]byte) Token {
	return Token{Kind: KindInt, Word: word}
}

func NewUintWord(word [32]byte) Token {
	return Token{Kind: KindUint, Word: word}
}

func NewBool(b bool) Token {
	return Token{Kind: KindBool, BoolVal: b}
}

func NewString(s string) Token {
	return Token{Kind: KindString, StringVal: s}
}

func NewFixedBytes(b []byte) Token {
	return Token{Kind: KindFixedBytes, BytesVal: b}
}

func NewArray(elems []Token) Token {
	return Token{Kind: KindArray, Elems: elems}
}

func NewFixedArray(elems []Token) Token {
	return Token{Kind: KindFixedArray, Elems: elems}
}

// Validate checks that tok structurally matches t: the variant kind
// matches, FixedBytes/FixedArray carry the declared size, and element
// tokens recursively validate against the element type.
func (tok Token) Validate(t ParamType) error {
	if tok.Kind != t.Kind {
		return fmt.Errorf("%w: token kind %s for type %s", ErrTypeMismatch, tok.Kind, t)
	}
	switch t.Kind {
	case KindFixedBytes:
		if len(tok.BytesVal) != t.Size {
			return fmt.Errorf("%w: fixedBytes token has %d bytes, type declares %d", ErrTypeMismatch, len(tok.BytesVal), t.Size)
		}
	case KindArray:
		for i, elem := range tok.Elems {
			if err := elem.Validate(*t.Elem); err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
		}
	case KindFixedArray:
		if len(tok.Elems) != t.Size {
			return fmt.Errorf("%w: fixedArray token has %d elements, type declares %d", ErrTypeMismatch, len(tok.Elems), t.Size)
		}
		for i, elem := range tok.Elems {
			if err := elem.Validate(*t.Elem); err != nil {
				return fmt.Errorf("fixed array element %d: %w", i, err)
			}
		}
	}
	return nil
}
