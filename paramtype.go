package abi

import "fmt"

// Kind identifies which member of the closed ParamType variant a value is.
type Kind uint8

const (
	KindAddress Kind = iota
	KindBytes
	KindInt
	KindUint
	KindBool
	KindString
	KindFixedBytes
	KindArray
	KindFixedArray
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFixedBytes:
		return "fixedBytes"
	case KindArray:
		return "array"
	case KindFixedArray:
		return "fixedArray"
	default:
		return "unknown"
	}
}

// ParamType is the closed variant of ABI types (head/tail layout rules). Size
// carries the bit width for Int/Uint, the byte length for FixedBytes, and the
// element count for FixedArray; it is unused otherwise. Elem carries the
// element type for Array and FixedArray.
type ParamType struct {
	Kind Kind
	Size int
	Elem *ParamType
}

func Address() ParamType                  { return ParamType{Kind: KindAddress} }
func Bytes() ParamType                    { return ParamType{Kind: KindBytes} }
func Int(bits int) ParamType              { return ParamType{Kind: KindInt, Size: bits} }
func Uint(bits int) ParamType             { return ParamType{Kind: KindUint, Size: bits} }
func Bool() ParamType                     { return ParamType{Kind: KindBool} }
func String() ParamType                   { return ParamType{Kind: KindString} }
func FixedBytes(size int) ParamType       { return ParamType{Kind: KindFixedBytes, Size: size} }
func Array(elem ParamType) ParamType      { return ParamType{Kind: KindArray, Elem: &elem} }
func FixedArray(elem ParamType, k int) ParamType {
	return ParamType{Kind: KindFixedArray, Size: k, Elem: &elem}
}

// String renders the canonical Solidity-style type name, e.g. "uint256",
// "bytes32", "address[3][]".
func (t ParamType) String() string {
	switch t.Kind {
	case KindAddress:
		return "address"
	case KindBytes:
		return "bytes"
	case KindInt:
		return fmt.Sprintf("int%d", t.Size)
	case KindUint:
		return fmt.Sprintf("uint%d", t.Size)
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.Size)
	case KindArray:
		return t.Elem.String() + "[]"
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
	default:
		return "invalid"
	}
}

// Validate rejects malformed ParamType shapes: an Int/Uint bit width outside
// [8, 256] or not a multiple of 8, a FixedBytes size outside [1, 32], a
// negative FixedArray length, or a FixedArray(T, 0) with dynamic T (a
// zero-length region of dynamic elements has no well-defined head, so it is
// treated as an error rather than an empty region).
func (t ParamType) Validate() error {
	switch t.Kind {
	case KindInt, KindUint:
		if t.Size < 8 || t.Size > 256 || t.Size%8 != 0 {
			return fmt.Errorf("%w: %s bit width %d", ErrInvalidType, t.Kind, t.Size)
		}
	case KindFixedBytes:
		if t.Size < 1 || t.Size > 32 {
			return fmt.Errorf("%w: fixedBytes size %d", ErrInvalidType, t.Size)
		}
	case KindArray:
		if t.Elem == nil {
			return fmt.Errorf("%w: array with no element type", ErrInvalidType)
		}
		return t.Elem.Validate()
	case KindFixedArray:
		if t.Elem == nil {
			return fmt.Errorf("%w: fixed array with no element type", ErrInvalidType)
		}
		if t.Size < 0 {
			return fmt.Errorf("%w: negative fixed array length", ErrInvalidType)
		}
		if t.Size == 0 && t.Elem.IsDynamic() {
			return fmt.Errorf("%w: zero-length fixed array of dynamic %s", ErrInvalidType, t.Elem)
		}
		return t.Elem.Validate()
	case KindAddress, KindBytes, KindBool, KindString:
		// no further shape to validate
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidType, t.Kind)
	}
	return nil
}

// IsDynamic reports whether t's encoded size depends on the value, not just
// the type ("Dynamic classification").
func (t ParamType) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		return t.Elem.IsDynamic()
	default:
		return false
	}
}

// HeadWords returns the number of words t occupies in the head region of its
// parent ("Head width"): 1 for static scalars and for any
// dynamic type (an offset slot), or k*HeadWords(T) for a FixedArray(T, k)
// with T static, flattened in place.
func (t ParamType) HeadWords() int {
	if t.IsDynamic() {
		return 1
	}
	if t.Kind == KindFixedArray {
		return t.Size * t.Elem.HeadWords()
	}
	return 1
}

// FixedSize returns the total number of words a value of t occupies when
// laid out in place. It is only meaningful for static t; callers must not
// call it on a dynamic type.
func (t ParamType) FixedSize() (int, error) {
	if t.IsDynamic() {
		return 0, fmt.Errorf("%w: FixedSize called on dynamic type %s", ErrInvalidType, t)
	}
	if t.Kind == KindFixedArray {
		elemSize, err := t.Elem.FixedSize()
		if err != nil {
			return 0, err
		}
		return t.Size * elemSize, nil
	}
	return 1, nil
}
