package abi

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// WordSize is the size of an ABI word in bytes (head/tail layout rules).
const WordSize = 32

// pad32 rounds n up to the next multiple of WordSize, matching the same approach as
// utils.go Pad32 helper.
func pad32(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}

func encodeAddressWord(addr common.Address) [32]byte {
	var word [32]byte
	copy(word[12:], addr[:])
	return word
}

func decodeAddressWord(word []byte, strictPadding bool) (common.Address, error) {
	if strictPadding {
		for _, b := range word[:12] {
			if b != 0 {
				return common.Address{}, ErrDirtyAddressPadding
			}
		}
	}
	var addr common.Address
	copy(addr[:], word[12:32])
	return addr, nil
}

func encodeBoolWord(b bool) [32]byte {
	var word [32]byte
	if b {
		word[31] = 1
	}
	return word
}

func decodeBoolWord(word []byte, lenient bool) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			if lenient {
				return true, nil
			}
			return false, ErrInvalidBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		if lenient {
			return true, nil
		}
		return false, ErrInvalidBool
	}
}

// encodeFixedBytesWord left-aligns b (len(b) <= 32) in a word, right
// zero-padded, ("FixedBytes(m) -- m bytes left-aligned,
// right zero-padded to 32").
func encodeFixedBytesWord(b []byte) [32]byte {
	var word [32]byte
	copy(word[:], b)
	return word
}

func decodeFixedBytesWord(word []byte, size int) []byte {
	out := make([]byte, size)
	copy(out, word[:size])
	return out
}

// encodeBytesPayload produces the tail buffer for Bytes/String: word(len) ||
// payload || right zero-pad to a word boundary (head/tail layout rules).
func encodeBytesPayload(data []byte) []byte {
	padded := pad32(len(data))
	out := make([]byte, WordSize+padded)
	binary.BigEndian.PutUint64(out[WordSize-8:WordSize], uint64(len(data)))
	copy(out[WordSize:], data)
	return out
}

// decodeBytesPayload reads a length-prefixed, word-padded byte string
// starting at the base of region. It returns the payload and the total
// number of bytes the encoding occupies in region (word + padded payload),
// bounds-checking against ErrTruncatedInput/ErrUnalignedLength.
func decodeBytesPayload(region []byte) (data []byte, consumed int, err error) {
	if len(region) < WordSize {
		return nil, 0, ErrTruncatedInput
	}
	length, err := readLengthWord(region[:WordSize])
	if err != nil {
		return nil, 0, err
	}
	total := WordSize + pad32(length)
	if len(region) < total {
		return nil, 0, ErrUnalignedLength
	}
	out := make([]byte, length)
	copy(out, region[WordSize:WordSize+length])
	return out, total, nil
}

// readLengthWord decodes a 32-byte big-endian count, rejecting values that
// cannot possibly fit in memory/a Go int (guards against adversarial input
// claiming an astronomically large length).
func readLengthWord(word []byte) (int, error) {
	for _, b := range word[:24] {
		if b != 0 {
			return 0, fmt.Errorf("%w: length word overflows int", ErrOffsetOutOfBounds)
		}
	}
	n := binary.BigEndian.Uint64(word[24:32])
	if n > 1<<32 {
		return 0, fmt.Errorf("%w: length %d unreasonably large", ErrOffsetOutOfBounds, n)
	}
	return int(n), nil
}

// readOffsetWord decodes a 32-byte big-endian offset the same way, with the
// same overflow guard.
func readOffsetWord(word []byte) (int, error) {
	return readLengthWord(word)
}

func writeOffsetWord(dst []byte, offset int) {
	binary.BigEndian.PutUint64(dst[WordSize-8:WordSize], uint64(offset))
}
