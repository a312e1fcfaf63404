package abi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	two256     = new(big.Int).Lsh(common.Big1, 256)
	maxUint256 = new(big.Int).Sub(two256, common.Big1)
)

// NewInt builds an Int(bits) Token from a signed big.Int, two's-complement
// encoding negative values into the 32-byte word. Grounded on the same approach as
// utils.go EncodeBigInt.
func NewInt(bits int, v *big.Int) (Token, error) {
	word, err := encodeBigInt(bits, v, true)
	if err != nil {
		return Token{}, err
	}
	return NewIntWord(word), nil
}

// NewUint builds an Uint(bits) Token from an unsigned big.Int. Grounded on
// the same approach as utils.go EncodeBigInt.
func NewUint(bits int, v *big.Int) (Token, error) {
	word, err := encodeBigInt(bits, v, false)
	if err != nil {
		return Token{}, err
	}
	return NewUintWord(word), nil
}

func encodeBigInt(bits int, v *big.Int, signed bool) ([32]byte, error) {
	var word [32]byte
	n := v
	if v.Sign() < 0 {
		if !signed {
			return word, fmt.Errorf("%w: negative value for Uint%d", ErrTypeMismatch, bits)
		}
		n = new(big.Int).And(new(big.Int).Add(two256, v), maxUint256)
	}
	width, mag := bits, n
	if signed {
		// two's complement at the declared width: -2^(bits-1) <= v < 2^(bits-1)
		width = bits - 1
		if v.Sign() < 0 {
			mag = new(big.Int).Not(v) // -v-1
		}
	}
	if mag.BitLen() > width {
		return word, fmt.Errorf("%w: value exceeds %d bits", ErrTypeMismatch, bits)
	}
	n.FillBytes(word[:])
	return word, nil
}

// BigInt interprets tok's 32-byte word as a signed (two's complement) or
// unsigned big.Int, per this codec's "value range follows two's
// complement (Int) or unsigned (Uint)". Grounded on the same approach as utils.go
// DecodeBigInt.
func (tok Token) BigInt(signed bool) *big.Int {
	ret := new(big.Int).SetBytes(tok.Word[:])
	if signed && tok.Word[0]&0x80 != 0 {
		ret.Sub(ret, two256)
	}
	return ret
}

// validateIntWordPadding checks that the bytes of word above the declared
// bit width are clean sign/zero extension, using uint256.Int the same way
// the same approach as utils.go DecodeUint/DecodeInt generics do ("dirty padding").
// Used only when DecodeOptions.StrictInts is set (codec leaves no
// range check at decode time by default).
func validateIntWordPadding(word []byte, bits int, signed bool) error {
	var n uint256.Int
	n.SetBytes32(word)

	if bits >= 256 {
		return nil
	}

	if !signed {
		upper := new(uint256.Int).Rsh(&n, uint(bits))
		if !upper.IsZero() {
			return ErrDirtyIntPadding
		}
		return nil
	}

	// sign bit of the declared width, isolated as bit 0 of n>>(bits-1)
	signShift := new(uint256.Int).Rsh(&n, uint(bits-1))
	negative := signShift.Uint64()&1 != 0

	upper := new(uint256.Int).Rsh(&n, uint(bits))
	if negative {
		var ones uint256.Int
		ones.Not(&ones) // all 1s
		wantUpper := new(uint256.Int).Rsh(&ones, uint(bits))
		if !upper.Eq(wantUpper) {
			return ErrDirtyIntPadding
		}
	} else if !upper.IsZero() {
		return ErrDirtyIntPadding
	}
	return nil
}
