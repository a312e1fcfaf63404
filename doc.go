/*
Package abi implements the Ethereum contract ABI codec: encoding and decoding of
a typed value model to and from the 32-byte-word wire format used by the EVM.

Overview

The codec has two halves built on a shared type model:

	ParamType  -- the closed set of ABI types (Address, Bytes, Int(n), Uint(n),
	              Bool, String, FixedBytes(m), Array(T), FixedArray(T, k))
	Token      -- a value carried alongside a ParamType

Encode lays out a sequence of tokens using the standard head/tail algorithm:
static values are written in place, dynamic values leave a 32-byte offset in
the head and their payload in a tail region appended after all heads. Decode
walks a type list against a byte string, dereferencing offsets and recursing
into tail regions, while bounds-checking every read against adversarial input.

Quick Start

	amount, err := abi.NewUint(256, big.NewInt(42))
	if err != nil {
		// ...
	}
	tokens := []abi.Token{
		abi.NewAddress(addr),
		amount,
	}
	data := abi.Encode(tokens)

	types := []abi.ParamType{abi.Address(), abi.Uint(256)}
	decoded, err := abi.Decode(types, data)

Scope

This package is the codec engine only. ABI JSON schema parsing, function
selector computation, event log decoding, human-readable parameter parsing,
and CLI wrappers are external collaborators layered on top of it.
*/
package abi
