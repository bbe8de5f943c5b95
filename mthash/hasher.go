// Package mthash defines the hashing contract used by the Merkle tree builder.
//
// A [Hasher] produces raw digests; the tree itself only ever deals
// in [Digest] values, the lower-case hex encoding of those raw digests.
package mthash

import (
	"encoding/hex"
	"fmt"
)

// Hasher is the interface for producing fixed-size digests.
//
// To be allocation-efficient, the Hasher implementation
// must append its hash output to dst, instead of creating a new byte slice,
// and return the extended slice.
// Hasher must not retain references to the in or dst slices.
//
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	Sum(in, dst []byte) []byte

	// Size is the length in bytes of the raw digest appended by Sum.
	Size() int
}

// Digest is the lower-case hexadecimal encoding of a raw digest.
type Digest string

// Hex hashes in with h and returns the hex-encoded digest.
func Hex(h Hasher, in []byte) Digest {
	sz := h.Size()

	// One allocation for both the raw digest and its encoding.
	buf := make([]byte, sz*3)
	raw := h.Sum(in, buf[:0])
	if len(raw) != sz {
		panic(fmt.Errorf(
			"BUG: hasher reported size %d but produced %d bytes", sz, len(raw),
		))
	}

	enc := buf[sz:]
	hex.Encode(enc, raw)
	return Digest(enc)
}

// Concat hashes the textual concatenation of the left and right digests.
// This is how a parent digest is derived from its two children.
func Concat(h Hasher, left, right Digest) Digest {
	in := make([]byte, 0, len(left)+len(right))
	in = append(in, left...)
	in = append(in, right...)
	return Hex(h, in)
}
