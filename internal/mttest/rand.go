package mttest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomDataForTest returns a byte slice of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t *testing.T, sz int) []byte {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]byte, sz)

	if _, err := chacha.Read(out); err != nil {
		panic(err)
	}

	return out
}

// RandomBlocksForTest returns n blocks of blockSize bytes each,
// all backed by one call to [RandomDataForTest].
func RandomBlocksForTest(t *testing.T, n, blockSize int) [][]byte {
	data := RandomDataForTest(t, n*blockSize)

	blocks := make([][]byte, n)
	for i := range blocks {
		// Full slice expression so that an append on one block
		// cannot clobber its neighbor.
		blocks[i] = data[i*blockSize : (i+1)*blockSize : (i+1)*blockSize]
	}
	return blocks
}

// StringBlocks converts the given strings to blocks, preserving order.
func StringBlocks(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
