package mttest

import (
	"github.com/gordian-engine/mtree/mthash"
	"github.com/zeebo/blake3"
)

// Blake3HashSize is the output size of [Blake3Hasher].
const Blake3HashSize = 32

// Blake3Hasher is a test-only [mthash.Hasher] backed by BLAKE3.
// It exists to show that tree construction treats the hasher as opaque;
// the production tree always uses SHA-256.
type Blake3Hasher struct{}

var _ mthash.Hasher = Blake3Hasher{}

func (Blake3Hasher) Sum(in, dst []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Blake3Hasher) Size() int { return Blake3HashSize }
