package mtsha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/mtree/mthash"
)

const HashSize = sha256.Size

// Hasher is a [mthash.Hasher] backed by SHA256 hashes.
type Hasher struct{}

var _ mthash.Hasher = Hasher{}

func (Hasher) Sum(in, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }
