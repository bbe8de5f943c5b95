package mtsha256_test

import (
	"testing"

	"github.com/gordian-engine/mtree/mthash"
	"github.com/gordian-engine/mtree/mthash/mthashtest"
	"github.com/gordian-engine/mtree/mthash/mtsha256"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	mthashtest.TestHasherCompliance(t, func() (mthash.Hasher, int) {
		return mtsha256.Hasher{}, mtsha256.HashSize
	})
}

func TestHex_knownVectors(t *testing.T) {
	t.Parallel()

	h := mtsha256.Hasher{}

	require.Equal(
		t,
		mthash.Digest("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		mthash.Hex(h, nil),
	)
	require.Equal(
		t,
		mthash.Digest("ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb"),
		mthash.Hex(h, []byte("a")),
	)
}

func TestConcat_hashesHexText(t *testing.T) {
	t.Parallel()

	h := mtsha256.Hasher{}

	a := mthash.Hex(h, []byte("a"))
	b := mthash.Hex(h, []byte("b"))

	// The parent digest is over the 128 hex characters, not the 64 raw bytes.
	require.Equal(t, mthash.Hex(h, []byte(string(a)+string(b))), mthash.Concat(h, a, b))
	require.NotEqual(t, mthash.Concat(h, a, b), mthash.Concat(h, b, a))
}
