package mthashtest

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/gordian-engine/mtree/mthash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h mthash.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("reported size matches", func(t *testing.T) {
		t.Parallel()

		h, sz := f()
		require.Equal(t, sz, h.Size())

		out := h.Sum([]byte("size_check"), nil)
		require.Len(t, out, sz)
	})

	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, 0, sz)
		dst01 = h.Sum([]byte("deterministic_data"), dst01)

		dst02 := make([]byte, 0, sz)
		dst02 = h.Sum([]byte("deterministic_data"), dst02)

		require.Equal(t, dst01, dst02)
	})

	t.Run("sum appends to dst", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		prefix := []byte("prefix")
		dst := make([]byte, len(prefix), len(prefix)+sz)
		copy(dst, prefix)

		out := h.Sum([]byte("appended"), dst)
		require.Len(t, out, len(prefix)+sz)
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, h.Sum([]byte("appended"), nil), out[len(prefix):])
	})

	t.Run("sum respects input", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		require.NotEqual(t, h.Sum([]byte("hello"), nil), h.Sum([]byte("world"), nil))
		require.NotEqual(t, h.Sum([]byte("ab"), nil), h.Sum([]byte("ba"), nil))
	})

	t.Run("empty input is accepted", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		require.Len(t, h.Sum(nil, nil), sz)
		require.Equal(t, h.Sum(nil, nil), h.Sum([]byte{}, nil))
	})

	t.Run("hex digest is lower case", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		d := mthash.Hex(h, []byte("Hex"))
		require.Len(t, d, 2*sz)
		require.Equal(t, strings.ToLower(string(d)), string(d))

		raw, err := hex.DecodeString(string(d))
		require.NoError(t, err)
		require.Equal(t, h.Sum([]byte("Hex"), nil), raw)
	})
}
