package mttest_test

import (
	"testing"

	"github.com/gordian-engine/mtree/internal/mttest"
	"github.com/gordian-engine/mtree/mthash"
	"github.com/gordian-engine/mtree/mthash/mthashtest"
)

func TestBlake3Hasher_compliance(t *testing.T) {
	t.Parallel()

	mthashtest.TestHasherCompliance(t, func() (mthash.Hasher, int) {
		return mttest.Blake3Hasher{}, mttest.Blake3HashSize
	})
}
