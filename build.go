package mtree

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/gordian-engine/mtree/mthash"
)

// DefaultParallelThreshold is the ParallelThreshold used
// when [BuildConfig.ParallelThreshold] is zero.
const DefaultParallelThreshold = 1024

// BuildConfig is the configuration for [Build].
type BuildConfig struct {
	// How to hash blocks and pairs of child digests.
	// Required.
	Hasher mthash.Hasher

	// Parallelism is the maximum number of goroutines
	// used to hash the nodes of a single level.
	// Zero or one means every level is hashed on the calling goroutine.
	//
	// Levels are always built one after another;
	// only the nodes within a level are hashed concurrently.
	Parallelism int

	// ParallelThreshold is the minimum number of nodes to produce in a level
	// before that level is hashed concurrently.
	// For the leaf level that is the block count;
	// for every later level it is the size of the new level, not the one below.
	// Small levels are cheaper to hash directly than to fan out.
	// If zero, DefaultParallelThreshold is used.
	ParallelThreshold int
}

// validate panics if there are any illegal settings in the configuration.
func (c BuildConfig) validate() {
	// If there are multiple reasons we could panic,
	// collect them all in one go
	// so we can give a maximally helpful error.
	var panicErrs error

	if c.Hasher == nil {
		panicErrs = errors.Join(
			panicErrs,
			errors.New("BuildConfig.Hasher may not be nil"),
		)
	}

	if c.Parallelism < 0 {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("BuildConfig.Parallelism must not be negative (got %d)", c.Parallelism),
		)
	}

	if c.ParallelThreshold < 0 {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("BuildConfig.ParallelThreshold must not be negative (got %d)", c.ParallelThreshold),
		)
	}

	if panicErrs != nil {
		panic(fmt.Errorf("BUG: invalid BuildConfig: %w", panicErrs))
	}
}

// Build hashes every block into a leaf
// and combines the leaves pairwise, level by level, up to a single root.
//
// The returned tree references the block slices directly;
// the caller must not modify them afterwards.
//
// Build with no blocks returns the empty Tree.
// Build panics if cfg is invalid, before doing any hashing.
func Build(blocks [][]byte, cfg BuildConfig) Tree {
	cfg.validate()

	if len(blocks) == 0 {
		return Tree{}
	}

	b := builder{
		h:         cfg.Hasher,
		workers:   cfg.Parallelism,
		threshold: cfg.ParallelThreshold,
	}
	if b.threshold == 0 {
		b.threshold = DefaultParallelThreshold
	}

	// A level has ceil(n/2) nodes of the level below it,
	// so n leaves need exactly this many levels.
	levels := make([]Level, 0, bits.Len(uint(len(blocks)-1))+1)

	cur := b.leafLevel(blocks)
	levels = append(levels, cur)

	for len(cur) > 1 {
		cur = b.nextLevel(cur)
		levels = append(levels, cur)
	}

	return Tree{
		Root:   cur[0],
		Levels: levels,
	}
}

type builder struct {
	h mthash.Hasher

	workers, threshold int
}

func (b builder) leafLevel(blocks [][]byte) Level {
	out := make(Level, len(blocks))
	b.each(len(out), func(i int) {
		out[i] = &Leaf{
			hash: mthash.Hex(b.h, blocks[i]),
			data: blocks[i],
		}
	})
	return out
}

func (b builder) nextLevel(cur Level) Level {
	out := make(Level, (len(cur)+1)/2)
	b.each(len(out), func(i int) {
		left := cur[2*i]

		// An odd trailing node has no partner,
		// so it is paired with itself.
		right := left
		if 2*i+1 < len(cur) {
			right = cur[2*i+1]
		}

		out[i] = &Internal{
			hash:  mthash.Concat(b.h, left.Hash(), right.Hash()),
			left:  left,
			right: right,
		}
	})
	return out
}

// each calls fn for every index in [0, n).
// If the builder is configured for it and n is large enough,
// contiguous batches of indices are handled on separate goroutines,
// and each returns only after every call to fn has finished.
func (b builder) each(n int, fn func(i int)) {
	if b.workers <= 1 || n < b.threshold {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(b.workers, n)
	batchSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
