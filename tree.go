package mtree

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/mtree/mthash"
)

// Level is one horizontal slice of a [Tree], ordered left to right.
type Level []Node

// Tree is the result of [Build].
//
// Levels[0] is the leaf level, in input order,
// and each following level has half as many nodes, rounded up.
// The last level contains only Root.
//
// If Build was called with no blocks,
// Root is nil and Levels is empty.
type Tree struct {
	Root Node

	Levels []Level
}

// Empty reports whether the tree was built from zero blocks.
func (t Tree) Empty() bool {
	return t.Root == nil
}

// RootHash returns the digest of the root,
// or the empty string if the tree is empty.
func (t Tree) RootHash() mthash.Digest {
	if t.Root == nil {
		return ""
	}
	return t.Root.Hash()
}

// Height is the number of edges from the root to any leaf.
// A single-block tree, and the empty tree, both have height zero.
func (t Tree) Height() int {
	if len(t.Levels) == 0 {
		return 0
	}
	return len(t.Levels) - 1
}

// Leaves returns the leaf level, or nil if the tree is empty.
func (t Tree) Leaves() Level {
	if len(t.Levels) == 0 {
		return nil
	}
	return t.Levels[0]
}

func (t Tree) LeafCount() int { return len(t.Leaves()) }

// NodeCount is the total number of nodes across all levels.
// Duplicated children are only counted once.
func (t Tree) NodeCount() int {
	var n int
	for _, l := range t.Levels {
		n += len(l)
	}
	return n
}

// OddLevels returns a bit set with a bit for every level in the tree.
// Bit k is set if level k had an odd number of nodes (other than the root level),
// meaning its last node was paired with itself to produce level k+1.
func (t Tree) OddLevels() *bitset.BitSet {
	bs := bitset.New(uint(len(t.Levels)))
	for k, l := range t.Levels {
		if len(l) > 1 && len(l)&1 == 1 {
			bs.Set(uint(k))
		}
	}
	return bs
}
