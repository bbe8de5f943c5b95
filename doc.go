// Package mtree builds binary Merkle trees over an ordered sequence of blocks.
//
// Each block becomes a [Leaf] holding the hex digest of the block.
// Adjacent nodes are then combined pairwise, left to right,
// into [Internal] nodes whose digest is the hash of the concatenation
// of the two child digests (as hex text, not raw bytes).
// The process repeats, one [Level] at a time, until a single root remains.
//
// When a level has an odd number of nodes,
// its last node is paired with itself.
// The parent then references that one child as both its left and right child;
// see [*Internal.Duplicated].
//
// A [Tree] is fully built by [Build] and never modified afterwards,
// so it is safe for concurrent readers.
package mtree
