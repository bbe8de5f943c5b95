package mtree

import "github.com/gordian-engine/mtree/mthash"

// Node is a node in a [Tree].
// The only implementations are [*Leaf] and [*Internal],
// so a type switch over those two is exhaustive.
type Node interface {
	// Hash is the node's hex digest.
	Hash() mthash.Digest

	isNode()
}

// Leaf is a node wrapping one input block.
type Leaf struct {
	hash mthash.Digest
	data []byte
}

// Internal is a node combining two children.
type Internal struct {
	hash mthash.Digest

	left, right Node
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

func (l *Leaf) Hash() mthash.Digest { return l.hash }

// Data returns the block this leaf was built from.
// The slice is the caller's original block, not a copy,
// and it must not be modified.
func (l *Leaf) Data() []byte { return l.data }

func (*Leaf) isNode() {}

func (n *Internal) Hash() mthash.Digest { return n.hash }

func (n *Internal) Left() Node  { return n.left }
func (n *Internal) Right() Node { return n.right }

// Duplicated reports whether n was formed by pairing
// the odd trailing node of a level with itself.
// In that case Left and Right return the same node.
func (n *Internal) Duplicated() bool {
	return n.left == n.right
}

func (*Internal) isNode() {}
