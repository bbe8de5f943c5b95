// Package mtcodec renders a built Merkle tree for output.
//
// Nodes are rendered recursively: a leaf as an object with "hash" and "data",
// and an internal node as an object with "hash", "left", and "right".
// A child shared through odd-tail duplication is rendered at both positions.
//
// The rendering is one-way; nothing in this module reads it back.
package mtcodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/gordian-engine/mtree"
	"github.com/gordian-engine/mtree/mthash"
)

// Format selects the encoding produced by [Encode] and [Marshal].
type Format string

const (
	JSON Format = "json"
	CBOR Format = "cbor"
)

// UnknownFormatError is returned by [ParseFormat]
// and by the encoders when given an unsupported [Format].
type UnknownFormatError struct {
	Format string
}

func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (want %q or %q)", e.Format, JSON, CBOR)
}

// InvalidUTF8Error is returned when a leaf's data is not valid UTF-8.
// Both formats render data as a text string,
// which cannot hold such a block without altering it.
type InvalidUTF8Error struct {
	// Hash of the offending leaf.
	Hash mthash.Digest
}

func (e InvalidUTF8Error) Error() string {
	return "leaf " + string(e.Hash) + " data is not valid UTF-8"
}

// ErrNilNode is returned when encoding a nil node,
// such as the root of an empty tree.
var ErrNilNode = errors.New("cannot encode nil node")

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, CBOR:
		return f, nil
	default:
		return "", UnknownFormatError{Format: s}
	}
}

// Options controls how a node is rendered.
// The zero value renders compact JSON.
type Options struct {
	// Format defaults to JSON when empty.
	Format Format

	// Pretty indents JSON output with two spaces.
	// It has no effect on CBOR output.
	Pretty bool
}

// Marshal renders n according to opts.
func Marshal(n mtree.Node, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode renders n according to opts and writes the result to w.
func Encode(w io.Writer, n mtree.Node, opts Options) error {
	if n == nil {
		return ErrNilNode
	}

	v, err := newNodeView(n)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if opts.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil

	case CBOR:
		em, err := cborEncMode()
		if err != nil {
			return fmt.Errorf("failed to prepare CBOR encoder: %w", err)
		}
		if err := em.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("failed to encode CBOR: %w", err)
		}
		return nil

	default:
		return UnknownFormatError{Format: string(opts.Format)}
	}
}

var cborEncMode = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
})

// nodeView is the serialized shape of an [mtree.Node].
// Exactly one of Data or the Left/Right pair is set.
type nodeView struct {
	Hash string `json:"hash" cbor:"hash"`

	Data *string `json:"data,omitempty" cbor:"data,omitempty"`

	Left  *nodeView `json:"left,omitempty" cbor:"left,omitempty"`
	Right *nodeView `json:"right,omitempty" cbor:"right,omitempty"`
}

func newNodeView(n mtree.Node) (*nodeView, error) {
	switch n := n.(type) {
	case *mtree.Leaf:
		if !utf8.Valid(n.Data()) {
			return nil, InvalidUTF8Error{Hash: n.Hash()}
		}
		data := string(n.Data())
		return &nodeView{
			Hash: string(n.Hash()),
			Data: &data,
		}, nil

	case *mtree.Internal:
		left, err := newNodeView(n.Left())
		if err != nil {
			return nil, err
		}

		// No need to walk the same subtree twice.
		right := left
		if !n.Duplicated() {
			right, err = newNodeView(n.Right())
			if err != nil {
				return nil, err
			}
		}

		return &nodeView{
			Hash:  string(n.Hash()),
			Left:  left,
			Right: right,
		}, nil

	default:
		panic(fmt.Errorf("BUG: unhandled node type %T", n))
	}
}
