// Command mtree builds a Merkle tree from data blocks
// and prints the tree and its root hash.
//
// Blocks are taken from the positional arguments,
// followed by the non-empty lines of --input-file if given.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+userMessage(err))
		os.Exit(1)
	}
}
