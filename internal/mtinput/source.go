// Package mtinput collects data blocks from command-line arguments and files.
package mtinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// NoBlocksError is returned from [Source.Read]
// when neither the arguments nor the input file produced any blocks.
type NoBlocksError struct {
	InputFile string
}

func (e NoBlocksError) Error() string {
	if e.InputFile == "" {
		return "no data blocks provided"
	}
	return "no data blocks provided (input file " + e.InputFile + " had no non-empty lines)"
}

// Source describes where blocks are read from.
type Source struct {
	// Blocks given directly, in order.
	Args []string

	// Optional path to a file with one block per line.
	// Lines are trimmed of surrounding whitespace and blank lines are skipped.
	// The file's blocks follow the Args blocks.
	InputFile string
}

// Read returns every block from the source, Args first.
//
// If InputFile does not exist, the returned error wraps fs.ErrNotExist
// and names the absolute path that was tried.
func (s Source) Read() ([][]byte, error) {
	blocks := make([][]byte, 0, len(s.Args))
	for _, a := range s.Args {
		blocks = append(blocks, []byte(a))
	}

	if s.InputFile != "" {
		path, err := filepath.Abs(s.InputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve input file %q: %w", s.InputFile, err)
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
		}
		defer f.Close()

		fileBlocks, err := ReadLines(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
		}
		blocks = append(blocks, fileBlocks...)
	}

	if len(blocks) == 0 {
		return nil, NoBlocksError{InputFile: s.InputFile}
	}

	return blocks, nil
}

// ReadLines splits r into lines and returns the trimmed, non-empty ones.
// Lines may end in "\n" or "\r\n"; there is no limit on line length.
func ReadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)

	var out [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if t := bytes.TrimSpace(line); len(t) > 0 {
			out = append(out, t)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
