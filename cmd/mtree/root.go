package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/gordian-engine/mtree"
	"github.com/gordian-engine/mtree/internal/mtinput"
	"github.com/gordian-engine/mtree/mtcodec"
	"github.com/gordian-engine/mtree/mthash/mtsha256"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	inputFile  string
	outputFile string
	pretty     bool
	format     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "mtree [data...]",
		Short: "Build a Merkle tree from data blocks",
		Long: `Build a Merkle tree from data blocks.

Each positional argument is one block.
With --input-file, every non-empty (trimmed) line of the file is one more block.`,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
			if err != nil {
				return err
			}
			return run(log, cmd.OutOrStdout(), f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.inputFile, "input-file", "", "File with data blocks (one per line)")
	flags.StringVar(&f.outputFile, "output-file", "", "Save the encoded Merkle tree to this file")
	flags.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&f.format, "format", string(mtcodec.JSON), "Output encoding: json or cbor")
	flags.StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, or error")

	return cmd
}

func run(log *slog.Logger, out io.Writer, f rootFlags, args []string) error {
	format, err := mtcodec.ParseFormat(f.format)
	if err != nil {
		return err
	}

	blocks, err := mtinput.Source{
		Args:      args,
		InputFile: f.inputFile,
	}.Read()
	if err != nil {
		return err
	}
	log.Debug("Read data blocks", "n_args", len(args), "n_blocks", len(blocks))

	tree := mtree.Build(blocks, mtree.BuildConfig{
		Hasher:      mtsha256.Hasher{},
		Parallelism: runtime.GOMAXPROCS(0),
	})
	log.Debug(
		"Built tree",
		"height", tree.Height(),
		"n_nodes", tree.NodeCount(),
		"odd_levels", tree.OddLevels().String(),
	)

	enc, err := mtcodec.Marshal(tree.Root, mtcodec.Options{
		Format: format,
		Pretty: f.pretty,
	})
	if err != nil {
		return err
	}

	if f.outputFile != "" {
		saved := enc
		if format == mtcodec.JSON {
			// The saved file holds only the document, with no trailing newline.
			saved = bytes.TrimSuffix(enc, []byte("\n"))
		}
		if err := os.WriteFile(f.outputFile, saved, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info("Wrote tree", "path", f.outputFile, "n_bytes", len(saved))
		fmt.Fprintf(out, "Merkle tree saved to %s\n", f.outputFile)
	} else {
		switch format {
		case mtcodec.CBOR:
			fmt.Fprintln(out, "Merkle Tree CBOR (hex):")
			fmt.Fprintln(out, hex.EncodeToString(enc))
		default:
			fmt.Fprintln(out, "Merkle Tree JSON:")
			// The JSON encoding already ends in a newline.
			_, _ = out.Write(enc)
		}
	}

	fmt.Fprintf(out, "\nMerkle Root: %s\n", tree.RootHash())
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// userMessage formats err the way the command reports it on stderr.
func userMessage(err error) string {
	var nbe mtinput.NoBlocksError
	if errors.As(err, &nbe) {
		return "No data blocks provided."
	}

	var pe *fs.PathError
	if errors.As(err, &pe) && errors.Is(err, fs.ErrNotExist) {
		return "File not found at " + pe.Path
	}

	return err.Error()
}
