package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/akalin/golfsr/errorcode"
	"github.com/akalin/golfsr/lfsr256"
	"github.com/spf13/cobra"
)

func newGenCommand() *cobra.Command {
	var (
		seed    uint64
		count   int
		discard uint64
		mode    string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print generator outputs",
		Example: `  # First ten outputs for the default seed
  lfsr256 gen

  # 1 MiB of raw big-endian bytes, skipping the first million outputs
  lfsr256 gen --seed 7 --discard 1000000 --count 262144 --format raw > out.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return errorcode.Wrap(errorcode.InvalidCommandLineArguments, fmt.Errorf("invalid count %d", count))
			}
			m, err := lfsr256.ParseMode(mode)
			if err != nil {
				return errorcode.Wrap(errorcode.InvalidCommandLineArguments, fmt.Errorf("invalid --mode: %w", err))
			}
			if !validFormats[format] {
				return errorcode.Wrap(errorcode.InvalidCommandLineArguments, fmt.Errorf("unknown format %q", format))
			}

			src := lfsr256.NewSource(seed, m)
			slog.Debug("generating", "seed", seed, "mode", src.Mode(), "discard", discard, "count", count)
			src.Discard(discard)

			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := writeOutputs(w, src, count, format); err != nil {
				return err
			}
			return errorcode.Wrap(errorcode.FileIOError, w.Flush())
		},
	}

	cmd.Flags().Uint64VarP(&seed, "seed", "s", lfsr256.DefaultSeed, "Generator seed")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of 32-bit outputs")
	cmd.Flags().Uint64Var(&discard, "discard", 0, "Number of outputs to skip first")
	cmd.Flags().StringVarP(&mode, "mode", "m", lfsr256.ModeAuto.String(), "Generation mode (auto, serial or table)")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "Output format (hex, dec or raw)")

	return cmd
}

var validFormats = map[string]bool{"hex": true, "dec": true, "raw": true}

// writeOutputs writes count outputs of src to w. format must be one
// of validFormats.
func writeOutputs(w io.Writer, src *lfsr256.Source, count int, format string) error {
	switch format {
	case "hex":
		for i := 0; i < count; i++ {
			if _, err := fmt.Fprintf(w, "%08x\n", src.Uint32()); err != nil {
				return errorcode.Wrap(errorcode.FileIOError, err)
			}
		}
	case "dec":
		for i := 0; i < count; i++ {
			if _, err := fmt.Fprintf(w, "%d\n", src.Uint32()); err != nil {
				return errorcode.Wrap(errorcode.FileIOError, err)
			}
		}
	case "raw":
		if _, err := io.CopyN(w, src, 4*int64(count)); err != nil {
			return errorcode.Wrap(errorcode.FileIOError, fmt.Errorf("failed to write raw output: %w", err))
		}
	default:
		panic("unchecked format " + format)
	}
	return nil
}
