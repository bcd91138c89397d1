package main

import (
	"fmt"
	"io"
	"time"

	"github.com/akalin/golfsr/errorcode"
	"github.com/akalin/golfsr/lfsr256"
	"github.com/fatih/color"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
)

func newBenchCommand() *cobra.Command {
	var (
		seed  uint64
		count int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the bit-serial and table-driven generation modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return errorcode.Wrap(errorcode.InvalidCommandLineArguments, fmt.Errorf("invalid count %d", count))
			}
			out := cmd.OutOrStdout()
			printCPU(out)

			var sums []uint32
			for _, m := range []lfsr256.Mode{lfsr256.ModeSerial, lfsr256.ModeTable} {
				elapsed, sum := timeMode(seed, m, count)
				sums = append(sums, sum)
				rate := float64(count) / elapsed.Seconds() / 1e6
				fmt.Fprintf(out, "%-7s %d outputs in %v (%.1f M/s)\n", m, count, elapsed, rate)
			}
			if sums[0] != sums[1] {
				return errorcode.Wrap(errorcode.ChecksFailed, fmt.Errorf("modes disagree: checksums %08x and %08x", sums[0], sums[1]))
			}
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&seed, "seed", "s", lfsr256.DefaultSeed, "Generator seed")
	cmd.Flags().IntVarP(&count, "count", "n", 1<<20, "Number of 32-bit outputs per mode")

	return cmd
}

func printCPU(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(w, "CPU: %s\n", cpuid.CPU.BrandName)
	if l2 := cpuid.CPU.Cache.L2; l2 > 0 {
		fmt.Fprintf(w, "L2 cache: %d KiB\n", l2>>10)
	} else {
		fmt.Fprintln(w, "L2 cache: unknown")
	}
	fmt.Fprintf(w, "auto mode: %s\n", lfsr256.NewSource(0, lfsr256.ModeAuto).Mode())
}

// timeMode returns how long count outputs take in mode m, and the xor
// of the outputs so that the two modes can be compared.
func timeMode(seed uint64, m lfsr256.Mode, count int) (time.Duration, uint32) {
	src := lfsr256.NewSource(seed, m)
	var sum uint32
	start := time.Now()
	for i := 0; i < count; i++ {
		sum ^= src.Uint32()
	}
	return time.Since(start), sum
}
