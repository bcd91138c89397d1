package main

import (
	"log/slog"
	"os"

	"github.com/akalin/golfsr/errorcode"
	"github.com/spf13/cobra"
)

// Version is reported by --version. Release builds set it with
// -ldflags "-X main.Version=v1.2.3".
var Version = "dev"

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lfsr256",
		Short: "Generate and check values from a 256-bit GF(2) LFSR generator",
		Long: `lfsr256 drives a seedable pseudo-random generator built on a 256-bit
Galois LFSR with reduction polynomial x^255 + x^31 + x^7 + x^3 + 1.

The generator is deterministic and NOT suitable for cryptographic use.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newGenCommand(),
		newBenchCommand(),
		newCheckCommand(),
	)
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(int(errorcode.Of(err)))
	}
}
