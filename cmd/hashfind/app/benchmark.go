package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lth/hashfind/internal/attacks"
	"github.com/lth/hashfind/internal/cracker"
	"github.com/lth/hashfind/internal/digest"
	"github.com/spf13/cobra"
)

func newBenchmarkCmd(opts *options) *cobra.Command {
	var length int

	benchCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure hashing throughput on an exhaustive search with no solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			algorithm, err := digest.Lookup(cfg.Algorithm)
			if err != nil {
				return err
			}
			// the all-zero digest has no known preimage
			target, err := digest.ParseTarget(algorithm, strings.Repeat("0", algorithm.HexLen()))
			if err != nil {
				return err
			}
			space, err := attacks.NewIncremental(attacks.IncrementalConfig{
				Charset:   cfg.Alphabet(),
				MinLength: length,
				MaxLength: length,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Benchmarking %s with %d workers over %d candidates...\n",
				strings.ToUpper(algorithm.Name), cfg.Workers, space.Size(0))

			c := cracker.New(target, cfg.Workers)
			c.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
			result := c.Run(context.Background(), space)

			rate := float64(result.Attempts) / result.Duration.Seconds()
			fmt.Fprintf(out, "CPU Mode: %.0f hashes/second\n", rate)
			return nil
		},
	}

	benchCmd.Flags().IntVarP(&length, "length", "l", 4, "length of the benchmark combinations")

	return benchCmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported hash algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, a := range digest.Algorithms() {
				names := a.Name
				if len(a.Aliases) > 0 {
					names += " (" + strings.Join(a.Aliases, ", ") + ")"
				}
				fmt.Fprintf(out, "%-24s %3d bits, %d hex characters\n", names, a.Size*8, a.HexLen())
			}
		},
	}
}
