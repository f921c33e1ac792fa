package app

import (
	"fmt"
	"strings"

	"github.com/lth/hashfind/internal/cracker"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [flags] <hashToFind>",
		Short: "Print the search configuration and per-worker index ranges without hashing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			target, err := cfg.Target(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			space, err := cfg.Space()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printConfiguration(out, cfg, target, space)

			lengths, hasLengths := space.(interface{ Length(bucket int) int })

			fmt.Fprintf(out, "Workers: %d\n", cfg.Workers)
			for b := 0; b < space.Buckets(); b++ {
				if hasLengths {
					fmt.Fprintf(out, "Length %d:\n", lengths.Length(b))
				} else {
					fmt.Fprintln(out, "Entries:")
				}
				for i, r := range cracker.Split(space.Size(b), cfg.Workers) {
					fmt.Fprintf(out, "  [Worker %d] [%d, %d) %d candidates\n", i+1, r.Start, r.Stop, r.Len())
				}
			}
			return nil
		},
	}
}
