package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lth/hashfind/internal/attacks"
	"github.com/lth/hashfind/internal/config"
	"github.com/lth/hashfind/internal/cracker"
	"github.com/lth/hashfind/internal/digest"
	"github.com/lth/hashfind/internal/hashfind"
	"github.com/lth/hashfind/internal/logging"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, opts *options, hash string) error {
	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := logging.New(cfg.Logger, out, slog.String("run_id", uuid.NewString()))

	for _, name := range ignoredFlags(cmd.Flags(), cfg) {
		logger.Warn(fmt.Sprintf("<%s> will be ignored, using dictionary", name))
	}
	if minLength := cfg.MinLength; cfg.ClampLengths() {
		logger.Warn(fmt.Sprintf("<min-length> %d is greater than <max-length>, using %d", minLength, cfg.MinLength))
	}

	target, err := cfg.Target(strings.ToLower(hash))
	if err != nil {
		return err
	}

	space, err := cfg.Space()
	if err != nil {
		return err
	}

	printConfiguration(out, cfg, target, space)

	c := cracker.New(target, cfg.Workers)
	c.SetLogger(logger)

	bar := newProgressBar(cmd.ErrOrStderr(), hashfind.TotalSize(space), cfg.NoProgress)
	if bar != nil {
		c.SetProgressCallback(func(p hashfind.Progress) {
			_ = bar.Set64(int64(p.Attempts))
		})
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\nInterrupted - stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Fprintf(out, "I will start %d workers now.\n", c.Workers())
	result := c.Run(ctx, space)

	if bar != nil {
		_ = bar.Finish()
	}

	printResult(out, result)
	return nil
}

func printConfiguration(w io.Writer, cfg *config.Config, target digest.Target, space hashfind.Space) {
	fmt.Fprintf(w, "HashFinder v%s\n", version)
	fmt.Fprintln(w, "================================")
	fmt.Fprintf(w, "Hash algorithm: %s\n", strings.ToUpper(target.Algorithm.Name))
	fmt.Fprintf(w, "Hash:           %s\n", target)

	mode := cfg.ResolvedMode()
	if mode == config.ModeWordlist {
		fmt.Fprintf(w, "Mode:           dictionary attack (%s)\n", cfg.InputFile)
		fmt.Fprintf(w, "Words:          %d\n", hashfind.TotalSize(space))
	} else {
		fmt.Fprintf(w, "Mode:           %s combination attack\n", mode)
		if cfg.MinLength != cfg.MaxLength {
			fmt.Fprintf(w, "Word length:    %d - %d\n", cfg.MinLength, cfg.MaxLength)
		} else {
			fmt.Fprintf(w, "Word length:    %d\n", cfg.MaxLength)
		}
		fmt.Fprintf(w, "Characters:     %s\n", cfg.Alphabet())
		fmt.Fprintf(w, "Combinations:   %d\n", attacks.EstimateCombinations(attacks.IncrementalConfig{
			Charset:   cfg.Alphabet(),
			MinLength: cfg.MinLength,
			MaxLength: cfg.MaxLength,
		}))
	}
	fmt.Fprintln(w)
}

func printResult(w io.Writer, result hashfind.Result) {
	fmt.Fprintln(w)

	switch {
	case result.Found:
		fmt.Fprintln(w, "================================")
		fmt.Fprintf(w, "COLLISION FOUND: %s\n", result.Candidate)
		fmt.Fprintln(w, "================================")
	case result.Cancelled:
		fmt.Fprintln(w, "Search interrupted, no collision found.")
	default:
		fmt.Fprintln(w, "No collision found.")
	}

	fmt.Fprintf(w, "Attempts: %d\n", result.Attempts)
	fmt.Fprintf(w, "Time: %s\n", formatDuration(result.Duration))
	if seconds := result.Duration.Seconds(); seconds > 0 {
		fmt.Fprintf(w, "Rate: %.0f hashes/second\n", float64(result.Attempts)/seconds)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
