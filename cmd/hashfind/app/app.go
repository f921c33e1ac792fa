package app

import (
	"runtime"

	"github.com/lth/hashfind/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "1.0.0"

type options struct {
	cfgPath string
	// flags holds the values bound to command-line flags; only the ones the
	// user set override the config file.
	flags *config.Config
}

func New() *cobra.Command {
	opts := &options{flags: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "hashfind [flags] <hashToFind>",
		Short: "HashFinder - brute-force a preimage for an MD5 or SHA-1 digest",
		Long: `HashFinder v` + version + `
Searches for a string whose digest equals <hashToFind>, either by trying
every word of a dictionary file or by generating every combination of a
character set within a length range. The work is split across workers.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runSearch(cmd, opts, args[0])
		},
	}

	bindFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(
		newInfoCmd(opts),
		newBenchmarkCmd(opts),
		newAlgorithmsCmd(),
	)

	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	f := opts.flags

	fs.StringVar(&opts.cfgPath, "config", "", "path to a yaml configuration file")
	fs.StringVarP(&f.Algorithm, "hash-algo", "H", f.Algorithm, "hash algorithm: md5, sha-1, sha256, sha3-256, blake2b-256, blake3")
	fs.StringVarP(&f.InputFile, "input-file", "i", f.InputFile, "read words from a dictionary file")
	fs.StringVar(&f.Mode, "mode", f.Mode, "attack mode: wordlist, incremental, random (default: wordlist if --input-file is set)")
	fs.IntVarP(&f.MinLength, "min-length", "a", f.MinLength, "minimal length of the generated combinations")
	fs.IntVarP(&f.MaxLength, "max-length", "z", f.MaxLength, "maximum length of the generated combinations")
	fs.StringVarP(&f.Characters, "characters", "c", f.Characters, "characters used to generate combinations: lower, upper, digits, alpha, alnum, lowernum, all, or a custom string")
	fs.IntVarP(&f.Workers, "workers", "t", runtime.NumCPU(), "number of worker goroutines")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for the random mode (default: time based)")
	fs.BoolVar(&f.NoProgress, "no-progress", f.NoProgress, "do not draw a progress bar")
	fs.StringVar(&f.Logger.Level, "log-level", f.Logger.Level, "log level: debug, info, warn, error")
	fs.BoolVar(&f.Logger.IsJSON, "log-json", f.Logger.IsJSON, "write logs as JSON")
}

// resolve loads --config (or the defaults) and applies every flag the user
// set explicitly on top.
func (o *options) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if o.cfgPath != "" {
		loaded, err := config.Load(o.cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := o.flags
	if fs.Changed("hash-algo") {
		cfg.Algorithm = f.Algorithm
	}
	if fs.Changed("input-file") {
		cfg.InputFile = f.InputFile
	}
	if fs.Changed("mode") {
		cfg.Mode = f.Mode
	}
	if fs.Changed("min-length") {
		cfg.MinLength = f.MinLength
	}
	if fs.Changed("max-length") {
		cfg.MaxLength = f.MaxLength
	}
	if fs.Changed("characters") {
		cfg.Characters = f.Characters
	}
	if fs.Changed("workers") || cfg.Workers <= 0 {
		cfg.Workers = f.Workers
	}
	if fs.Changed("seed") {
		cfg.Seed = f.Seed
	}
	if fs.Changed("no-progress") {
		cfg.NoProgress = f.NoProgress
	}
	if fs.Changed("log-level") {
		cfg.Logger.Level = f.Logger.Level
	}
	if fs.Changed("log-json") {
		cfg.Logger.IsJSON = f.Logger.IsJSON
	}

	return cfg, nil
}

// ignoredFlags lists the combination flags set alongside a dictionary.
func ignoredFlags(fs *pflag.FlagSet, cfg *config.Config) []string {
	if cfg.ResolvedMode() != config.ModeWordlist {
		return nil
	}

	var ignored []string
	for _, name := range []string{"min-length", "max-length", "characters", "seed"} {
		if fs.Changed(name) {
			ignored = append(ignored, name)
		}
	}
	return ignored
}
