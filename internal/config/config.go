package config

import (
	"fmt"
	"os"

	"github.com/lth/hashfind/internal/attacks"
	"github.com/lth/hashfind/internal/digest"
	"github.com/lth/hashfind/internal/hashfind"
	"github.com/lth/hashfind/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	ModeWordlist    = "wordlist"
	ModeIncremental = "incremental"
	ModeRandom      = "random"
)

type Config struct {
	Algorithm  string          `yaml:"algorithm"`
	InputFile  string          `yaml:"input_file"`
	Mode       string          `yaml:"mode"`
	Characters string          `yaml:"characters"`
	MinLength  int             `yaml:"min_length"`
	MaxLength  int             `yaml:"max_length"`
	Workers    int             `yaml:"workers"`
	Seed       int64           `yaml:"seed"`
	NoProgress bool            `yaml:"no_progress"`
	Logger     *logging.Config `yaml:"logger"`
}

func Default() *Config {
	return &Config{
		Algorithm:  "md5",
		Characters: "lowernum",
		MinLength:  8,
		MaxLength:  8,
		Logger:     &logging.Config{Level: "info"},
	}
}

// Load reads a yaml file on top of Default.
func Load(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = &logging.Config{Level: "info"}
	}

	return cfg, nil
}

// ResolvedMode is Mode, or wordlist/incremental depending on InputFile when
// Mode is empty.
func (c *Config) ResolvedMode() string {
	if c.Mode != "" {
		return c.Mode
	}
	if c.InputFile != "" {
		return ModeWordlist
	}
	return ModeIncremental
}

// Alphabet expands Characters presets.
func (c *Config) Alphabet() string {
	return attacks.ResolveCharset(c.Characters)
}

func (c *Config) Validate() error {
	if c.Algorithm == "" {
		return fmt.Errorf("%w: hash algorithm is required", hashfind.ErrInvalidConfiguration)
	}

	switch c.ResolvedMode() {
	case ModeWordlist:
		if c.InputFile == "" {
			return fmt.Errorf("%w: wordlist mode needs an input file", hashfind.ErrInvalidConfiguration)
		}
		return nil
	case ModeIncremental, ModeRandom:
	default:
		return fmt.Errorf("%w: unknown mode %q", hashfind.ErrInvalidConfiguration, c.Mode)
	}

	if c.Alphabet() == "" {
		return fmt.Errorf("%w: characters must not be empty", hashfind.ErrInvalidConfiguration)
	}
	if c.MinLength <= 0 {
		return fmt.Errorf("%w: min length must be greater than 0", hashfind.ErrInvalidConfiguration)
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("%w: max length must be greater than 0", hashfind.ErrInvalidConfiguration)
	}

	return nil
}

// ClampLengths lowers MinLength to MaxLength when it is greater, for the
// combination modes. It reports whether it changed anything.
func (c *Config) ClampLengths() bool {
	if c.ResolvedMode() == ModeWordlist || c.MaxLength <= 0 || c.MinLength <= c.MaxLength {
		return false
	}
	c.MinLength = c.MaxLength
	return true
}

// Target looks up the algorithm and validates hash against it.
func (c *Config) Target(hash string) (digest.Target, error) {
	algorithm, err := digest.Lookup(c.Algorithm)
	if err != nil {
		return digest.Target{}, err
	}
	return digest.ParseTarget(algorithm, hash)
}

// Space builds the candidate space for the resolved mode, loading the
// wordlist if there is one. MinLength is clamped first.
func (c *Config) Space() (hashfind.Space, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ClampLengths()

	switch c.ResolvedMode() {
	case ModeWordlist:
		words, err := attacks.LoadWordlist(c.InputFile)
		if err != nil {
			return nil, err
		}
		return attacks.NewWordlist(words), nil

	case ModeRandom:
		s, err := attacks.NewRandomOrder(attacks.RandomConfig{
			Charset:   c.Alphabet(),
			MinLength: c.MinLength,
			MaxLength: c.MaxLength,
			Seed:      c.Seed,
		})
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		s, err := attacks.NewIncremental(attacks.IncrementalConfig{
			Charset:   c.Alphabet(),
			MinLength: c.MinLength,
			MaxLength: c.MaxLength,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
