package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	seqerrors "github.com/amp-labs/seqsort/errors"
	"gopkg.in/yaml.v3"
)

const (
	algorithmTree = "tree"
	algorithmMSD  = "msd"

	orderLexical = "lexical"
	orderNatural = "natural"
)

var (
	errUnknownAlgorithm = errors.New("unknown algorithm")
	errUnknownOrder     = errors.New("unknown order")
	errOptionMismatch   = errors.New("option does not apply to algorithm")
)

// Config selects the sort to run and the items to run it on. It can be
// loaded from YAML and overridden by flags.
type Config struct {
	Algorithm string   `yaml:"algorithm"`
	Order     string   `yaml:"order"`
	Reverse   bool     `yaml:"reverse"`
	Normalize bool     `yaml:"normalize"`
	Items     []string `yaml:"items"`
}

func defaultConfig() Config {
	return Config{
		Algorithm: algorithmTree,
		Order:     orderLexical,
	}
}

// loadConfig reads a YAML config file on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var problems seqerrors.Collection

	if !slices.Contains([]string{algorithmTree, algorithmMSD}, c.Algorithm) {
		problems.Add(fmt.Errorf("%w: %q", errUnknownAlgorithm, c.Algorithm))
	}

	if !slices.Contains([]string{orderLexical, orderNatural}, c.Order) {
		problems.Add(fmt.Errorf("%w: %q", errUnknownOrder, c.Order))
	}

	if c.Algorithm == algorithmMSD && c.Order != orderLexical {
		problems.Add(fmt.Errorf("%w: order %q with %s", errOptionMismatch, c.Order, algorithmMSD))
	}

	if c.Algorithm == algorithmMSD && c.Reverse {
		problems.Add(fmt.Errorf("%w: reverse with %s", errOptionMismatch, algorithmMSD))
	}

	if c.Algorithm == algorithmTree && c.Normalize {
		problems.Add(fmt.Errorf("%w: normalize with %s", errOptionMismatch, algorithmTree))
	}

	return problems.GetError()
}

// flags holds the command line flags. Only flags that were actually set
// override values from the config file.
type flags struct {
	config    string
	algorithm string
	order     string
	reverse   bool
	normalize bool
}

func registerFlags(fs *flag.FlagSet) *flags {
	f := &flags{}
	def := defaultConfig()

	fs.StringVar(&f.config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.algorithm, "algorithm", def.Algorithm, "sort algorithm: tree or msd")
	fs.StringVar(&f.order, "order", def.Order, "tree sort ordering: lexical or natural")
	fs.BoolVar(&f.reverse, "reverse", false, "tree sort in descending order")
	fs.BoolVar(&f.normalize, "normalize", false, "NFC-normalize msd keys")

	return f
}

// resolve builds the effective config from the optional file, the flags set
// on fs, and the positional args (which replace any configured items).
func (f *flags) resolve(fs *flag.FlagSet) (Config, error) {
	cfg := defaultConfig()

	if f.config != "" {
		var err error

		cfg, err = loadConfig(f.config)
		if err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "algorithm":
			cfg.Algorithm = f.algorithm
		case "order":
			cfg.Order = f.order
		case "reverse":
			cfg.Reverse = f.reverse
		case "normalize":
			cfg.Normalize = f.normalize
		}
	})

	if fs.NArg() > 0 {
		cfg.Items = fs.Args()
	}

	return cfg, cfg.Validate()
}
