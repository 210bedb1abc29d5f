package config

import "errors"

// ErrReadConfigFile wraps a failure to read or parse an explicitly named
// TOML configuration file (an empty path means no file and is not an error).
var ErrReadConfigFile = errors.New("config: failed to read configuration file")

// Config is cmd/parnas's fully resolved run configuration.
type Config struct {
	// InputTree is the path to a Newick tree file ("-" for stdin).
	InputTree string `mapstructure:"input_tree"`

	// Alignment is the optional path to a FASTA alignment used to
	// re-weight edges via ancestral parsimony.
	Alignment string `mapstructure:"alignment"`

	// P is the number of medoids to select.
	P int `mapstructure:"p"`

	// Radius is an explicit coverage radius; ignored if Similarity > 0.
	Radius float64 `mapstructure:"radius"`

	// Similarity is a percentage in (0, 100] converted to a radius via
	// selectspec.RadiusFromSimilarity against the alignment length.
	Similarity float64 `mapstructure:"similarity"`

	// Exclude, FullyExclude, PriorCovered are regex pattern lists matched
	// against leaf labels (see selectspec.Spec).
	Exclude      []string `mapstructure:"exclude"`
	FullyExclude []string `mapstructure:"fully_exclude"`
	PriorCovered []string `mapstructure:"prior_covered"`

	// OutputFormat selects the rendering: "newick", "ansi", or "json".
	OutputFormat string `mapstructure:"output_format"`

	// LogLevel is parsed by zerolog ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level"`
}

// defaults returns the package's zero-configuration Config, the baseline
// viper falls back to before the file and flags are layered on top.
func defaults() Config {
	return Config{
		P:            1,
		OutputFormat: "ansi",
		LogLevel:     "info",
	}
}
