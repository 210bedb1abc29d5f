package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load resolves a Config from, in increasing priority: the package
// defaults, an optional TOML file at configPath (skipped when configPath
// is empty; no default file location is searched), and flags already
// parsed into fs.
//
// configPath may be empty; when non-empty the file must exist and parse,
// or Load returns ErrReadConfigFile.
func Load(configPath string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := defaults()
	v.SetDefault("input_tree", def.InputTree)
	v.SetDefault("alignment", def.Alignment)
	v.SetDefault("p", def.P)
	v.SetDefault("radius", def.Radius)
	v.SetDefault("similarity", def.Similarity)
	v.SetDefault("exclude", def.Exclude)
	v.SetDefault("fully_exclude", def.FullyExclude)
	v.SetDefault("prior_covered", def.PriorCovered)
	v.SetDefault("output_format", def.OutputFormat)
	v.SetDefault("log_level", def.LogLevel)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrReadConfigFile, configPath, err)
		}
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrReadConfigFile, configPath, err)
		}
	}

	// Flag names follow CLI convention (dashes); Config's mapstructure tags
	// follow Go convention (underscores). viper.BindPFlags keys flags by
	// their bare name, so a blanket bind would silently fail to override
	// every multi-word field; bind each pairing explicitly instead.
	if fs != nil {
		for key, flagName := range map[string]string{
			"input_tree":    "input-tree",
			"alignment":     "alignment",
			"p":             "p",
			"radius":        "radius",
			"similarity":    "similarity",
			"exclude":       "exclude",
			"fully_exclude": "fully-exclude",
			"prior_covered": "prior-covered",
			"output_format": "output-format",
			"log_level":     "log-level",
		} {
			flag := fs.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("config: binding flag %q: %w", flagName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}
