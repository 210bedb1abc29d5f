// Package config loads cmd/parnas's run configuration from an optional
// TOML file merged with command-line flags, using viper as the layering
// mechanism: flags take precedence over the file, which takes precedence
// over the package defaults.
package config
