// Package config handles configuration management for wordstorm.
// It layers the embedded defaults, an optional TOML or YAML user file,
// WORDSTORM_* environment variables and command-line flags, validates the
// result, and turns it into the static rule sets of a run.
package config
