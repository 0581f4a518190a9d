// Package config loads the tool configuration from a YAML or TOML file,
// then applies MIXIN_* environment overrides, optionally read from .env files.
package config
