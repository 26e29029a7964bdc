// Package config loads and validates cutline's TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/cutline/config.toml, then a cutline.toml in the working
// directory. Missing files are fine: defaults cover everything, so the CLI
// and server run with no config at all. Loaded values are normalized (paths
// expanded and made absolute) and validated before use.
package config
