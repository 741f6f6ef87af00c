// Package config loads and validates hctool configuration.
//
// Configuration is optional: with no file present the tool runs on defaults
// and autodetects the game's save directory. A TOML file at
// ~/.config/hctool/config.toml (or --config) can pin the save directory, the
// outfits file, the variant-group table the organiser uses, and log output.
// Command-line flags override file values.
package config
