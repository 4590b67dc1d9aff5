// Package config loads, normalizes, and validates heicvert's TOML
// configuration. Defaults come from Default(); a config file at
// ~/.config/heicvert/config.toml or ./heicvert.toml overrides them, and CLI
// flags override both.
package config
