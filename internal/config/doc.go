// Package config loads, normalizes and validates the webpub1c TOML
// configuration.
package config
