// Package config loads, normalizes, and validates subgen configuration.
//
// Configuration comes from a TOML file (explicit --config path, then
// ~/.config/subgen/config.toml, then ./subgen.toml) layered over built-in
// defaults. All path fields are expanded and absolute after Load.
package config
