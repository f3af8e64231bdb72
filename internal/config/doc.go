// Package config loads and merges diffrec configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (DIFFREC_FORMAT, DIFFREC_CONTEXT_LINES, etc.)
//  3. Config file ($XDG_CONFIG_HOME/diffrec/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key by name.
package config
