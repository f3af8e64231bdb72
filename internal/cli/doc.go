// Package cli wires together the Cobra command tree for the diffrec binary.
//
// It defines the root command and all subcommands (compare, config,
// version), binds flags, reads configuration, invokes the comparison
// pipeline, and returns deterministic exit codes for scripting.
package cli
