// Package config loads, normalizes, and validates tapescript configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the standard locations. The Config
// type centralizes every knob the CLI needs (the transcript output root, log
// directory, run-history database, and log formatting) so commands receive
// sanitized absolute paths and clear validation errors.
package config
