// Package config resolves the immutable extraction configuration.
//
// Resolution order: built-in defaults, then an optional TOML file, then
// explicit command-line overrides. Once Resolve returns, the Config is never
// mutated for the rest of the run; components that need to experiment with
// render parameters (the silence probe) save and restore engine state
// instead.
package config
