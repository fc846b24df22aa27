// Command untracker extracts per-instrument stems from tracker music
// modules (MOD, XM, IT, S3M and friends) into separate audio files.
//
// The root command runs a full extraction; `untracker voices` lists the
// isolatable voices of a module, `untracker config` manages the optional
// TOML configuration file and `untracker deps` reports external binary
// availability.
package main
