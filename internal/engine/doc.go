// Package engine defines the contract a tracker-module playback engine must
// satisfy for stem extraction.
//
// The engine owns all playback state: the per-voice mute map, the playback
// position, and the render parameters. Callers manipulate that state through
// this interface and pull rendered audio as interleaved float frames. The
// production implementation lives in engine/openmpt; tests use the fake in
// internal/testsupport.
package engine
