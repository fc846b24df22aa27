// Package openmpt implements engine.Module on top of libopenmpt's C API.
//
// Per-voice muting uses the libopenmpt_ext "interactive" interface, which not
// every tracker format supports; SetVoiceMute surfaces those rejections as
// engine.ErrMuteUnsupported so callers can degrade gracefully.
//
// Building requires libopenmpt development headers (pkg-config libopenmpt).
package openmpt
