// Package sink provides write-once streaming audio file targets.
//
// A Sink accepts interleaved float32 frames and finalizes its file on Close,
// which must be called exactly once per successfully opened sink. Openers
// exist for WAV and FLAC (pure Go), Opus-in-Ogg (libopus via cgo), and
// Vorbis (ffmpeg subprocess fed raw float PCM on stdin).
package sink
