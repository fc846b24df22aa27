package extract

import (
	"fmt"
	"os"

	"untracker/internal/config"
	"untracker/internal/engine"
	"untracker/internal/sink"
)

// renderStem streams the isolated voice into a fresh sink at path.
//
// Precondition: the probe returned audible and reset the position to the
// start. The engine's zero-frame read (or the frame budget cap) is the
// sole termination condition for the success path. A short or failed write
// discards the partial file. The sink is closed exactly once on every path.
func renderStem(mod engine.Module, layout config.Layout, sampleRate int, opener sink.Opener, spec sink.Spec, path string, buf []float32) (Status, string) {
	out, err := opener.Open(path, spec)
	if err != nil {
		return StatusSkippedWriteError, err.Error()
	}

	duration := mod.DurationSeconds()
	for remaining := frameBudget(duration, sampleRate); remaining > 0; {
		frames := readBlock(mod, layout, sampleRate, buf)
		if frames == 0 {
			break
		}
		written, err := out.Write(buf[:frames*layout.Channels()])
		if err != nil || written < frames {
			reason := fmt.Sprintf("short write: %d of %d frames", written, frames)
			if err != nil {
				reason = err.Error()
			}
			out.Close()
			os.Remove(path)
			return StatusSkippedWriteError, reason
		}
		remaining -= int64(frames)
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return StatusSkippedWriteError, err.Error()
	}
	return StatusWritten, ""
}
