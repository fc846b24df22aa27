package extract

import (
	"untracker/internal/config"
	"untracker/internal/engine"
)

const (
	blockFrames = 4096
	// silenceEpsilon separates signal from exact zero and denormal noise.
	silenceEpsilon = 1e-9
	// durationTolerance stops a pass slightly before the reported duration;
	// engines round position bookkeeping near the end.
	durationTolerance = 0.99
	// nearestTaps is the cheapest interpolation filter length.
	nearestTaps = 1
)

// audible reports whether the currently isolated voice produces any signal.
//
// The probe renders with the nearest-neighbor filter since only presence of
// signal matters, not fidelity; the configured filter is restored and the
// position reset to the start before returning, so a positive verdict flows
// straight into a full-quality render.
func audible(mod engine.Module, layout config.Layout, sampleRate int) bool {
	saved, savedErr := mod.RenderParam(engine.ParamInterpolationLength)
	if savedErr == nil {
		_ = mod.SetRenderParam(engine.ParamInterpolationLength, nearestTaps)
	}
	defer func() {
		if savedErr == nil {
			_ = mod.SetRenderParam(engine.ParamInterpolationLength, saved)
		}
		mod.SetPositionSeconds(0)
	}()

	mod.SetPositionSeconds(0)
	duration := mod.DurationSeconds()
	buf := make([]float32, blockFrames*layout.Channels())

	for remaining := frameBudget(duration, sampleRate); remaining > 0; {
		frames := readBlock(mod, layout, sampleRate, buf)
		if frames == 0 {
			return false
		}
		for _, v := range buf[:frames*layout.Channels()] {
			if v > silenceEpsilon || v < -silenceEpsilon {
				return true
			}
		}
		if mod.PositionSeconds() >= duration*durationTolerance {
			return false
		}
		remaining -= int64(frames)
	}
	return false
}

// frameBudget bounds a render pass for engines that never deliver a clean
// zero-frame end: twice the reported duration plus a second of slack.
func frameBudget(duration float64, sampleRate int) int64 {
	return int64(duration*float64(sampleRate))*2 + int64(sampleRate)
}

// readBlock pulls one block through the engine entry point matching the
// layout. The layout selects the pull API, not a post-hoc remix.
func readBlock(mod engine.Module, layout config.Layout, sampleRate int, buf []float32) int {
	switch layout {
	case config.LayoutMono:
		return mod.ReadMono(sampleRate, buf)
	case config.LayoutQuad:
		return mod.ReadQuad(sampleRate, buf)
	default:
		return mod.ReadStereo(sampleRate, buf)
	}
}
