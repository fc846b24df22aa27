package extract

import (
	"log/slog"

	"untracker/internal/engine"
)

// isolate mutes every voice in [0, total) except index. Rejected commands
// are tolerated: a partial mute state still lets extraction proceed
// best-effort for formats without full per-voice muting.
func isolate(mod engine.Module, index, total int, logger *slog.Logger) {
	for i := 0; i < total; i++ {
		if err := mod.SetVoiceMute(i, true); err != nil {
			logger.Warn("mute command rejected", slog.Int("voice", i), slog.Any("error", err))
		}
	}
	if err := mod.SetVoiceMute(index, false); err != nil {
		logger.Warn("unmute command rejected", slog.Int("voice", index), slog.Any("error", err))
	}
}

// restoreAll unmutes every voice so the engine never stays in a muted state
// after the run.
func restoreAll(mod engine.Module, total int, logger *slog.Logger) {
	for i := 0; i < total; i++ {
		if err := mod.SetVoiceMute(i, false); err != nil {
			logger.Warn("unmute command rejected", slog.Int("voice", i), slog.Any("error", err))
		}
	}
}
