package extract

import (
	"io"
	"log/slog"
	"testing"

	"untracker/internal/testsupport"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsolateMutesAllButTarget(t *testing.T) {
	mod := &testsupport.FakeModule{InstrumentCount: 4}

	isolate(mod, 2, 4, discardLogger())

	for i := 0; i < 4; i++ {
		want := i != 2
		if mod.Muted(i) != want {
			t.Errorf("voice %d muted = %v, want %v", i, mod.Muted(i), want)
		}
	}
}

func TestIsolateToleratesRejectedCommands(t *testing.T) {
	mod := &testsupport.FakeModule{
		InstrumentCount: 3,
		MuteFailures:    map[int]bool{1: true},
	}

	// Must not panic or stop early; remaining voices still get muted.
	isolate(mod, 0, 3, discardLogger())

	if mod.Muted(0) {
		t.Error("target voice should be unmuted")
	}
	if !mod.Muted(2) {
		t.Error("voice 2 should be muted despite voice 1 rejection")
	}
}

func TestRestoreAllUnmutesEveryVoice(t *testing.T) {
	mod := &testsupport.FakeModule{InstrumentCount: 5}
	isolate(mod, 0, 5, discardLogger())

	restoreAll(mod, 5, discardLogger())

	for i := 0; i < 5; i++ {
		if mod.Muted(i) {
			t.Errorf("voice %d still muted after restoreAll", i)
		}
	}
}
