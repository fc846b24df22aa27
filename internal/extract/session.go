package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"untracker/internal/config"
	"untracker/internal/engine"
	"untracker/internal/fileutil"
	"untracker/internal/sink"
	"untracker/internal/voices"
)

const lockFileName = ".untracker.lock"

// ErrOutputLocked reports that another run is writing into the same
// per-module output directory.
var ErrOutputLocked = errors.New("output directory locked by another run")

// Session owns one loaded playback engine for the duration of a run.
type Session struct {
	mod    engine.Module
	cfg    config.Config
	opener sink.Opener
	logger *slog.Logger
}

// NewSession prepares an extraction run. The sink opener defaults to the
// one matching cfg.Format; tests inject their own.
func NewSession(mod engine.Module, cfg config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opener, err := sink.ForFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &Session{
		mod:    mod,
		cfg:    cfg,
		opener: opener,
		logger: logger.With(slog.String("run_id", uuid.NewString())),
	}, nil
}

// SetOpener replaces the sink opener, primarily for tests.
func (s *Session) SetOpener(opener sink.Opener) { s.opener = opener }

// Run processes every enumerated voice sequentially and returns one Outcome
// per voice. Only environment-level failures (locking, directory creation)
// are errors; per-stem problems land in the outcomes.
func (s *Session) Run() ([]Outcome, error) {
	s.applyRenderParams()

	list := voices.Enumerate(s.mod, s.logger)
	s.logger.Info("enumerated voices", slog.Int("count", len(list)))
	if len(list) == 0 {
		return nil, nil
	}

	moduleBase := fileutil.ModuleBaseName(s.cfg.InputPath)
	moduleDir := filepath.Join(s.cfg.OutputDir, fileutil.SanitizeComponent(moduleBase))
	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", moduleDir, err)
	}

	lock := flock.New(filepath.Join(moduleDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrOutputLocked, moduleDir)
	}
	defer lock.Unlock()

	total := len(list)
	defer restoreAll(s.mod, total, s.logger)

	layout := s.cfg.ChannelLayout()
	spec := sink.Spec{
		SampleRate:      s.cfg.SampleRate,
		Channels:        layout.Channels(),
		BitDepth:        s.cfg.BitDepth,
		OpusBitrateKbps: s.cfg.OpusBitrateKbps,
		VorbisQuality:   s.cfg.VorbisQuality,
	}
	buf := make([]float32, blockFrames*layout.Channels())

	outcomes := make([]Outcome, 0, total)
	for _, voice := range list {
		outcomes = append(outcomes, s.processVoice(voice, total, moduleBase, layout, spec, buf))
	}
	return outcomes, nil
}

func (s *Session) processVoice(voice voices.Descriptor, total int, moduleBase string, layout config.Layout, spec sink.Spec, buf []float32) Outcome {
	logger := s.logger.With(
		slog.Int("voice", voice.Index),
		slog.String("kind", voice.Kind.String()),
		slog.String("name", voice.Name),
	)
	logger.Info("processing voice")

	isolate(s.mod, voice.Index, total, logger)

	if !audible(s.mod, layout, s.cfg.SampleRate) {
		logger.Info("skipping silent stem")
		return Outcome{Voice: voice, Status: StatusSkippedSilent}
	}

	path, err := fileutil.StemPath(s.cfg.OutputDir, moduleBase, voice.Index+1, voice.Name, s.opener.Ext())
	if err != nil {
		logger.Warn("derive stem path failed", slog.Any("error", err))
		return Outcome{Voice: voice, Status: StatusSkippedWriteError, Reason: err.Error()}
	}

	status, reason := renderStem(s.mod, layout, s.cfg.SampleRate, s.opener, spec, path, buf)
	switch status {
	case StatusWritten:
		logger.Info("extracted stem", slog.String("path", path))
		return Outcome{Voice: voice, Status: status, Path: path}
	default:
		logger.Warn("stem write failed", slog.String("path", path), slog.String("reason", reason))
		return Outcome{Voice: voice, Status: status, Reason: reason}
	}
}

// applyRenderParams pushes the configured quality settings into the engine
// once, before enumeration. Rejections are degraded conditions.
func (s *Session) applyRenderParams() {
	if err := s.mod.SetRenderParam(engine.ParamStereoSeparation, int32(s.cfg.StereoSeparation)); err != nil {
		s.logger.Warn("set stereo separation rejected", slog.Any("error", err))
	}
	if err := s.mod.SetRenderParam(engine.ParamInterpolationLength, s.cfg.InterpolationTaps()); err != nil {
		s.logger.Warn("set interpolation filter rejected", slog.Any("error", err))
	}
}
