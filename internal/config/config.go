package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config holds every rendering and output parameter for one extraction run.
type Config struct {
	// InputPath and OutputDir come from the CLI only.
	InputPath string `toml:"-"`
	OutputDir string `toml:"-"`

	SampleRate       int    `toml:"sample_rate"`
	Channels         int    `toml:"channels"`
	Resample         string `toml:"resample"`
	Format           string `toml:"format"`
	BitDepth         int    `toml:"bit_depth"`
	OpusBitrateKbps  int    `toml:"opus_bitrate"`
	VorbisQuality    int    `toml:"vorbis_quality"`
	StereoSeparation int    `toml:"stereo_separation"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Layout is the output channel layout; its value is the channel count.
type Layout int

const (
	LayoutMono   Layout = 1
	LayoutStereo Layout = 2
	LayoutQuad   Layout = 4
)

func (l Layout) Channels() int { return int(l) }

func (l Layout) String() string {
	switch l {
	case LayoutMono:
		return "mono"
	case LayoutStereo:
		return "stereo"
	case LayoutQuad:
		return "quad"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ChannelLayout returns the resolved layout. Resolve has already collapsed
// zero stereo separation to mono, so this is a plain mapping.
func (c Config) ChannelLayout() Layout {
	return Layout(c.Channels)
}

// InterpolationTaps maps the resample method to the engine filter length.
func (c Config) InterpolationTaps() int32 {
	switch c.Resample {
	case "nearest":
		return 1
	case "linear":
		return 2
	case "cubic":
		return 4
	default: // sinc
		return 8
	}
}

// Overrides carries explicitly-set command-line values. Nil fields keep the
// file or default value. Tracking explicitness matters for the opus sample
// rate rule.
type Overrides struct {
	InputPath        *string
	OutputDir        *string
	SampleRate       *int
	Channels         *int
	Resample         *string
	Format           *string
	BitDepth         *int
	OpusBitrateKbps  *int
	VorbisQuality    *int
	StereoSeparation *int
	LogLevel         *string
	LogFormat        *string
}

// Resolve builds the final configuration from defaults, the optional TOML
// file at path (empty means the default location, a missing file is fine),
// and CLI overrides, then normalizes and validates it.
func Resolve(path string, ov Overrides) (Config, error) {
	cfg := Default()

	filePath, explicit := path, path != ""
	if !explicit {
		def, err := DefaultConfigPath()
		if err == nil {
			filePath = def
		}
	}
	if filePath != "" {
		if err := loadFile(filePath, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	apply(&cfg, ov)

	// Opus output defaults to 48 kHz unless the user picked a rate
	// themselves; libopus does not accept 44100.
	if cfg.Format == "opus" && ov.SampleRate == nil && cfg.SampleRate == defaultSampleRate {
		cfg.SampleRate = defaultOpusSampleRate
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func apply(cfg *Config, ov Overrides) {
	if ov.InputPath != nil {
		cfg.InputPath = *ov.InputPath
	}
	if ov.OutputDir != nil {
		cfg.OutputDir = *ov.OutputDir
	}
	if ov.SampleRate != nil {
		cfg.SampleRate = *ov.SampleRate
	}
	if ov.Channels != nil {
		cfg.Channels = *ov.Channels
	}
	if ov.Resample != nil {
		cfg.Resample = *ov.Resample
	}
	if ov.Format != nil {
		cfg.Format = *ov.Format
	}
	if ov.BitDepth != nil {
		cfg.BitDepth = *ov.BitDepth
	}
	if ov.OpusBitrateKbps != nil {
		cfg.OpusBitrateKbps = *ov.OpusBitrateKbps
	}
	if ov.VorbisQuality != nil {
		cfg.VorbisQuality = *ov.VorbisQuality
	}
	if ov.StereoSeparation != nil {
		cfg.StereoSeparation = *ov.StereoSeparation
	}
	if ov.LogLevel != nil {
		cfg.LogLevel = *ov.LogLevel
	}
	if ov.LogFormat != nil {
		cfg.LogFormat = *ov.LogFormat
	}
}

// DefaultConfigPath returns ~/.config/untracker/config.toml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "untracker", "config.toml"), nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}
