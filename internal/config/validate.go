package config

import (
	"errors"
	"fmt"
)

// ErrUsage marks configuration and CLI input problems. The command layer
// prints a usage hint when an error carries this marker.
var ErrUsage = errors.New("invalid configuration")

var validOpusRates = map[int]bool{8000: true, 12000: true, 16000: true, 24000: true, 48000: true}

// Validate ensures the configuration is usable. Violations are fatal.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrUsage, c.SampleRate)
	}
	switch Layout(c.Channels) {
	case LayoutMono, LayoutStereo, LayoutQuad:
	default:
		return fmt.Errorf("%w: channels must be 1, 2 or 4, got %d", ErrUsage, c.Channels)
	}
	switch c.Resample {
	case "nearest", "linear", "cubic", "sinc":
	default:
		return fmt.Errorf("%w: resample must be one of nearest, linear, cubic, sinc, got %q", ErrUsage, c.Resample)
	}
	switch c.Format {
	case "wav", "flac", "vorbis", "opus":
	default:
		return fmt.Errorf("%w: format must be one of wav, flac, vorbis, opus, got %q", ErrUsage, c.Format)
	}
	if c.BitDepth != 16 && c.BitDepth != 24 {
		return fmt.Errorf("%w: bit_depth must be 16 or 24, got %d", ErrUsage, c.BitDepth)
	}
	if c.OpusBitrateKbps < 16 || c.OpusBitrateKbps > 512 {
		return fmt.Errorf("%w: opus_bitrate must be within [16, 512], got %d", ErrUsage, c.OpusBitrateKbps)
	}
	if c.VorbisQuality < 0 || c.VorbisQuality > 10 {
		return fmt.Errorf("%w: vorbis_quality must be within [0, 10], got %d", ErrUsage, c.VorbisQuality)
	}
	if c.StereoSeparation < 0 || c.StereoSeparation > 200 {
		return fmt.Errorf("%w: stereo_separation must be within [0, 200], got %d", ErrUsage, c.StereoSeparation)
	}
	if c.Format == "opus" {
		if !validOpusRates[c.SampleRate] {
			return fmt.Errorf("%w: opus supports sample rates 8000, 12000, 16000, 24000, 48000, got %d", ErrUsage, c.SampleRate)
		}
		if Layout(c.Channels) == LayoutQuad {
			return fmt.Errorf("%w: opus output supports 1 or 2 channels", ErrUsage)
		}
	}
	return nil
}

// ValidateRun additionally checks the per-run inputs from the CLI.
func (c *Config) ValidateRun() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input module path is required (-i)", ErrUsage)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required (-o)", ErrUsage)
	}
	return c.Validate()
}
