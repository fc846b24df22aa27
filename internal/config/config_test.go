package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(emptyConfigPath(t), Overrides{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Channels != 2 || cfg.ChannelLayout() != LayoutStereo {
		t.Errorf("unexpected layout %v (channels %d)", cfg.ChannelLayout(), cfg.Channels)
	}
	if cfg.Format != "wav" || cfg.BitDepth != 16 {
		t.Errorf("unexpected format %q/%d", cfg.Format, cfg.BitDepth)
	}
	if cfg.Resample != "cubic" || cfg.InterpolationTaps() != 4 {
		t.Errorf("unexpected resample %q (%d taps)", cfg.Resample, cfg.InterpolationTaps())
	}
}

func TestResolveOpusDefaultsTo48k(t *testing.T) {
	cfg, err := Resolve(emptyConfigPath(t), Overrides{Format: strPtr("opus")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.SampleRate != 48000 {
		t.Fatalf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
}

func TestResolveOpusExplicitRateKept(t *testing.T) {
	cfg, err := Resolve(emptyConfigPath(t), Overrides{
		Format:     strPtr("opus"),
		SampleRate: intPtr(24000),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.SampleRate != 24000 {
		t.Fatalf("SampleRate = %d, want 24000", cfg.SampleRate)
	}
}

func TestResolveOpusRejectsUnsupportedRate(t *testing.T) {
	_, err := Resolve(emptyConfigPath(t), Overrides{
		Format:     strPtr("opus"),
		SampleRate: intPtr(44100),
	})
	if err == nil {
		t.Fatal("expected error for opus at 44100 Hz")
	}
}

func TestResolveZeroSeparationForcesMono(t *testing.T) {
	cfg, err := Resolve(emptyConfigPath(t), Overrides{
		Channels:         intPtr(4),
		StereoSeparation: intPtr(0),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ChannelLayout() != LayoutMono {
		t.Fatalf("layout = %v, want mono", cfg.ChannelLayout())
	}
}

func TestResolveOggAlias(t *testing.T) {
	cfg, err := Resolve(emptyConfigPath(t), Overrides{Format: strPtr("ogg")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Format != "vorbis" {
		t.Fatalf("Format = %q, want vorbis", cfg.Format)
	}
}

func TestResolveEightTapAlias(t *testing.T) {
	cfg, err := Resolve(emptyConfigPath(t), Overrides{Resample: strPtr("8tap")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Resample != "sinc" {
		t.Fatalf("Resample = %q, want sinc", cfg.Resample)
	}
	if taps := cfg.InterpolationTaps(); taps != 8 {
		t.Fatalf("InterpolationTaps = %d, want 8", taps)
	}
}

func TestResolveValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		ov   Overrides
		want string
	}{
		{"channels", Overrides{Channels: intPtr(3)}, "channels"},
		{"bit depth", Overrides{BitDepth: intPtr(32)}, "bit_depth"},
		{"opus bitrate", Overrides{OpusBitrateKbps: intPtr(700)}, "opus_bitrate"},
		{"vorbis quality", Overrides{VorbisQuality: intPtr(11)}, "vorbis_quality"},
		{"separation", Overrides{StereoSeparation: intPtr(300)}, "stereo_separation"},
		{"resample", Overrides{Resample: strPtr("ideal")}, "resample"},
		{"format", Overrides{Format: strPtr("mp3")}, "format"},
		{"sample rate", Overrides{SampleRate: intPtr(0)}, "sample_rate"},
		{"opus quad", Overrides{Format: strPtr("opus"), Channels: intPtr(4)}, "opus"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(emptyConfigPath(t), tc.ov)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestResolveReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "format = \"flac\"\nbit_depth = 24\nsample_rate = 96000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path, Overrides{BitDepth: intPtr(16)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Format != "flac" || cfg.SampleRate != 96000 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.BitDepth != 16 {
		t.Errorf("flag override lost, BitDepth = %d", cfg.BitDepth)
	}
}

func TestResolveMissingExplicitFileFails(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"), Overrides{})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidateRunRequiresPaths(t *testing.T) {
	cfg := Default()
	if err := cfg.ValidateRun(); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage without input path, got %v", err)
	}
	cfg.InputPath = "song.mod"
	if err := cfg.ValidateRun(); err == nil {
		t.Fatal("expected error without output dir")
	}
	cfg.OutputDir = "out"
	if err := cfg.ValidateRun(); err != nil {
		t.Fatalf("ValidateRun: %v", err)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, err := Resolve(path, Overrides{})
	if err != nil {
		t.Fatalf("Resolve sample: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}

// emptyConfigPath returns an explicit, empty config file so tests never
// read a developer's real config.
func emptyConfigPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
