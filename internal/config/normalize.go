package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.Resample = strings.ToLower(strings.TrimSpace(c.Resample))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	// Accept the container name as an alias for the codec.
	if c.Format == "ogg" {
		c.Format = "vorbis"
	}

	// 8tap is the filter-length name for the sinc resampler.
	if c.Resample == "8tap" {
		c.Resample = "sinc"
	}

	// Zero separation means there is no stereo image left to keep.
	if c.StereoSeparation == 0 {
		c.Channels = int(LayoutMono)
	}

	var err error
	if c.InputPath != "" {
		if c.InputPath, err = ExpandPath(c.InputPath); err != nil {
			return fmt.Errorf("input path: %w", err)
		}
	}
	if c.OutputDir != "" {
		if c.OutputDir, err = ExpandPath(c.OutputDir); err != nil {
			return fmt.Errorf("output directory: %w", err)
		}
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory and cleans
// the result.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
