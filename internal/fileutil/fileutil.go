package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SanitizeComponent rewrites name into a safe single path component.
// Characters that are unsafe on common filesystems and spaces become
// underscores. "." and ".." map to "_" so a metadata-supplied name can never
// traverse out of the output directory. An empty input becomes "unknown".
func SanitizeComponent(name string) string {
	if name == "" {
		return "unknown"
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*', ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "." || s == ".." {
		return "_"
	}
	return s
}

// ModuleBaseName returns the file name of path with its extension stripped.
func ModuleBaseName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// StemFileName builds "NNN[-name].ext" for a 1-based stem number. Numbers
// are zero-padded to three digits; values above 999 keep their last three
// digits. An empty display name leaves just the number.
func StemFileName(number int, displayName, ext string) string {
	name := fmt.Sprintf("%03d", number%1000)
	if displayName != "" {
		name += "-" + SanitizeComponent(displayName)
	}
	return name + "." + ext
}

// StemPath derives the output path for one stem, creating the per-module
// subdirectory if needed. Creating an already-existing directory is not an
// error.
func StemPath(outputDir, moduleBase string, number int, displayName, ext string) (string, error) {
	dir := filepath.Join(outputDir, SanitizeComponent(moduleBase))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", dir, err)
	}
	return filepath.Join(dir, StemFileName(number, displayName, ext)), nil
}
