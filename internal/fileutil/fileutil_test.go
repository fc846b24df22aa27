package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeComponent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lead Guitar/Solo", "Lead_Guitar_Solo"},
		{"", "unknown"},
		{"..", "_"},
		{".", "_"},
		{`a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"bassline", "bassline"},
		{"...", "..."},
	}
	for _, tc := range cases {
		if got := SanitizeComponent(tc.in); got != tc.want {
			t.Errorf("SanitizeComponent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestModuleBaseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/music/space_debris.mod", "space_debris"},
		{"song.xm", "song"},
		{"noext", "noext"},
		{"dir/archive.tar.it", "archive.tar"},
	}
	for _, tc := range cases {
		if got := ModuleBaseName(tc.in); got != tc.want {
			t.Errorf("ModuleBaseName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStemFileName(t *testing.T) {
	cases := []struct {
		number int
		name   string
		want   string
	}{
		{1, "Bass Drum", "001-Bass_Drum.wav"},
		{42, "", "042.wav"},
		{999, "hat", "999-hat.wav"},
		{1000, "over", "000-over.wav"},
		{1234, "", "234.wav"},
	}
	for _, tc := range cases {
		if got := StemFileName(tc.number, tc.name, "wav"); got != tc.want {
			t.Errorf("StemFileName(%d, %q) = %q, want %q", tc.number, tc.name, got, tc.want)
		}
	}
}

func TestStemPathCreatesDirectoryIdempotently(t *testing.T) {
	out := t.TempDir()

	first, err := StemPath(out, "my song", 1, "lead", "flac")
	if err != nil {
		t.Fatalf("StemPath: %v", err)
	}
	// Second derivation into the existing directory must not error.
	second, err := StemPath(out, "my song", 2, "", "flac")
	if err != nil {
		t.Fatalf("StemPath (existing dir): %v", err)
	}

	dir := filepath.Join(out, "my_song")
	if filepath.Dir(first) != dir || filepath.Dir(second) != dir {
		t.Fatalf("unexpected stem dirs %q, %q", first, second)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected module dir at %q, err=%v", dir, err)
	}
	if filepath.Base(second) != "002.flac" {
		t.Fatalf("unexpected unnamed stem file %q", filepath.Base(second))
	}
}
