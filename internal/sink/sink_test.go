package sink

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"
)

func TestForFormat(t *testing.T) {
	cases := []struct {
		format string
		ext    string
	}{
		{"wav", "wav"},
		{"flac", "flac"},
		{"opus", "opus"},
		{"vorbis", "ogg"},
	}
	for _, tc := range cases {
		opener, err := ForFormat(tc.format)
		if err != nil {
			t.Fatalf("ForFormat(%q): %v", tc.format, err)
		}
		if opener.Ext() != tc.ext {
			t.Errorf("ForFormat(%q).Ext() = %q, want %q", tc.format, opener.Ext(), tc.ext)
		}
	}
	if _, err := ForFormat("mp3"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPCMValueClampsAndScales(t *testing.T) {
	cases := []struct {
		in    float32
		depth int
		want  int
	}{
		{0, 16, 0},
		{1, 16, 32767},
		{-1, 16, -32767},
		{2, 16, 32767},
		{-3, 16, -32767},
		{1, 24, 8388607},
		{0.5, 16, 16383},
	}
	for _, tc := range cases {
		if got := pcmValue(tc.in, tc.depth); got != tc.want {
			t.Errorf("pcmValue(%f, %d) = %d, want %d", tc.in, tc.depth, got, tc.want)
		}
	}
}

func TestWavSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stem.wav")
	spec := Spec{SampleRate: 44100, Channels: 2, BitDepth: 16}

	out, err := (wavOpener{}).Open(path, spec)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	block := make([]float32, 2048*2)
	for i := range block {
		block[i] = 0.25
	}
	frames, err := out.Write(block)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if frames != 2048 {
		t.Fatalf("frames written = %d, want 2048", frames)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.NumChans != 2 || dec.SampleRate != 44100 || dec.BitDepth != 16 {
		t.Fatalf("unexpected stream params: %d ch, %d Hz, %d bit", dec.NumChans, dec.SampleRate, dec.BitDepth)
	}
	if got := len(buf.Data) / 2; got != 2048 {
		t.Fatalf("decoded %d frames, want 2048", got)
	}
	// 0.25 at 16 bit is 8191 (floor of 0.25 * 32767).
	if buf.Data[0] != 8191 {
		t.Fatalf("decoded sample = %d, want 8191", buf.Data[0])
	}
}

func TestFlacSinkProducesDecodableStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stem.flac")
	spec := Spec{SampleRate: 48000, Channels: 2, BitDepth: 16}

	out, err := (flacOpener{}).Open(path, spec)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	block := make([]float32, 6000*2)
	for i := range block {
		block[i] = -0.5
	}
	if _, err := out.Write(block); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	stream, err := flac.ParseFile(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer stream.Close()
	if stream.Info.SampleRate != 48000 || stream.Info.NChannels != 2 {
		t.Fatalf("unexpected stream info: %d Hz, %d ch", stream.Info.SampleRate, stream.Info.NChannels)
	}
	frame, err := stream.ParseNext()
	if err != nil {
		t.Fatalf("parse first frame: %v", err)
	}
	if len(frame.Subframes) != 2 {
		t.Fatalf("got %d subframes, want 2", len(frame.Subframes))
	}
}

func TestFlacOpenerRejectsOddChannelCounts(t *testing.T) {
	_, err := (flacOpener{}).Open(filepath.Join(t.TempDir(), "x.flac"), Spec{SampleRate: 44100, Channels: 3, BitDepth: 16})
	if err == nil {
		t.Fatal("expected error for 3-channel flac")
	}
}

func TestVorbisSinkViaFFmpeg(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	path := filepath.Join(t.TempDir(), "stem.ogg")
	spec := Spec{SampleRate: 44100, Channels: 2, VorbisQuality: 3}

	out, err := (vorbisOpener{}).Open(path, spec)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	block := make([]float32, 44100*2)
	for i := range block {
		block[i] = 0.1
	}
	if _, err := out.Write(block); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("ffmpeg produced an empty file")
	}
}

func TestOpusSinkWritesOggStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stem.opus")
	spec := Spec{SampleRate: 48000, Channels: 2, OpusBitrateKbps: 96}

	out, err := (opusOpener{}).Open(path, spec)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// One full packet plus a partial tail that Close must pad and flush.
	block := make([]float32, 1100*2)
	for i := range block {
		block[i] = 0.2
	}
	if _, err := out.Write(block); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || string(data[:4]) != "OggS" {
		t.Fatalf("output does not start with an Ogg page header")
	}
}
