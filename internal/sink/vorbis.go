package sink

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// FFmpegBinary is the binary name used for vorbis encoding. Variable so
// tests and callers can point at an explicit path.
var FFmpegBinary = "ffmpeg"

type vorbisOpener struct{}

func (vorbisOpener) Ext() string { return "ogg" }

// Open starts an ffmpeg process reading raw little-endian float frames on
// stdin and writing an Ogg Vorbis file. There is no pure-Go vorbis encoder,
// so the external binary stands in for one.
func (vorbisOpener) Open(path string, spec Spec) (Sink, error) {
	bin, err := exec.LookPath(FFmpegBinary)
	if err != nil {
		return nil, fmt.Errorf("vorbis encoding requires ffmpeg on PATH: %w", err)
	}
	cmd := exec.Command(bin, //nolint:gosec
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "f32le",
		"-ar", strconv.Itoa(spec.SampleRate),
		"-ac", strconv.Itoa(spec.Channels),
		"-i", "pipe:0",
		"-c:a", "libvorbis",
		"-q:a", strconv.Itoa(spec.VorbisQuality),
		path,
	)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdin: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	return &vorbisSink{cmd: cmd, stdin: stdin, stderr: &stderr, spec: spec}, nil
}

type vorbisSink struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stderr  *bytes.Buffer
	spec    Spec
	scratch []byte
}

func (s *vorbisSink) Write(interleaved []float32) (int, error) {
	size := len(interleaved) * 4
	if cap(s.scratch) < size {
		s.scratch = make([]byte, size)
	}
	buf := s.scratch[:size]
	for i, v := range interleaved {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	if _, err := s.stdin.Write(buf); err != nil {
		return 0, fmt.Errorf("pipe to ffmpeg: %w", err)
	}
	return len(interleaved) / s.spec.Channels, nil
}

func (s *vorbisSink) Close() error {
	closeErr := s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		detail := strings.TrimSpace(s.stderr.String())
		if detail != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, detail)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("close ffmpeg stdin: %w", closeErr)
	}
	return nil
}
