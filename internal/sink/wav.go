package sink

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

type wavOpener struct{}

func (wavOpener) Ext() string { return "wav" }

func (wavOpener) Open(path string, spec Spec) (Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	enc := wav.NewEncoder(f, spec.SampleRate, spec.BitDepth, spec.Channels, 1)
	return &wavSink{file: f, enc: enc, spec: spec}, nil
}

type wavSink struct {
	file    *os.File
	enc     *wav.Encoder
	spec    Spec
	scratch []int
}

func (s *wavSink) Write(interleaved []float32) (int, error) {
	if cap(s.scratch) < len(interleaved) {
		s.scratch = make([]int, len(interleaved))
	}
	data := s.scratch[:len(interleaved)]
	for i, v := range interleaved {
		data[i] = pcmValue(v, s.spec.BitDepth)
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: s.spec.Channels,
			SampleRate:  s.spec.SampleRate,
		},
		Data:           data,
		SourceBitDepth: s.spec.BitDepth,
	}
	if err := s.enc.Write(buf); err != nil {
		return 0, fmt.Errorf("write wav block: %w", err)
	}
	return len(interleaved) / s.spec.Channels, nil
}

func (s *wavSink) Close() error {
	// Encoder.Close seeks back to patch the RIFF header, so it must run
	// before the file handle goes away.
	if err := s.enc.Close(); err != nil {
		s.file.Close()
		return fmt.Errorf("finalize wav: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}
	return nil
}
