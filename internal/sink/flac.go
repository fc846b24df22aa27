package sink

import (
	"fmt"
	"os"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// flacBlockFrames bounds the frames encoded per FLAC frame. Incoming blocks
// larger than this are split.
const flacBlockFrames = 4096

type flacOpener struct{}

func (flacOpener) Ext() string { return "flac" }

func (flacOpener) Open(path string, spec Spec) (Sink, error) {
	channels, err := flacChannels(spec.Channels)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  flacBlockFrames,
		SampleRate:    uint32(spec.SampleRate),
		NChannels:     uint8(spec.Channels),
		BitsPerSample: uint8(spec.BitDepth),
	}
	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("flac encoder: %w", err)
	}
	return &flacSink{file: f, enc: enc, spec: spec, channels: channels}, nil
}

func flacChannels(count int) (frame.Channels, error) {
	switch count {
	case 1:
		return frame.ChannelsMono, nil
	case 2:
		return frame.ChannelsLR, nil
	case 4:
		return frame.ChannelsLRLsRs, nil
	}
	return 0, fmt.Errorf("flac: unsupported channel count %d", count)
}

type flacSink struct {
	file      *os.File
	enc       *flac.Encoder
	spec      Spec
	channels  frame.Channels
	sampleNum uint64
}

func (s *flacSink) Write(interleaved []float32) (int, error) {
	total := len(interleaved) / s.spec.Channels
	for offset := 0; offset < total; offset += flacBlockFrames {
		frames := total - offset
		if frames > flacBlockFrames {
			frames = flacBlockFrames
		}
		block := interleaved[offset*s.spec.Channels : (offset+frames)*s.spec.Channels]
		if err := s.writeFrame(block, frames); err != nil {
			return offset, err
		}
	}
	return total, nil
}

func (s *flacSink) writeFrame(interleaved []float32, frames int) error {
	subframes := make([]*frame.Subframe, s.spec.Channels)
	for ch := range subframes {
		samples := make([]int32, frames)
		for i := 0; i < frames; i++ {
			samples[i] = int32(pcmValue(interleaved[i*s.spec.Channels+ch], s.spec.BitDepth))
		}
		subframes[ch] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   samples,
			NSamples:  frames,
		}
	}
	fr := &frame.Frame{
		Header: frame.Header{
			BlockSize:     uint16(frames),
			SampleRate:    uint32(s.spec.SampleRate),
			Channels:      s.channels,
			BitsPerSample: uint8(s.spec.BitDepth),
			Num:           s.sampleNum,
		},
		Subframes: subframes,
	}
	if err := s.enc.WriteFrame(fr); err != nil {
		return fmt.Errorf("write flac frame: %w", err)
	}
	s.sampleNum += uint64(frames)
	return nil
}

func (s *flacSink) Close() error {
	if err := s.enc.Close(); err != nil {
		s.file.Close()
		return fmt.Errorf("finalize flac: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close flac: %w", err)
	}
	return nil
}
