package sink

import "fmt"

// Spec describes the stream an opened sink accepts.
type Spec struct {
	SampleRate int
	Channels   int
	// BitDepth applies to lossless formats (16 or 24).
	BitDepth int
	// OpusBitrateKbps applies to the opus opener only.
	OpusBitrateKbps int
	// VorbisQuality applies to the vorbis opener only (0-10).
	VorbisQuality int
}

// Sink is a streaming audio file target for exactly one stem.
type Sink interface {
	// Write consumes interleaved float frames in [-1, 1] and returns the
	// number of frames written. A short count signals a write failure.
	Write(interleaved []float32) (int, error)
	// Close finalizes the file. It must be called exactly once.
	Close() error
}

// Opener creates sinks for one output format.
type Opener interface {
	Open(path string, spec Spec) (Sink, error)
	// Ext is the format's canonical file extension, without the dot.
	Ext() string
}

// ForFormat selects the opener for a configured output format.
func ForFormat(format string) (Opener, error) {
	switch format {
	case "wav":
		return wavOpener{}, nil
	case "flac":
		return flacOpener{}, nil
	case "opus":
		return opusOpener{}, nil
	case "vorbis":
		return vorbisOpener{}, nil
	}
	return nil, fmt.Errorf("sink: unsupported output format %q", format)
}

// pcmValue clamps a float sample and scales it to a signed integer of the
// given bit depth.
func pcmValue(sample float32, bitDepth int) int {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	scale := float64(int32(1)<<(bitDepth-1) - 1)
	return int(float64(sample) * scale)
}
