package engine

import "errors"

// RenderParam identifies a tunable renderer parameter.
type RenderParam int

const (
	// ParamStereoSeparation is the stereo separation strength in percent
	// (0-200). Zero collapses output to mono.
	ParamStereoSeparation RenderParam = iota
	// ParamInterpolationLength is the resampling filter length in taps:
	// 1 (nearest), 2 (linear), 4 (cubic), 8 (sinc).
	ParamInterpolationLength
)

// ErrMuteUnsupported reports that the loaded format cannot mute the
// requested voice. Extraction tolerates it and continues best-effort.
var ErrMuteUnsupported = errors.New("per-voice muting not supported")

// Module is a loaded tracker module ready for playback.
//
// A Module is not safe for concurrent use; one extraction session owns it
// exclusively for its entire lifetime.
type Module interface {
	// NumInstruments reports the instrument count, zero for sample-based
	// formats.
	NumInstruments() int
	// NumSamples reports the sample count.
	NumSamples() int
	// NumChannels reports the pattern channel count.
	NumChannels() int
	// Metadata returns free-form format metadata for a key such as "type"
	// or "title", empty when absent.
	Metadata(key string) string

	// InstrumentNames returns the ordered instrument name list. Formats
	// without instrument metadata may return an error.
	InstrumentNames() ([]string, error)
	// SampleNames returns the ordered sample name list. Formats without
	// sample metadata may return an error.
	SampleNames() ([]string, error)

	// RenderParam reads the current value of a render parameter.
	RenderParam(param RenderParam) (int32, error)
	// SetRenderParam updates a render parameter for subsequent reads.
	SetRenderParam(param RenderParam, value int32) error

	// PositionSeconds reports the current playback position.
	PositionSeconds() float64
	// SetPositionSeconds seeks and returns the effective new position.
	SetPositionSeconds(seconds float64) float64
	// DurationSeconds reports the total module duration.
	DurationSeconds() float64

	// SetVoiceMute sets the mute flag for one voice. A failure applies to
	// that voice only; the engine stays usable.
	SetVoiceMute(index int, muted bool) error

	// ReadMono renders up to len(buf) mono frames at sampleRate and
	// returns the frames produced; 0 signals end of stream.
	ReadMono(sampleRate int, buf []float32) int
	// ReadStereo renders interleaved stereo frames (len(buf)/2 frames).
	ReadStereo(sampleRate int, buf []float32) int
	// ReadQuad renders interleaved quad frames (len(buf)/4 frames).
	ReadQuad(sampleRate int, buf []float32) int

	// Close releases the engine. The Module must not be used afterwards.
	Close() error
}
