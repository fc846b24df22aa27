package testsupport

import (
	"fmt"

	"untracker/internal/engine"
)

// FakeModule is a scripted engine.Module for tests. Voices with a nonzero
// amplitude produce that constant sample value while unmuted; everything
// else renders as silence. Reads advance the playback position at the
// requested rate until Duration is reached.
type FakeModule struct {
	InstrumentCount int
	SampleCount     int
	ChannelCount    int
	TypeMetadata    string

	InstrumentNameList []string
	SampleNameList     []string
	InstrumentNamesErr error
	SampleNamesErr     error

	// Amplitudes maps voice index to the constant sample value it emits.
	Amplitudes map[int]float32
	// MuteFailures lists voice indexes whose mute commands are rejected.
	MuteFailures map[int]bool
	// Duration is the module length in seconds (default 2).
	Duration float64

	muted    map[int]bool
	position float64
	params   map[engine.RenderParam]int32

	// MuteCommands counts every accepted SetVoiceMute call.
	MuteCommands int
}

var _ engine.Module = (*FakeModule)(nil)

func (f *FakeModule) init() {
	if f.muted == nil {
		f.muted = make(map[int]bool)
	}
	if f.params == nil {
		f.params = map[engine.RenderParam]int32{
			engine.ParamStereoSeparation:    100,
			engine.ParamInterpolationLength: 8,
		}
	}
	if f.Duration == 0 {
		f.Duration = 2
	}
}

func (f *FakeModule) NumInstruments() int { return f.InstrumentCount }
func (f *FakeModule) NumSamples() int     { return f.SampleCount }
func (f *FakeModule) NumChannels() int    { return f.ChannelCount }

func (f *FakeModule) Metadata(key string) string {
	if key == "type" {
		return f.TypeMetadata
	}
	return ""
}

func (f *FakeModule) InstrumentNames() ([]string, error) {
	if f.InstrumentNamesErr != nil {
		return nil, f.InstrumentNamesErr
	}
	return f.InstrumentNameList, nil
}

func (f *FakeModule) SampleNames() ([]string, error) {
	if f.SampleNamesErr != nil {
		return nil, f.SampleNamesErr
	}
	return f.SampleNameList, nil
}

func (f *FakeModule) RenderParam(param engine.RenderParam) (int32, error) {
	f.init()
	return f.params[param], nil
}

func (f *FakeModule) SetRenderParam(param engine.RenderParam, value int32) error {
	f.init()
	f.params[param] = value
	return nil
}

func (f *FakeModule) PositionSeconds() float64 { return f.position }

func (f *FakeModule) SetPositionSeconds(seconds float64) float64 {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > f.Duration {
		seconds = f.Duration
	}
	f.position = seconds
	return f.position
}

func (f *FakeModule) DurationSeconds() float64 {
	f.init()
	return f.Duration
}

func (f *FakeModule) SetVoiceMute(index int, muted bool) error {
	f.init()
	if f.MuteFailures[index] {
		return fmt.Errorf("fake voice %d: %w", index, engine.ErrMuteUnsupported)
	}
	f.muted[index] = muted
	f.MuteCommands++
	return nil
}

// Muted reports the current mute flag for a voice.
func (f *FakeModule) Muted(index int) bool {
	f.init()
	return f.muted[index]
}

// currentValue is the sample value produced by the unmuted voices.
func (f *FakeModule) currentValue() float32 {
	var sum float32
	for voice, amp := range f.Amplitudes {
		if !f.muted[voice] {
			sum += amp
		}
	}
	return sum
}

func (f *FakeModule) read(sampleRate int, buf []float32, channels int) int {
	f.init()
	if sampleRate <= 0 || len(buf) < channels {
		return 0
	}
	frames := len(buf) / channels
	remaining := int((f.Duration - f.position) * float64(sampleRate))
	if remaining <= 0 {
		return 0
	}
	if frames > remaining {
		frames = remaining
	}
	value := f.currentValue()
	for i := 0; i < frames*channels; i++ {
		buf[i] = value
	}
	f.position += float64(frames) / float64(sampleRate)
	return frames
}

func (f *FakeModule) ReadMono(sampleRate int, buf []float32) int {
	return f.read(sampleRate, buf, 1)
}

func (f *FakeModule) ReadStereo(sampleRate int, buf []float32) int {
	return f.read(sampleRate, buf, 2)
}

func (f *FakeModule) ReadQuad(sampleRate int, buf []float32) int {
	return f.read(sampleRate, buf, 4)
}

func (f *FakeModule) Close() error { return nil }
