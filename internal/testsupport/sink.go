package testsupport

import (
	"fmt"

	"untracker/internal/sink"
)

// MemorySink records written frames in memory.
type MemorySink struct {
	Channels   int
	Frames     [][]float32
	CloseCalls int

	// ShortWriteAfter, when positive, makes the write that would push the
	// total past this frame count report fewer frames than requested.
	ShortWriteAfter int
	WriteErr        error

	written int
}

var _ sink.Sink = (*MemorySink)(nil)

func (m *MemorySink) Write(interleaved []float32) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	frames := len(interleaved) / m.Channels
	if m.ShortWriteAfter > 0 && m.written+frames > m.ShortWriteAfter {
		short := m.ShortWriteAfter - m.written
		if short < 0 {
			short = 0
		}
		m.written += short
		return short, nil
	}
	block := make([]float32, len(interleaved))
	copy(block, interleaved)
	m.Frames = append(m.Frames, block)
	m.written += frames
	return frames, nil
}

// FramesWritten reports the total frame count accepted so far.
func (m *MemorySink) FramesWritten() int { return m.written }

func (m *MemorySink) Close() error {
	m.CloseCalls++
	return nil
}

// MemoryOpener opens MemorySinks keyed by path.
type MemoryOpener struct {
	Extension string
	Channels  int
	OpenErr   error

	// NextShortWriteAfter is applied to the next opened sink, then cleared.
	NextShortWriteAfter int

	Sinks map[string]*MemorySink
}

var _ sink.Opener = (*MemoryOpener)(nil)

func (o *MemoryOpener) Open(path string, spec sink.Spec) (sink.Sink, error) {
	if o.OpenErr != nil {
		return nil, fmt.Errorf("open %s: %w", path, o.OpenErr)
	}
	channels := o.Channels
	if channels == 0 {
		channels = spec.Channels
	}
	s := &MemorySink{Channels: channels, ShortWriteAfter: o.NextShortWriteAfter}
	o.NextShortWriteAfter = 0
	if o.Sinks == nil {
		o.Sinks = make(map[string]*MemorySink)
	}
	o.Sinks[path] = s
	return s, nil
}

func (o *MemoryOpener) Ext() string {
	if o.Extension == "" {
		return "wav"
	}
	return o.Extension
}
