package extract

import "untracker/internal/voices"

// Status classifies how one voice was handled.
type Status int

const (
	StatusWritten Status = iota
	StatusSkippedSilent
	StatusSkippedWriteError
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkippedSilent:
		return "skipped (silent)"
	case StatusSkippedWriteError:
		return "skipped (write error)"
	}
	return "unknown"
}

// Outcome records the result of processing one voice. The caller consumes
// outcomes for the run summary; they are not persisted.
type Outcome struct {
	Voice  voices.Descriptor
	Status Status
	// Path is set for written stems.
	Path string
	// Reason carries the write-error detail for skipped stems.
	Reason string
}
