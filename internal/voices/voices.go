package voices

import (
	"log/slog"
	"strings"

	"untracker/internal/engine"
)

// Kind distinguishes what a voice index addresses in the source format.
type Kind int

const (
	KindInstrument Kind = iota
	KindSample
)

func (k Kind) String() string {
	if k == KindInstrument {
		return "instrument"
	}
	return "sample"
}

// Descriptor identifies one isolatable voice. Name may be empty; the output
// namer synthesizes a positional fallback in that case.
type Descriptor struct {
	Index int
	Name  string
	Kind  Kind
}

// legacySampleSlots is the fixed sample table size of ProTracker-family MOD
// files, used when the engine cannot report a real count.
const legacySampleSlots = 31

type resolver struct {
	name  string
	apply func(mod engine.Module, logger *slog.Logger) (count int, kind Kind, names []string, ok bool)
}

var chain = []resolver{
	{"instrument-count", resolveInstruments},
	{"sample-count", resolveSamples},
	{"legacy-mod", resolveLegacyMOD},
	{"channel-count", resolveChannels},
}

// Enumerate produces the ordered voice list for mod. Exactly one resolver
// tier applies; falling past the instrument and sample tiers is logged as a
// degraded condition but never fails.
func Enumerate(mod engine.Module, logger *slog.Logger) []Descriptor {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		count int
		kind  Kind
		names []string
	)
	for _, r := range chain {
		c, k, n, ok := r.apply(mod, logger)
		if !ok {
			continue
		}
		count, kind, names = c, k, n
		if r.name != "instrument-count" && r.name != "sample-count" {
			logger.Warn("voice count resolved by fallback",
				slog.String("tier", r.name),
				slog.Int("count", count))
		}
		break
	}

	descriptors := make([]Descriptor, count)
	for i := range descriptors {
		name := ""
		if i < len(names) {
			name = DecodeName(names[i])
		}
		descriptors[i] = Descriptor{Index: i, Name: name, Kind: kind}
	}
	return descriptors
}

func resolveInstruments(mod engine.Module, logger *slog.Logger) (int, Kind, []string, bool) {
	count := mod.NumInstruments()
	if count <= 0 {
		return 0, 0, nil, false
	}
	names, err := mod.InstrumentNames()
	if err != nil {
		logger.Warn("instrument name list unavailable", slog.Any("error", err))
		names = nil
	}
	return count, KindInstrument, names, true
}

func resolveSamples(mod engine.Module, logger *slog.Logger) (int, Kind, []string, bool) {
	count := mod.NumSamples()
	if count <= 0 {
		return 0, 0, nil, false
	}
	names, err := mod.SampleNames()
	if err != nil {
		logger.Warn("sample name list unavailable", slog.Any("error", err))
		names = nil
	}
	return count, KindSample, names, true
}

func resolveLegacyMOD(mod engine.Module, _ *slog.Logger) (int, Kind, []string, bool) {
	kind := mod.Metadata("type")
	if !strings.Contains(strings.ToLower(kind), "mod") {
		return 0, 0, nil, false
	}
	return legacySampleSlots, KindSample, nil, true
}

func resolveChannels(mod engine.Module, _ *slog.Logger) (int, Kind, []string, bool) {
	return mod.NumChannels(), KindSample, nil, true
}
