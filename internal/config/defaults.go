package config

const (
	defaultSampleRate       = 44100
	defaultOpusSampleRate   = 48000
	defaultChannels         = 2
	defaultResample         = "cubic"
	defaultFormat           = "wav"
	defaultBitDepth         = 16
	defaultOpusBitrateKbps  = 128
	defaultVorbisQuality    = 5
	defaultStereoSeparation = 100
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SampleRate:       defaultSampleRate,
		Channels:         defaultChannels,
		Resample:         defaultResample,
		Format:           defaultFormat,
		BitDepth:         defaultBitDepth,
		OpusBitrateKbps:  defaultOpusBitrateKbps,
		VorbisQuality:    defaultVorbisQuality,
		StereoSeparation: defaultStereoSeparation,
		LogLevel:         defaultLogLevel,
		LogFormat:        defaultLogFormat,
	}
}
