package main

import (
	"github.com/spf13/cobra"

	"untracker/internal/config"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string

	input            string
	output           string
	sampleRate       int
	channels         int
	resample         string
	format           string
	bitDepth         int
	opusBitrate      int
	vorbisQuality    int
	stereoSeparation int
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "untracker -i <module> -o <directory>",
		Short: "Extract per-instrument stems from tracker modules",
		Long: `untracker renders each instrument or sample of a tracker music module
(MOD, XM, IT, S3M, ...) into its own audio file, as if it played alone.
Silent voices are detected with a cheap pre-render pass and skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")

	rootCmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input module file (required)")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory (required)")
	rootCmd.Flags().IntVar(&flags.sampleRate, "sample-rate", 0, "Output sample rate in Hz (default 44100, opus 48000)")
	rootCmd.Flags().IntVar(&flags.channels, "channels", 0, "Output channels: 1, 2 or 4 (default 2)")
	rootCmd.Flags().StringVar(&flags.resample, "resample", "", "Resampling method: nearest, linear, cubic, sinc (default cubic)")
	rootCmd.Flags().StringVar(&flags.format, "format", "", "Output format: wav, flac, vorbis, opus (default wav)")
	rootCmd.Flags().IntVar(&flags.bitDepth, "bit-depth", 0, "Bit depth for lossless formats: 16 or 24 (default 16)")
	rootCmd.Flags().IntVar(&flags.opusBitrate, "opus-bitrate", 0, "Opus bitrate in kbps, 16-512 (default 128)")
	rootCmd.Flags().IntVar(&flags.vorbisQuality, "vorbis-quality", 0, "Vorbis quality level, 0-10 (default 5)")
	rootCmd.Flags().IntVar(&flags.stereoSeparation, "stereo-separation", 0, "Stereo separation percent, 0-200 (default 100)")

	rootCmd.AddCommand(newVoicesCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newDepsCommand())

	return rootCmd
}

// overridesFrom maps explicitly-set flags to config overrides. Unset flags
// stay nil so file values and defaults apply.
func overridesFrom(cmd *cobra.Command, flags *rootFlags) config.Overrides {
	ov := config.Overrides{}
	set := cmd.Flags().Changed

	if flags.input != "" {
		ov.InputPath = &flags.input
	}
	if flags.output != "" {
		ov.OutputDir = &flags.output
	}
	if set("sample-rate") {
		ov.SampleRate = &flags.sampleRate
	}
	if set("channels") {
		ov.Channels = &flags.channels
	}
	if set("resample") {
		ov.Resample = &flags.resample
	}
	if set("format") {
		ov.Format = &flags.format
	}
	if set("bit-depth") {
		ov.BitDepth = &flags.bitDepth
	}
	if set("opus-bitrate") {
		ov.OpusBitrateKbps = &flags.opusBitrate
	}
	if set("vorbis-quality") {
		ov.VorbisQuality = &flags.vorbisQuality
	}
	if set("stereo-separation") {
		ov.StereoSeparation = &flags.stereoSeparation
	}
	if flags.logLevel != "" {
		ov.LogLevel = &flags.logLevel
	}
	if flags.logFormat != "" {
		ov.LogFormat = &flags.logFormat
	}
	return ov
}
