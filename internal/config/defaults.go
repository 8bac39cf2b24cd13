package config

const (
	defaultLogDir         = "~/.local/share/clipbatch/logs"
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFprobeBinary  = "ffprobe"
	defaultAudioCodec     = "aac"
	defaultBackupDir      = "backup"
	defaultSoundDir       = "sound"
	defaultLanguage       = "en"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultLogMaxSizeMB   = 10
	defaultLogMaxBackups  = 3
	defaultLogMaxAgeDays  = 30
	defaultSkipMarker     = "WIP"
	defaultAudioExtension = ".wav"
	defaultVideoExtension = ".mp4"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		FFmpeg: FFmpeg{
			Binary:      defaultFFmpegBinary,
			ProbeBinary: defaultFFprobeBinary,
			AudioCodec:  defaultAudioCodec,
		},
		Scan: Scan{
			AudioExtensions: []string{defaultAudioExtension},
			VideoExtensions: []string{defaultVideoExtension},
			SkipMarkers:     []string{defaultSkipMarker},
		},
		Layout: Layout{
			BackupDir:       defaultBackupDir,
			SoundDir:        defaultSoundDir,
			DefaultLanguage: defaultLanguage,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
