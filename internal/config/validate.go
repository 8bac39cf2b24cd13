package config

import (
	"fmt"
	"strings"
)

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.FFmpeg.Binary == "" {
		return fmt.Errorf("ffmpeg.binary must not be empty")
	}
	if c.FFmpeg.ProbeBinary == "" {
		return fmt.Errorf("ffmpeg.probe_binary must not be empty")
	}
	if c.FFmpeg.AudioCodec == "" {
		return fmt.Errorf("ffmpeg.audio_codec must not be empty")
	}
	if len(c.Scan.AudioExtensions) == 0 {
		return fmt.Errorf("scan.audio_extensions must list at least one extension")
	}
	if len(c.Scan.VideoExtensions) == 0 {
		return fmt.Errorf("scan.video_extensions must list at least one extension")
	}
	if err := validateDirName("layout.backup_dir", c.Layout.BackupDir); err != nil {
		return err
	}
	if err := validateDirName("layout.sound_dir", c.Layout.SoundDir); err != nil {
		return err
	}
	if err := validateLanguage(c.Layout.DefaultLanguage); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func validateDirName(key, name string) error {
	if name == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%s must be a bare folder name, got %q", key, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%s must be a bare folder name, got %q", key, name)
	}
	return nil
}

func validateLanguage(code string) error {
	if len(code) < 2 {
		return fmt.Errorf("layout.default_language must be a language code of two or more letters, got %q", code)
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("layout.default_language must contain lowercase letters only, got %q", code)
		}
	}
	return nil
}
