package config

import "strings"

func (c *Config) normalize() error {
	var err error
	if c.Paths.WorkDir = strings.TrimSpace(c.Paths.WorkDir); c.Paths.WorkDir != "" {
		if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
			return err
		}
	}
	if c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir); c.Paths.LogDir != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return err
		}
	}

	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	c.FFmpeg.ProbeBinary = strings.TrimSpace(c.FFmpeg.ProbeBinary)
	c.FFmpeg.AudioCodec = strings.ToLower(strings.TrimSpace(c.FFmpeg.AudioCodec))

	c.Scan.AudioExtensions = normalizeExtensions(c.Scan.AudioExtensions)
	c.Scan.VideoExtensions = normalizeExtensions(c.Scan.VideoExtensions)
	c.Scan.SkipMarkers = normalizeMarkers(c.Scan.SkipMarkers)

	c.Layout.BackupDir = strings.TrimSpace(c.Layout.BackupDir)
	c.Layout.SoundDir = strings.TrimSpace(c.Layout.SoundDir)
	c.Layout.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.Layout.DefaultLanguage))

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

func normalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimSpace(value))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

func normalizeMarkers(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		marker := strings.TrimSpace(value)
		if marker == "" {
			continue
		}
		out = append(out, marker)
	}
	return out
}
