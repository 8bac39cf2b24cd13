package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.FFmpeg.Binary != "ffmpeg" || cfg.FFmpeg.ProbeBinary != "ffprobe" {
		t.Fatalf("unexpected binaries: %+v", cfg.FFmpeg)
	}
	if cfg.FFmpeg.AudioCodec != "aac" {
		t.Fatalf("unexpected codec: %q", cfg.FFmpeg.AudioCodec)
	}
	if cfg.Layout.BackupDir != "backup" || cfg.Layout.SoundDir != "sound" {
		t.Fatalf("unexpected layout: %+v", cfg.Layout)
	}
	if cfg.Layout.DefaultLanguage != "en" {
		t.Fatalf("unexpected default language: %q", cfg.Layout.DefaultLanguage)
	}
	if len(cfg.Scan.SkipMarkers) != 1 || cfg.Scan.SkipMarkers[0] != "WIP" {
		t.Fatalf("unexpected skip markers: %v", cfg.Scan.SkipMarkers)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
work_dir = "` + dir + `"

[ffmpeg]
audio_codec = "AAC"

[scan]
audio_extensions = ["WAV", ".Flac"]
video_extensions = [".mp4", "mp4"]

[layout]
default_language = "RU"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.FFmpeg.AudioCodec != "aac" {
		t.Fatalf("codec not lowercased: %q", cfg.FFmpeg.AudioCodec)
	}
	if got := strings.Join(cfg.Scan.AudioExtensions, ","); got != ".wav,.flac" {
		t.Fatalf("audio extensions not normalized: %q", got)
	}
	if got := strings.Join(cfg.Scan.VideoExtensions, ","); got != ".mp4" {
		t.Fatalf("video extensions not deduplicated: %q", got)
	}
	if cfg.Layout.DefaultLanguage != "ru" {
		t.Fatalf("language not lowercased: %q", cfg.Layout.DefaultLanguage)
	}
	if cfg.Paths.WorkDir != dir {
		t.Fatalf("work dir not expanded: %q", cfg.Paths.WorkDir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad format":    "[logging]\nformat = \"xml\"\n",
		"bad level":     "[logging]\nlevel = \"loud\"\n",
		"pathy backup":  "[layout]\nbackup_dir = \"a/b\"\n",
		"empty codec":   "[ffmpeg]\naudio_codec = \" \"\n",
		"bad language":  "[layout]\ndefault_language = \"e\"\n",
		"digit in lang": "[layout]\ndefault_language = \"e1\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLIPBATCH_LOG_LEVEL", "debug")
	t.Setenv("CLIPBATCH_FFMPEG", "/opt/ffmpeg/bin/ffmpeg")
	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("env level override ignored: %q", cfg.Logging.Level)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("env binary override ignored: %q", cfg.FFmpeg.Binary)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("sample config failed to load: exists=%v err=%v", exists, err)
	}
}

func TestResolveWorkDirFallsBackToCwd(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	dir, err := cfg.ResolveWorkDir()
	if err != nil {
		t.Fatalf("ResolveWorkDir: %v", err)
	}
	cwd, _ := os.Getwd()
	if dir != cwd {
		t.Fatalf("expected cwd %q, got %q", cwd, dir)
	}
}
