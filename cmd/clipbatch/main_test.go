package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipbatch/internal/services"
)

func setTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}

func TestClassifyMuxArgs(t *testing.T) {
	audioExts := []string{".wav"}
	videoExts := []string{".mp4"}

	audio, videos, err := classifyMuxArgs([]string{"a.wav", "one.mp4", "two.MP4"}, audioExts, videoExts)
	if err != nil {
		t.Fatalf("classifyMuxArgs: %v", err)
	}
	if audio != "a.wav" || len(videos) != 2 {
		t.Fatalf("unexpected classification: %q %v", audio, videos)
	}

	cases := map[string][]string{
		"two audio files": {"a.wav", "b.wav", "one.mp4"},
		"no audio":        {"one.mp4", "two.mp4"},
		"no videos":       {"a.wav"},
		"unknown type":    {"a.wav", "notes.txt", "one.mp4"},
	}
	for name, args := range cases {
		if _, _, err := classifyMuxArgs(args, audioExts, videoExts); !errors.Is(err, services.ErrPrecondition) {
			t.Fatalf("%s: expected precondition error, got %v", name, err)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	setTempHome(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init must refuse to clobber the file.
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting an existing config")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowReportsDefaults(t *testing.T) {
	setTempHome(t)

	out, _, err := runCLI(t, []string{"config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "exists: no")
	requireContains(t, out, "ffmpeg")
	requireContains(t, out, ".wav")
}

func TestRootWithoutArgsShowsHelpOffTerminal(t *testing.T) {
	setTempHome(t)

	out, _, err := runCLI(t, nil, "")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "clipbatch")
	requireContains(t, out, "merge")
}
