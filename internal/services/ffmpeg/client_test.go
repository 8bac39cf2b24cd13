package ffmpeg

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExecutor struct {
	binary string
	args   []string
	err    error
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) error {
	f.binary = binary
	f.args = args
	return f.err
}

func TestReplaceAudioBuildsExpectedCommand(t *testing.T) {
	executor := &fakeExecutor{}
	client, err := New("ffmpeg", "aac", WithExecutor(executor))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.ReplaceAudio(context.Background(), "EN/clip.mp4", "voice.wav", "EN/.tmp.mp4"); err != nil {
		t.Fatalf("ReplaceAudio: %v", err)
	}
	if executor.binary != "ffmpeg" {
		t.Fatalf("unexpected binary: %q", executor.binary)
	}
	joined := strings.Join(executor.args, " ")
	for _, want := range []string{
		"-i EN/clip.mp4",
		"-i voice.wav",
		"-c:v copy",
		"-c:a aac",
		"-map 0:v:0",
		"-map 1:a:0",
		"-y EN/.tmp.mp4",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("args missing %q: %q", want, joined)
		}
	}
}

func TestReplaceAudioPropagatesFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	client, err := New("ffmpeg", "aac", WithExecutor(&fakeExecutor{err: cause}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = client.ReplaceAudio(context.Background(), "v.mp4", "a.wav", "out.mp4")
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to propagate, got %v", err)
	}
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New("", "aac"); err == nil {
		t.Fatal("expected error for empty binary")
	}
	if _, err := New("ffmpeg", " "); err == nil {
		t.Fatal("expected error for empty codec")
	}
}

func TestReplaceAudioValidatesPaths(t *testing.T) {
	client, err := New("ffmpeg", "aac", WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.ReplaceAudio(context.Background(), "", "a.wav", "out.mp4"); err == nil {
		t.Fatal("expected error for empty video path")
	}
}
