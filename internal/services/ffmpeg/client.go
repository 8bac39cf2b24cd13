package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(c *Client) {
		if executor != nil {
			c.exec = executor
		}
	}
}

// Client wraps FFmpeg CLI interactions.
type Client struct {
	binary     string
	audioCodec string
	exec       Executor
}

// New constructs an FFmpeg client.
func New(binary, audioCodec string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	audioCodec = strings.TrimSpace(audioCodec)
	if audioCodec == "" {
		return nil, errors.New("audio codec required")
	}
	client := &Client{
		binary:     binary,
		audioCodec: audioCodec,
		exec:       commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ReplaceAudio multiplexes videoPath's image stream with audioPath's audio
// stream into outputPath, copying the video codec and re-encoding only the
// audio. The caller owns outputPath cleanup on failure.
func (c *Client) ReplaceAudio(ctx context.Context, videoPath, audioPath, outputPath string) error {
	if videoPath == "" || audioPath == "" || outputPath == "" {
		return errors.New("ffmpeg replace audio: video, audio, and output paths required")
	}
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", c.audioCodec,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-y",
		outputPath,
	}
	if err := c.exec.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("ffmpeg replace audio: %w", err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, tail(string(output), 500))
	}
	return nil
}

func tail(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max:]
}
