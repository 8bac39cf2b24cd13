package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"clipbatch/internal/deps"
	"clipbatch/internal/merging"
	"clipbatch/internal/services"
	"clipbatch/internal/services/ffmpeg"
)

func newMuxCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mux <audio file> <video file>...",
		Short: "Mux one audio track into each listed video, writing fresh copies",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMux(cmd, ctx, args)
		},
	}
}

func runMux(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	audioPath, videoPaths, err := classifyMuxArgs(args, cfg.Scan.AudioExtensions, cfg.Scan.VideoExtensions)
	if err != nil {
		return err
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	if err := requireBinaries("mux", deps.EncoderRequirements(cfg.FFmpeg.Binary)); err != nil {
		return err
	}

	client, err := ffmpeg.New(cfg.FFmpeg.Binary, cfg.FFmpeg.AudioCodec)
	if err != nil {
		return err
	}
	merger := merging.New(client, cfg.Layout.BackupDir, cfg.Layout.SoundDir, logger)
	summary, err := merger.MuxToFolder(cmd.Context(), audioPath, videoPaths)
	if err != nil {
		return err
	}
	printMuxSummary(cmd.OutOrStdout(), summary)
	return nil
}

// classifyMuxArgs sorts the dropped paths into exactly one audio file plus at
// least one video. Anything else is rejected before any filesystem mutation.
func classifyMuxArgs(args, audioExtensions, videoExtensions []string) (string, []string, error) {
	var audio []string
	var videos []string
	for _, arg := range args {
		ext := strings.ToLower(filepath.Ext(arg))
		switch {
		case containsString(audioExtensions, ext):
			audio = append(audio, arg)
		case containsString(videoExtensions, ext):
			videos = append(videos, arg)
		default:
			return "", nil, services.Wrap(services.ErrPrecondition, "mux", "classify input",
				fmt.Sprintf("%s is neither a known audio nor video type", filepath.Base(arg)), nil)
		}
	}
	if len(audio) != 1 {
		return "", nil, services.Wrap(services.ErrPrecondition, "mux", "classify input",
			fmt.Sprintf("expected exactly one audio file, got %d", len(audio)), nil)
	}
	if len(videos) == 0 {
		return "", nil, services.Wrap(services.ErrPrecondition, "mux", "classify input",
			"at least one video file is required", nil)
	}
	return audio[0], videos, nil
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
