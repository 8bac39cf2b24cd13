package main

import (
	"github.com/spf13/cobra"

	"clipbatch/internal/deps"
	"clipbatch/internal/matching"
	"clipbatch/internal/merging"
	"clipbatch/internal/runlock"
	"clipbatch/internal/scan"
	"clipbatch/internal/services"
	"clipbatch/internal/services/ffmpeg"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge replacement audio into duration-matched videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, ctx)
		},
	}
}

func runMerge(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	if err := requireBinaries("merge", deps.EncoderRequirements(cfg.FFmpeg.Binary)); err != nil {
		return err
	}

	dir, err := ctx.workDir()
	if err != nil {
		return err
	}
	lock, err := runlock.Acquire(dir)
	if err != nil {
		return err
	}
	defer lock.Release()

	opts := scan.Options{
		AudioExtensions: cfg.Scan.AudioExtensions,
		VideoExtensions: cfg.Scan.VideoExtensions,
		DefaultLanguage: cfg.Layout.DefaultLanguage,
	}
	audio, err := scan.Audio(dir, opts)
	if err != nil {
		return err
	}
	if audio.Total() == 0 {
		return services.Wrap(services.ErrPrecondition, "merge", "scan directory",
			"no audio files found in "+dir, nil)
	}
	videos, err := scan.Videos(dir, opts)
	if err != nil {
		return err
	}
	if videos.Total() == 0 {
		return services.Wrap(services.ErrPrecondition, "merge", "scan directory",
			"no videos found in the subfolders of "+dir, nil)
	}

	pairs := matching.Match(audio, videos)
	if len(pairs) == 0 {
		return services.Wrap(services.ErrPrecondition, "merge", "match pairs",
			"no audio/video pairs share a duration marker", nil)
	}

	client, err := ffmpeg.New(cfg.FFmpeg.Binary, cfg.FFmpeg.AudioCodec)
	if err != nil {
		return err
	}
	merger := merging.New(client, cfg.Layout.BackupDir, cfg.Layout.SoundDir, logger)
	summary := merger.Run(cmd.Context(), pairs)
	printMergeSummary(cmd.OutOrStdout(), summary)
	return nil
}
