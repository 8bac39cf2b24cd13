package main

import (
	"github.com/spf13/cobra"

	"clipbatch/internal/deps"
	"clipbatch/internal/renaming"
	"clipbatch/internal/runlock"
	"clipbatch/internal/services"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var nameFlag string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename videos in the working directory and file them by language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, ctx, nameFlag)
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Custom name embedded in every renamed file")
	return cmd
}

func runRename(cmd *cobra.Command, ctx *commandContext, customName string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	if err := requireBinaries("rename", deps.ProbeRequirements(cfg.FFmpeg.ProbeBinary)); err != nil {
		return err
	}

	if customName == "" && stdinIsTerminal() {
		customName, err = promptLine(cmd, ctx, "New clip name: ")
		if err != nil {
			return err
		}
	}
	if customName == "" {
		return services.Wrap(services.ErrPrecondition, "rename", "validate input",
			"a custom name is required (use --name)", nil)
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

	renamer := renaming.New(
		renaming.FFprobeProber{Binary: cfg.FFmpeg.ProbeBinary},
		renaming.Options{
			VideoExtensions: cfg.Scan.VideoExtensions,
			SkipMarkers:     cfg.Scan.SkipMarkers,
			DefaultLanguage: cfg.Layout.DefaultLanguage,
		},
		logger,
	)

	summary, err := renamer.Run(cmd.Context(), dir, customName)
	if err != nil {
		return err
	}
	printRenameSummary(cmd.OutOrStdout(), summary)
	return nil
}
