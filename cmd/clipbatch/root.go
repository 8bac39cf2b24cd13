package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dirFlag string

	ctx := newCommandContext(&configFlag, &dirFlag)

	rootCmd := &cobra.Command{
		Use:   "clipbatch [media files...]",
		Short: "Batch renaming and audio replacement for short-form clips",
		Long: "clipbatch renames raw video exports into a duration-keyed form, " +
			"pairs replacement audio with matching videos, and seats the new " +
			"audio with crash-safe backups of every original.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Files dropped onto the binary arrive as bare arguments.
			if len(args) > 0 {
				return runMux(cmd, ctx, args)
			}
			if stdinIsTerminal() {
				return runInteractive(cmd, ctx)
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Working directory (defaults to the current directory)")

	rootCmd.AddCommand(newRenameCommand(ctx))
	rootCmd.AddCommand(newMergeCommand(ctx))
	rootCmd.AddCommand(newMuxCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
