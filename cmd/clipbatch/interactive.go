package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// runInteractive drives the menu loop shown when clipbatch starts on a
// terminal with no arguments. Mode failures are reported and the menu
// continues; only quit or end of input leaves the loop.
func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	out := cmd.OutOrStdout()
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "clipbatch")
		fmt.Fprintln(out, "  1) rename videos in the working directory")
		fmt.Fprintln(out, "  2) merge replacement audio into matching videos")
		fmt.Fprintln(out, "  q) quit")

		choice, err := promptLine(cmd, ctx, "> ")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := runRename(cmd, ctx, ""); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		case "2":
			if err := runMerge(cmd, ctx); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown choice %q\n", choice)
		}
	}
}
