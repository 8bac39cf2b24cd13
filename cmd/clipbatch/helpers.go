package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"clipbatch/internal/deps"
	"clipbatch/internal/services"
)

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptLine reads one trimmed line from the command's input. The reader is
// shared across prompts so buffered input survives between menu iterations.
func promptLine(cmd *cobra.Command, ctx *commandContext, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	if ctx.stdin == nil {
		ctx.stdin = bufio.NewReader(cmd.InOrStdin())
	}
	line, err := ctx.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// requireBinaries aborts a mode before any filesystem mutation when an
// external collaborator is missing.
func requireBinaries(mode string, requirements []deps.Requirement) error {
	missing := deps.FirstMissing(deps.CheckBinaries(requirements))
	if missing == nil {
		return nil
	}
	return services.Wrap(services.ErrPrecondition, mode, "check dependencies",
		fmt.Sprintf("%s unavailable: %s", missing.Name, missing.Detail), nil)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
