package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"subgen/internal/deps"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that required external binaries are on PATH",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			allAvailable := true
			for _, status := range deps.Check(deps.Requirements(cfg)) {
				label := "OK"
				color := ansiGreen
				if !status.Available {
					label = "MISSING"
					color = ansiRed
					allAvailable = false
				}
				line := fmt.Sprintf("  %-24s [%s] %s", status.Name+":", label, status.Detail)
				if colorize {
					line = color + line + ansiReset
				}
				fmt.Fprintln(out, line)
			}

			if !allAvailable {
				return fmt.Errorf("missing external dependencies")
			}
			return nil
		},
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
