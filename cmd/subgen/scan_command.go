package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subgen/internal/workflow"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [root]",
		Short: "Show what a run would do, without deleting or transcribing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var root string
			if len(args) == 1 {
				root = args[0]
			}

			decisions, err := workflow.Plan(rootOrCwd(root), cfg.Media.Extensions)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(decisions))
			pending := 0
			for _, d := range decisions {
				action := "skip"
				subtitle := "present"
				if !d.HasFinal {
					action = "transcribe"
					subtitle = "missing"
					pending++
				}
				rows = append(rows, []string{
					d.File.Path,
					subtitle,
					action,
					strconv.Itoa(len(d.StaleArtifacts)),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Subtitle", "Action", "Stale artifacts"},
				rows,
				3,
			))
			fmt.Fprintf(out, "%d of %d file(s) would be transcribed\n", pending, len(decisions))
			return nil
		},
	}
}
