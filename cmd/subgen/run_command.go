package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subgen/internal/deps"
	"subgen/internal/language"
	"subgen/internal/logging"
	"subgen/internal/services/whisper"
	"subgen/internal/workflow"
)

func newRunCommand(ctx *commandContext, verboseFlag *bool) *cobra.Command {
	var autoLanguage bool

	cmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Transcribe every video under root that lacks a final subtitle",
		Long: `Walks root (default: current directory) recursively, removes stale
subtitle byproducts per video, and invokes the transcription engine for every
video without a sibling .srt. Per-file engine failures are logged and the
batch continues; only a missing root or an empty match set fail the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			verbose := verboseFlag != nil && *verboseFlag
			level := ""
			if verbose {
				level = "debug"
			}
			logger, err := logging.NewFromConfig(cfg, level)
			if err != nil {
				return err
			}

			for _, status := range deps.Check(deps.Requirements(cfg)) {
				if !status.Available {
					logger.Warn("external dependency unavailable, transcription attempts will fail",
						"dependency", status.Name,
						"detail", status.Detail)
				}
			}

			langCode := language.Normalize(cfg.Transcriber.Language)
			service := whisper.NewService(whisper.Config{
				Binary:       cfg.Transcriber.Engine,
				Model:        cfg.Transcriber.Model,
				Device:       cfg.Transcriber.Device,
				Language:     langCode,
				AutoLanguage: autoLanguage || langCode == "",
				Verbose:      verbose,
			}, logger)

			runner, err := workflow.NewRunner(cfg, logger, service)
			if err != nil {
				return err
			}

			var root string
			if len(args) == 1 {
				root = args[0]
			}

			result, err := runner.Run(cmd.Context(), workflow.Options{Root: root})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Files", "Transcribed", "Skipped", "Failed", "Artifacts removed"},
				[][]string{{
					strconv.Itoa(result.Total),
					strconv.Itoa(result.Transcribed),
					strconv.Itoa(result.Skipped),
					strconv.Itoa(result.Failed),
					strconv.Itoa(result.ArtifactsRemoved),
				}},
				0, 1, 2, 3, 4,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoLanguage, "auto-language", false, "Omit the language hint so the engine detects it")
	return cmd
}
