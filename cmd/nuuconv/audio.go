package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mvzaanen/N-uu-conversion/internal/audio"
)

func newAudioCommand() *cobra.Command {
	var input, base, target, output string

	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Write a shell script copying the entry recordings into the app",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := slog.Default()

			ix, _, err := loadIndex(cfg, input, slog.New(slog.DiscardHandler))
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}

			resolver := audio.NewResolver(firstNonEmpty(base, cfg.Audio.BaseDirectory), audio.WithLogger(logger))
			var summary audio.Summary
			if err := writeOutput(firstNonEmpty(output, cfg.Outputs.AudioScript), cmd.OutOrStdout(), func(w io.Writer) error {
				summary, err = resolver.WriteScript(w, ix, firstNonEmpty(target, cfg.Audio.TargetDirectory))
				return err
			}); err != nil {
				return fmt.Errorf("resolver.WriteScript() > %w", err)
			}

			logger.Info("wrote audio script",
				"entries", summary.Entries,
				"without_recording", summary.WithoutRecording,
				"copies", summary.Copies,
				"missing", summary.Missing,
				"conflicts", summary.Conflicts,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	cmd.Flags().StringVar(&base, "base", "", "directory searched for recordings; defaults to audio.base_directory")
	cmd.Flags().StringVar(&target, "target", "", "directory the script copies to; defaults to audio.target_directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "script output, - for stdout; defaults to outputs.audio_script")
	return cmd
}
