package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "nuuconv",
		Short:         "Convert the N|uu dictionary spreadsheet to the portal and LaTeX formats",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newConvertCommand(),
		newPortalCommand(),
		newLatexCommand(),
		newValidateCommand(),
		newReportCommand(),
		newAudioCommand(),
		newPublishCommand(),
		newExportCommand(),
		newUploadCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode. Logs go
// to stderr so that outputs written to stdout stay clean.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: debugMode,
		})),
	)
}
