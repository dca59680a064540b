package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mvzaanen/N-uu-conversion/internal/portal"
)

func newUploadCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Send the portal feed to the portal import endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Portal.BaseURL == "" {
				return fmt.Errorf("portal.base_url is required")
			}
			logger := slog.Default()

			ix, _, err := loadIndex(cfg, input, logger)
			if err != nil {
				return fmt.Errorf("loadIndex() > %w", err)
			}
			var feed bytes.Buffer
			if err := newPortalRenderer(cfg, logger).Feed(&feed, ix); err != nil {
				return fmt.Errorf("Feed() > %w", err)
			}

			uploader := portal.NewUploader(cfg.Portal.BaseURL, cfg.Portal.Token,
				portal.WithRetryAttempts(cfg.Portal.RetryAttempts),
				portal.WithUploaderLogger(logger),
			)
			defer func() {
				_ = uploader.Close()
			}()

			result, err := uploader.Upload(cmd.Context(), feed.Bytes())
			if err != nil {
				return fmt.Errorf("uploader.Upload() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d record(s) to %s\n", result.Imported, cfg.Portal.BaseURL)
			if result.Message != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "dictionary spreadsheet (.csv, .yml); defaults to input.path")
	return cmd
}
