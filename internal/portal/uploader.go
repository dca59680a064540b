package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const importPath = "/import"

// ImportResult is the portal's answer to an import.
type ImportResult struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// Uploader posts a portal feed to the portal's import endpoint.
type Uploader struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
	logger           *slog.Logger
}

// UploaderOption configures an Uploader.
type UploaderOption func(*Uploader)

// WithRetryAttempts sets how often a failed upload is retried.
func WithRetryAttempts(n uint) UploaderOption {
	return func(u *Uploader) {
		u.maxRetryAttempts = n
	}
}

// WithRetryDelay sets the initial back-off delay.
func WithRetryDelay(d time.Duration) UploaderOption {
	return func(u *Uploader) {
		u.retryDelay = d
	}
}

// WithUploaderLogger sets the logger.
func WithUploaderLogger(logger *slog.Logger) UploaderOption {
	return func(u *Uploader) {
		u.logger = logger
	}
}

// NewUploader returns an Uploader for the portal at baseURL.
func NewUploader(baseURL, token string, opts ...UploaderOption) *Uploader {
	client := resty.New()
	client.SetBaseURL(baseURL)
	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}
	client.SetHeader("Accept", "application/json")

	u := &Uploader{
		httpClient:       client,
		maxRetryAttempts: 3,
		retryDelay:       time.Second,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Uploader) Close() error {
	return u.httpClient.Close()
}

// Upload sends feed. Server errors, rate limiting and transport failures
// are retried with exponential back-off; other client errors are not.
func (u *Uploader) Upload(ctx context.Context, feed []byte) (ImportResult, error) {
	var result ImportResult
	attempt := 0
	if err := retry.Do(
		func() error {
			attempt++
			response, err := u.upload(ctx, feed)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				u.logger.Warn("portal upload failed", "attempt", attempt, "error", err)
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(u.maxRetryAttempts+1),
		retry.Delay(u.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		return ImportResult{}, fmt.Errorf("upload(%s) > %w", importPath, err)
	}
	u.logger.Info("uploaded portal feed", "imported", result.Imported, "attempts", attempt)
	return result, nil
}

func (u *Uploader) upload(ctx context.Context, feed []byte) (ImportResult, error) {
	response, err := u.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetBody(feed).
		SetResult(&ImportResult{}).
		Post(importPath)
	if err != nil {
		return ImportResult{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return ImportResult{}, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	result, ok := response.Result().(*ImportResult)
	if !ok || result == nil {
		return ImportResult{}, fmt.Errorf("unexpected response body: %s", response.String())
	}
	return *result, nil
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	}
	// Transport failures.
	return true
}
