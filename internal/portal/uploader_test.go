package portal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploader_Upload(t *testing.T) {
	feed := []byte("**\n<N|uu>ka\n<POS>T2\n**\n")

	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request)

		wantResult     ImportResult
		wantCalls      int32
		wantStatusCode int
		wantError      bool
	}{
		{
			name: "success",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/import", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.Equal(t, "text/plain; charset=utf-8", r.Header.Get("Content-Type"))
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, feed, body)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"imported": 1, "message": "ok"}`))
			},
			wantResult: ImportResult{Imported: 1, Message: "ok"},
			wantCalls:  1,
		},
		{
			name: "retries server errors",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				if calls < 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"imported": 1}`))
			},
			wantResult: ImportResult{Imported: 1},
			wantCalls:  3,
		},
		{
			name: "retries rate limiting",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				if calls == 1 {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"imported": 1}`))
			},
			wantResult: ImportResult{Imported: 1},
			wantCalls:  2,
		},
		{
			name: "client error is not retried",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("malformed record on line 2"))
			},
			wantCalls:      1,
			wantStatusCode: http.StatusBadRequest,
			wantError:      true,
		},
		{
			name: "gives up after the configured attempts",
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantCalls:      4,
			wantStatusCode: http.StatusBadGateway,
			wantError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, calls.Add(1), w, r)
			}))
			defer server.Close()

			uploader := NewUploader(server.URL, "secret",
				WithRetryAttempts(3),
				WithRetryDelay(time.Millisecond),
			)
			defer func() {
				_ = uploader.Close()
			}()

			got, err := uploader.Upload(context.Background(), feed)
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantError {
				require.Error(t, err)
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, tt.wantStatusCode, statusErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, got)
		})
	}
}

func TestUploader_Upload_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uploader := NewUploader(server.URL, "", WithRetryDelay(time.Millisecond))
	_, err := uploader.Upload(ctx, []byte("**\n**\n"))
	require.Error(t, err)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server error", err: &StatusError{StatusCode: 500}, want: true},
		{name: "too many requests", err: &StatusError{StatusCode: 429}, want: true},
		{name: "not found", err: &StatusError{StatusCode: 404}, want: false},
		{name: "transport", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "canceled", err: context.Canceled, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
