package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvzaanen/N-uu-conversion/internal/testutil"
)

func TestUploadCommand(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		response   string
		wantOut    string
		wantErr    string
		wantCalls  int32
	}{
		{
			name:       "uploads the feed",
			statusCode: http.StatusOK,
			response:   `{"imported": 3, "message": "import queued"}`,
			wantOut:    "Uploaded 3 record(s) to ",
			wantCalls:  1,
		},
		{
			name:       "server error is not retried without retry attempts",
			statusCode: http.StatusInternalServerError,
			response:   `{"error": "database unavailable"}`,
			wantErr:    "response error 500",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.Equal(t, "/import", r.URL.Path)
				assert.True(t, strings.HasPrefix(string(body), "**\n<Project>N|uu\n<N|uu>ka\n"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = io.WriteString(w, tt.response)
			}))
			defer server.Close()

			cfgPath := testutil.SetupTestConfigWithPortal(t, t.TempDir(), server.URL)
			stdout, err := runCommand(t, "--config", cfgPath, "upload")
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.wantOut+server.URL+"\n")
			assert.Contains(t, stdout, "import queued\n")
		})
	}
}

func TestUploadCommand_RequiresBaseURL(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())

	_, err := runCommand(t, "--config", cfgPath, "upload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "portal.base_url is required")
}
