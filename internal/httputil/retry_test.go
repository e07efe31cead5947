// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

func TestDoWithRetry(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int // status per call; the last repeats
		maxRetries int
		wantStatus int
		wantCalls  int32
	}{
		{name: "immediate success", statuses: []int{200}, maxRetries: 5, wantStatus: 200, wantCalls: 1},
		{name: "429 then success", statuses: []int{429, 429, 200}, maxRetries: 5, wantStatus: 200, wantCalls: 3},
		{name: "503 then success", statuses: []int{503, 200}, maxRetries: 5, wantStatus: 200, wantCalls: 2},
		{name: "exhausts retries", statuses: []int{429}, maxRetries: 2, wantStatus: 429, wantCalls: 3},
		{name: "default max retries", statuses: []int{503}, maxRetries: 0, wantStatus: 503, wantCalls: 4},
		{name: "500 passes through", statuses: []int{500}, maxRetries: 5, wantStatus: 500, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := int(atomic.AddInt32(&calls, 1))
				if n > len(tt.statuses) {
					n = len(tt.statuses)
				}
				w.WriteHeader(tt.statuses[n-1])
			}))
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
			require.NoError(t, err)

			resp, err := DoWithRetry(context.Background(), ts.Client(), req, tt.maxRetries)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestDoWithRetry_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = DoWithRetry(ctx, ts.Client(), req, 5)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetch(t *testing.T) {
	var gotUA atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/ok.jpg":
			w.Write([]byte("jpeg-bytes"))
		case "/big.jpg":
			w.Write([]byte(strings.Repeat("x", 100)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	body, err := Fetch(context.Background(), ts.Client(), ts.URL+"/ok.jpg", FetchOptions{UserAgent: "photopdf/test"})
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "photopdf/test", gotUA.Load())

	_, err = Fetch(context.Background(), ts.Client(), ts.URL+"/missing.jpg", FetchOptions{})
	assert.ErrorContains(t, err, "404")

	_, err = Fetch(context.Background(), ts.Client(), ts.URL+"/big.jpg", FetchOptions{MaxBytes: 10})
	assert.ErrorIs(t, err, ErrTooLarge)

	body, err = Fetch(context.Background(), ts.Client(), ts.URL+"/big.jpg", FetchOptions{MaxBytes: 100})
	require.NoError(t, err)
	assert.Len(t, body, 100)
}
