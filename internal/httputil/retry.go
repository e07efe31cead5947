// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil fetches remote images with retry on transient overload.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 and 503 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

// maxRetryAfter caps a server-provided Retry-After wait.
const maxRetryAfter = 30 * time.Second

const (
	defaultMaxRetries = 3
	defaultMaxBytes   = 64 << 20
)

// ErrTooLarge is returned when a response body exceeds the size limit.
var ErrTooLarge = errors.New("response body exceeds size limit")

// retryable reports whether status signals a transient overload.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// DoWithRetry executes an HTTP request and retries on 429 and 503 with
// exponential backoff starting at RetryBaseDelay. A Retry-After header given
// in seconds replaces the computed delay, up to 30s.
//
// When maxRetries is 0 the default (3) is used. If the context is cancelled
// during a backoff wait the function returns ctx.Err(). After exhausting
// retries the last response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		if s, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && s >= 0 {
			backoff = min(time.Duration(s)*time.Second, maxRetryAfter)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		elog.DefaultLogger.Warn("image fetch throttled",
			elog.String("url", req.URL.String()),
			elog.Int64("status", int64(resp.StatusCode)),
			elog.String("backoff", backoff.String()),
			elog.Int64("attempt", int64(attempt+1)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// FetchOptions tunes Fetch. Zero values select the defaults.
type FetchOptions struct {
	MaxRetries int
	MaxBytes   int64
	UserAgent  string
}

// Fetch GETs url and returns the body. Non-2xx responses and bodies larger
// than MaxBytes (default 64 MiB) are errors.
func Fetch(ctx context.Context, client *http.Client, url string, opts FetchOptions) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	resp, err := DoWithRetry(ctx, client, req, opts.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	limit := opts.MaxBytes
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("fetching %s: %w (%d bytes)", url, ErrTooLarge, limit)
	}
	return body, nil
}
