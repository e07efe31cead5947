// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pdiddy/photopdf/internal/httputil"
	"github.com/pdiddy/photopdf/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "photopdf/0.1"
)

// Resolver reads the raw bytes behind an image handle. It implements
// convert.ImageReader.
type Resolver struct {
	client *http.Client
	opts   httputil.FetchOptions
}

// NewResolver creates a Resolver. URLs are fetched with cfg's timeout,
// retry, and size settings.
func NewResolver(cfg types.FetchConfig) *Resolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Resolver{
		client: &http.Client{Timeout: timeout},
		opts: httputil.FetchOptions{
			MaxRetries: cfg.MaxRetries,
			MaxBytes:   cfg.MaxBytes,
			UserAgent:  ua,
		},
	}
}

// Read returns the bytes of src, from disk or over HTTP.
func (r *Resolver) Read(ctx context.Context, src types.ImageSource) ([]byte, error) {
	if IsURL(src.Path) {
		return httputil.Fetch(ctx, r.client, src.Path, r.opts)
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", src.Path)
	}
	return data, nil
}
