// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source provides the images a conversion starts from: picked from
// the filesystem ("gallery"), captured with a camera command, or fetched
// from a URL. Picking and capturing never fail for "nothing chosen"; they
// return no images instead.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/photopdf/internal/picture"
	"github.com/pdiddy/photopdf/pkg/types"
)

// IsURL reports whether handle is an http(s) URL.
func IsURL(handle string) bool {
	h := strings.ToLower(handle)
	return strings.HasPrefix(h, "http://") || strings.HasPrefix(h, "https://")
}

// Gallery expands user-supplied handles into image sources.
type Gallery struct {
	// Warn receives one line per skipped handle. Nil discards them.
	Warn io.Writer
}

// Pick expands handles in order: files are kept as given, directories are
// replaced by their image files sorted by name (not recursive), glob
// patterns are expanded, and URLs are kept. Missing and unsupported entries
// are skipped. The returned sources are indexed from 0.
func (g Gallery) Pick(handles ...string) []types.ImageSource {
	var paths []string
	for _, h := range handles {
		paths = append(paths, g.expand(h)...)
	}

	out := make([]types.ImageSource, len(paths))
	for i, p := range paths {
		out[i] = types.ImageSource{Index: i, Path: p}
	}
	return out
}

func (g Gallery) expand(handle string) []string {
	if handle == "" {
		return nil
	}
	if IsURL(handle) {
		return []string{handle}
	}

	info, err := os.Stat(handle)
	switch {
	case err == nil && info.IsDir():
		return g.dirImages(handle)
	case err == nil:
		if !picture.Supported(handle) {
			g.warnf("skipped: %s (unsupported image type)\n", handle)
			return nil
		}
		return []string{handle}
	}

	if strings.ContainsAny(handle, "*?[") {
		matches, globErr := filepath.Glob(handle)
		if globErr != nil {
			g.warnf("skipped: %s (%v)\n", handle, globErr)
			return nil
		}
		sort.Strings(matches)
		var out []string
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && !fi.IsDir() && picture.Supported(m) {
				out = append(out, m)
			}
		}
		if len(out) == 0 {
			g.warnf("skipped: %s (no matching images)\n", handle)
		}
		return out
	}

	g.warnf("skipped: %s (%v)\n", handle, err)
	return nil
}

func (g Gallery) dirImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		g.warnf("skipped: %s (%v)\n", dir, err)
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !picture.Supported(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	// ReadDir already sorts by file name.
	return out
}

func (g Gallery) warnf(format string, args ...any) {
	if g.Warn != nil {
		fmt.Fprintf(g.Warn, format, args...)
	}
}
