// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert combines an ordered list of images into a single PDF.
// Collaborators (image reading, document writing, output directory,
// verification) are injected so each can be replaced in tests.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/photopdf/internal/layout"
	"github.com/pdiddy/photopdf/internal/picture"
	"github.com/pdiddy/photopdf/pkg/types"
)

const defaultWorkers = 4

// ImageReader resolves an image handle to its raw bytes.
type ImageReader interface {
	Read(ctx context.Context, src types.ImageSource) ([]byte, error)
}

// Document accumulates pages in memory until it is serialized.
type Document interface {
	// AddPage appends one page of the given geometry holding img, placed
	// inside the margin according to fit.
	AddPage(geometry layout.Geometry, margin float64, img picture.Image, fit types.ImageFit) error

	// Serialize writes the finished document to w.
	Serialize(w io.Writer) error
}

// DocumentFactory returns a new, empty Document.
type DocumentFactory func() Document

// DirProvider supplies the writable directory output is placed in.
type DirProvider interface {
	Dir() (string, error)
}

// Verifier checks a serialized document before it is written.
type Verifier interface {
	Validate(data []byte) error
}

// Deps are the collaborators a Pipeline calls out to. Verifier and Progress
// are optional.
type Deps struct {
	Reader      ImageReader
	NewDocument DocumentFactory
	Dirs        DirProvider
	Verifier    Verifier

	// Progress receives one status line per page and per written file.
	Progress io.Writer
}

// Pipeline converts image lists into PDF files. A Pipeline holds no state
// between calls.
type Pipeline struct {
	deps    Deps
	workers int
	decode  func([]byte) (picture.Image, error)
	now     func() time.Time
}

// New creates a Pipeline. cfg.Workers bounds concurrent image reads
// (default 4); cfg.Verify is honored only when deps.Verifier is set.
func New(cfg types.ConvertConfig, deps Deps) *Pipeline {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if deps.Progress == nil {
		deps.Progress = io.Discard
	}
	if !cfg.Verify {
		deps.Verifier = nil
	}
	return &Pipeline{
		deps:    deps,
		workers: workers,
		decode:  picture.Decode,
		now:     time.Now,
	}
}

// OutputPath returns where a conversion with the given base name is written.
func OutputPath(dir, baseName string) string {
	return filepath.Join(dir, layout.Sanitize(baseName)+".pdf")
}

// Convert builds one page per image, in input order, and writes the document
// to <dir>/<sanitized base name>.pdf. On any error nothing is written and any
// existing file at that path is left untouched.
func (p *Pipeline) Convert(ctx context.Context, images []types.ImageSource, opts types.LayoutOptions) (types.ConversionResult, error) {
	if len(images) == 0 {
		return types.ConversionResult{}, ErrEmptyInput
	}

	geometry, err := layout.Resolve(opts.PageSize, opts.Orientation)
	if err != nil {
		return types.ConversionResult{}, &ValidationError{Field: "page geometry", Err: err}
	}
	if _, err := geometry.Printable(opts.Margin); err != nil {
		return types.ConversionResult{}, &ValidationError{Field: "margin", Err: err}
	}
	if !opts.Fit.Valid() {
		return types.ConversionResult{}, &ValidationError{Field: "fit", Err: fmt.Errorf("unknown fit mode %q", opts.Fit)}
	}

	decoded, err := p.readAll(ctx, images)
	if err != nil {
		return types.ConversionResult{}, err
	}

	// Resolved only once every image is readable, so a failed read creates
	// nothing on disk.
	dir, err := p.deps.Dirs.Dir()
	if err != nil {
		return types.ConversionResult{}, &DirectoryUnavailableError{Err: err}
	}
	outPath := OutputPath(dir, opts.BaseName)

	doc := p.deps.NewDocument()
	for i, img := range decoded {
		if err := doc.AddPage(geometry, opts.Margin, img, opts.Fit); err != nil {
			return types.ConversionResult{}, &ImageReadError{Index: i, Path: images[i].Path, Err: err}
		}
		fmt.Fprintf(p.deps.Progress, "page %d/%d: %s\n", i+1, len(decoded), images[i].Path)
	}

	var buf bytes.Buffer
	if err := doc.Serialize(&buf); err != nil {
		return types.ConversionResult{}, &StorageWriteError{Path: outPath, Err: fmt.Errorf("serializing document: %w", err)}
	}
	if p.deps.Verifier != nil {
		if err := p.deps.Verifier.Validate(buf.Bytes()); err != nil {
			return types.ConversionResult{}, &StorageWriteError{Path: outPath, Err: fmt.Errorf("verifying document: %w", err)}
		}
	}

	if err := writeAtomic(outPath, buf.Bytes()); err != nil {
		return types.ConversionResult{}, &StorageWriteError{Path: outPath, Err: err}
	}
	fmt.Fprintf(p.deps.Progress, "written: %s (%d pages, %d bytes)\n", outPath, len(decoded), buf.Len())

	return types.ConversionResult{
		ID:        shortuuid.New(),
		Path:      outPath,
		Pages:     len(decoded),
		Bytes:     int64(buf.Len()),
		Options:   opts,
		CreatedAt: p.now().UTC(),
	}, nil
}

// readAll reads and decodes every image, up to p.workers at a time. Results
// are stored by input position, so completion order does not matter. When
// several images fail, the error for the lowest index is returned.
func (p *Pipeline) readAll(ctx context.Context, images []types.ImageSource) ([]picture.Image, error) {
	decoded := make([]picture.Image, len(images))
	errs := make([]error, len(images))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, src := range images {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			data, err := p.deps.Reader.Read(ctx, src)
			if err != nil {
				errs[i] = err
				return nil
			}
			img, err := p.decode(data)
			if err != nil {
				errs[i] = err
				return nil
			}
			decoded[i] = img
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &ImageReadError{Index: i, Path: images[i].Path, Err: err}
		}
	}
	return decoded, nil
}
