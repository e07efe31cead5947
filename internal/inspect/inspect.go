// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect validates PDFs and reports their page layout using pdfcpu.
package inspect

import (
	"bytes"
	"fmt"
	"io"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageDim is the media box size of one page, in points.
type PageDim struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Report summarizes a PDF file.
type Report struct {
	Path  string    `json:"path" yaml:"path"`
	Bytes int64     `json:"bytes" yaml:"bytes"`
	Pages int       `json:"pages" yaml:"pages"`
	Dims  []PageDim `json:"dims" yaml:"dims"`
}

// Validator checks serialized documents in relaxed mode, which accepts the
// minor deviations common in generated PDFs.
type Validator struct{}

// Validate returns an error describing the first structural problem in data.
func (Validator) Validate(data []byte) error {
	if err := pdfapi.Validate(bytes.NewReader(data), config()); err != nil {
		return fmt.Errorf("pdf validation: %w", err)
	}
	return nil
}

// File validates the PDF at path and reports its pages.
func File(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading %s: %w", path, err)
	}
	r, err := Bytes(data)
	if err != nil {
		return Report{}, fmt.Errorf("inspecting %s: %w", path, err)
	}
	r.Path = path
	return r, nil
}

// Bytes validates an in-memory PDF and reports its pages.
func Bytes(data []byte) (Report, error) {
	if err := (Validator{}).Validate(data); err != nil {
		return Report{}, err
	}

	count, err := pdfapi.PageCount(bytes.NewReader(data), config())
	if err != nil {
		return Report{}, fmt.Errorf("counting pages: %w", err)
	}
	dims, err := pdfapi.PageDims(bytes.NewReader(data), config())
	if err != nil {
		return Report{}, fmt.Errorf("reading page dimensions: %w", err)
	}

	r := Report{Bytes: int64(len(data)), Pages: count}
	for _, d := range dims {
		r.Dims = append(r.Dims, PageDim{Width: d.Width, Height: d.Height})
	}
	return r, nil
}

// Print writes a human-readable report to w.
func Print(w io.Writer, r Report) {
	fmt.Fprintf(w, "file:  %s\n", r.Path)
	fmt.Fprintf(w, "size:  %d bytes\n", r.Bytes)
	fmt.Fprintf(w, "pages: %d\n", r.Pages)
	for i, d := range r.Dims {
		orient := "portrait"
		if d.Width > d.Height {
			orient = "landscape"
		}
		fmt.Fprintf(w, "  %3d  %7.2f x %7.2f pt  %s\n", i+1, d.Width, d.Height, orient)
	}
}

func config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
