// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc writes image pages into a PDF using fpdf. Units are points
// and every page carries its own size, so one document may mix geometries.
package pdfdoc

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/photopdf/internal/layout"
	"github.com/pdiddy/photopdf/internal/picture"
	"github.com/pdiddy/photopdf/pkg/types"
)

const creator = "photopdf"

// Document is an in-memory PDF with one image per page.
type Document struct {
	pdf   *fpdf.Fpdf
	pages int
}

// New returns an empty document. title is recorded in the PDF metadata when
// non-empty.
func New(title string) *Document {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(creator, true)
	pdf.SetCreationDate(time.Now())
	if title != "" {
		pdf.SetTitle(title, true)
	}
	return &Document{pdf: pdf}
}

// Pages returns the number of pages added so far.
func (d *Document) Pages() int { return d.pages }

// AddPage appends a page of size geometry and draws img inside the printable
// area left by margin, placed according to fit.
func (d *Document) AddPage(geometry layout.Geometry, margin float64, img picture.Image, fit types.ImageFit) error {
	area, err := geometry.Printable(margin)
	if err != nil {
		return err
	}

	imgType, err := imageType(img.Format)
	if err != nil {
		return err
	}

	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: geometry.Width, Ht: geometry.Height})

	name := fmt.Sprintf("page-%d", d.pages+1)
	opts := fpdf.ImageOptions{ImageType: imgType, AllowNegativePosition: true}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if d.pdf.Err() {
		return fmt.Errorf("embedding image on page %d: %w", d.pages+1, d.pdf.Error())
	}

	p := layout.Place(area, float64(img.Width), float64(img.Height), fit)
	if p.Clip {
		d.pdf.ClipRect(area.X, area.Y, area.W, area.H, false)
	}
	d.pdf.ImageOptions(name, p.X, p.Y, p.W, p.H, false, opts, 0, "")
	if p.Clip {
		d.pdf.ClipEnd()
	}
	if d.pdf.Err() {
		return fmt.Errorf("drawing image on page %d: %w", d.pages+1, d.pdf.Error())
	}

	d.pages++
	return nil
}

// Serialize writes the PDF to w. It fails if any earlier fpdf call left the
// document in an error state or if no page was added.
func (d *Document) Serialize(w io.Writer) error {
	if d.pages == 0 {
		return fmt.Errorf("document has no pages")
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func imageType(f picture.Format) (string, error) {
	switch f {
	case picture.JPEG:
		return "JPG", nil
	case picture.PNG:
		return "PNG", nil
	case picture.GIF:
		return "GIF", nil
	}
	return "", fmt.Errorf("unsupported image format %q", f)
}
