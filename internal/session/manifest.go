// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/photopdf/internal/layout"
)

// Manifest is a saved conversion request: the ordered images plus the
// layout options to apply to them. Empty option fields keep the session's
// current values.
type Manifest struct {
	Name        string   `yaml:"name,omitempty"`
	PageSize    string   `yaml:"page_size,omitempty"`
	Orientation string   `yaml:"orientation,omitempty"`
	Fit         string   `yaml:"fit,omitempty"`
	Margin      string   `yaml:"margin,omitempty"`
	Images      []string `yaml:"images"`
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// ManifestOf captures the session's images and options.
func ManifestOf(s *Session) *Manifest {
	m := &Manifest{
		Name:        s.Options.BaseName,
		PageSize:    string(s.Options.PageSize),
		Orientation: string(s.Options.Orientation),
		Fit:         string(s.Options.Fit),
		Margin:      strconv.FormatFloat(s.Options.Margin, 'f', -1, 64),
	}
	for _, src := range s.Images.Items() {
		m.Images = append(m.Images, src.Path)
	}
	return m
}

// Save writes the manifest as YAML to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Apply sets the manifest's options on s and appends its images. Nothing is
// changed if any option fails to parse.
func (m *Manifest) Apply(s *Session) error {
	opts := s.Options
	if m.PageSize != "" {
		v, err := layout.ParsePageSize(m.PageSize)
		if err != nil {
			return err
		}
		opts.PageSize = v
	}
	if m.Orientation != "" {
		v, err := layout.ParseOrientation(m.Orientation)
		if err != nil {
			return err
		}
		opts.Orientation = v
	}
	if m.Fit != "" {
		v, err := layout.ParseFit(m.Fit)
		if err != nil {
			return err
		}
		opts.Fit = v
	}
	if m.Margin != "" {
		opts.Margin = layout.ParseMargin(m.Margin)
	}
	if m.Name != "" {
		opts.BaseName = m.Name
	}

	s.Options = opts
	s.Images.Add(m.Images...)
	return nil
}
