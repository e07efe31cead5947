// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// OutputConfig holds settings for where converted documents are written.
type OutputConfig struct {
	// Dir is the application data directory. PDFs and the history database
	// live here (default ~/.local/share/photopdf).
	Dir string `json:"dir" yaml:"dir"`
}

// ConvertConfig holds settings for the conversion pipeline.
type ConvertConfig struct {
	// Workers bounds the number of images read concurrently (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// Verify runs the serialized document through a PDF validator before it
	// is written.
	Verify bool `json:"verify" yaml:"verify"`
}

// FetchConfig holds settings for reading images from http(s) URLs.
type FetchConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retries on 429/503 responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxBytes caps the size of a downloaded image (default 64 MiB).
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes"`

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CaptureConfig holds settings for camera capture.
type CaptureConfig struct {
	// Command is the capture program and its arguments. The token {output}
	// is replaced with the path the photo must be written to
	// (e.g. ["fswebcam", "--no-banner", "{output}"]).
	Command []string `json:"command" yaml:"command"`

	// Dir is where captured photos are stored (default <output dir>/captures).
	Dir string `json:"dir" yaml:"dir"`
}

// LauncherConfig holds settings for handing a finished PDF to other programs.
type LauncherConfig struct {
	// OpenCommand overrides the platform opener (xdg-open, open, rundll32).
	OpenCommand []string `json:"open_command" yaml:"open_command"`

	// ShareCommand is run to share a file. The token {path} is replaced with
	// the PDF path; when absent the path is appended.
	ShareCommand []string `json:"share_command" yaml:"share_command"`
}

// AppConfig groups all settings.
type AppConfig struct {
	Output   OutputConfig   `json:"output" yaml:"output"`
	Layout   LayoutOptions  `json:"layout" yaml:"layout"`
	Convert  ConvertConfig  `json:"convert" yaml:"convert"`
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Capture  CaptureConfig  `json:"capture" yaml:"capture"`
	Launcher LauncherConfig `json:"launcher" yaml:"launcher"`
}
