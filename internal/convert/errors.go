// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when Convert is called with no images.
var ErrEmptyInput = errors.New("no images to convert")

// ImageReadError reports an image whose bytes could not be read or decoded.
type ImageReadError struct {
	// Index is the position of the image in the input list.
	Index int
	Path  string
	Err   error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("reading image %d (%s): %v", e.Index+1, e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error { return e.Err }

// StorageWriteError reports a failure to serialize, verify, or write the
// document. No file is left at Path when this is returned.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// DirectoryUnavailableError reports that the output directory could not be
// resolved or created.
type DirectoryUnavailableError struct {
	Err error
}

func (e *DirectoryUnavailableError) Error() string {
	return fmt.Sprintf("output directory unavailable: %v", e.Err)
}

func (e *DirectoryUnavailableError) Unwrap() error { return e.Err }

// ValidationError reports layout options rejected before any page is built.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
