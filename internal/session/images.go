// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"

	"github.com/pdiddy/photopdf/pkg/types"
)

// ImageList is the ordered set of images a document will be built from.
// Positions are always contiguous from 0 and a handle appears at most once.
type ImageList struct {
	paths []string
}

// Add appends handles that are not already in the list and returns how many
// were added.
func (l *ImageList) Add(handles ...string) int {
	added := 0
	for _, h := range handles {
		if h == "" || slice.Contains(l.paths, h) {
			continue
		}
		l.paths = append(l.paths, h)
		added++
	}
	return added
}

// AddSources appends the paths of srcs, in their given order.
func (l *ImageList) AddSources(srcs []types.ImageSource) int {
	return l.Add(slice.Map(srcs, func(_ int, s types.ImageSource) string { return s.Path })...)
}

// Remove deletes the image at index i.
func (l *ImageList) Remove(i int) error {
	paths, err := slice.Delete(l.paths, i)
	if err != nil {
		return fmt.Errorf("removing image %d: %w", i, err)
	}
	l.paths = paths
	return nil
}

// Move relocates the image at from so that it ends up at index to.
func (l *ImageList) Move(from, to int) error {
	if from < 0 || from >= len(l.paths) || to < 0 || to >= len(l.paths) {
		return fmt.Errorf("moving image %d to %d: index out of range [0,%d)", from, to, len(l.paths))
	}
	if from == to {
		return nil
	}
	h := l.paths[from]
	paths, err := slice.Delete(l.paths, from)
	if err != nil {
		return fmt.Errorf("moving image %d: %w", from, err)
	}
	paths, err = slice.Add(paths, h, to)
	if err != nil {
		return fmt.Errorf("moving image to %d: %w", to, err)
	}
	l.paths = paths
	return nil
}

// Clear empties the list.
func (l *ImageList) Clear() { l.paths = nil }

// Len returns the number of images.
func (l *ImageList) Len() int { return len(l.paths) }

// Items returns the images as sources indexed by their current position.
// The returned slice is a copy.
func (l *ImageList) Items() []types.ImageSource {
	return slice.Map(l.paths, func(i int, p string) types.ImageSource {
		return types.ImageSource{Index: i, Path: p}
	})
}
