// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"errors"
	"fmt"
)

// Errors returned by paint.
var (
	// ErrNilCanvas is returned by New when no canvas is supplied.
	ErrNilCanvas = errors.New("paint: nil canvas")

	// ErrUnknownBackend is returned by OpenCanvas for unregistered names.
	ErrUnknownBackend = errors.New("paint: unknown backend")

	// ErrUnknownColor is returned by ParseColor for names and hex strings
	// it cannot interpret.
	ErrUnknownColor = errors.New("paint: unknown color")

	// ErrNoImage is returned by loaders that produced no image.
	ErrNoImage = errors.New("paint: no image")
)

// LoadError records a failed image load in LoadImages.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("paint: load %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
