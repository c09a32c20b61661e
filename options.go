// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import "log/slog"

// Option configures a Surface during creation.
//
// Example:
//
//	s, err := paint.New(canvas,
//	    paint.WithView(paint.ViewTransform{Scale: paint.Float(2)}),
//	    paint.WithLoader(paint.FSLoader(assets)),
//	)
type Option func(*options)

// options holds optional Surface configuration.
type options struct {
	view   ViewTransform
	images *ImageCache
	loader Loader
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		view:   IdentityView(),
		images: nil, // created by New
		loader: nil, // DefaultLoader
		logger: nil, // package logger
	}
}

// WithView sets the initial view transform.
func WithView(v ViewTransform) Option {
	return func(o *options) {
		o.view = v
	}
}

// WithImageCache shares an image cache between surfaces.
// Images loaded through one surface become drawable by name on the others.
func WithImageCache(c *ImageCache) Option {
	return func(o *options) {
		o.images = c
	}
}

// WithLoader replaces the loader used by LoadImages.
func WithLoader(l Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithLogger sets a logger for this surface only.
// Without it the surface logs through [Logger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
