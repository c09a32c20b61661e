// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Loader fetches and decodes one image source.
type Loader interface {
	Load(ctx context.Context, source string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, source string) (image.Image, error)

// Load calls f(ctx, source).
func (f LoaderFunc) Load(ctx context.Context, source string) (image.Image, error) {
	return f(ctx, source)
}

// DefaultLoader reads http:// and https:// sources with http.DefaultClient
// and everything else from the local filesystem.
var DefaultLoader Loader = LoaderFunc(loadDefault)

func loadDefault(ctx context.Context, source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadURL(ctx, http.DefaultClient, source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func loadURL(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return Decode(resp.Body)
}

// HTTPLoader returns a Loader that fetches every source with client.
// A nil client means http.DefaultClient.
func HTTPLoader(client *http.Client) Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return LoaderFunc(func(ctx context.Context, source string) (image.Image, error) {
		return loadURL(ctx, client, source)
	})
}

// FSLoader returns a Loader that opens sources as paths in fsys.
func FSLoader(fsys fs.FS) Loader {
	return LoaderFunc(func(ctx context.Context, source string) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := fsys.Open(source)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Decode(f)
	})
}

// Decode decodes a PNG, JPEG, GIF, WebP, BMP or TIFF stream.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	Logger().Debug("paint: decoded image", "format", format, "bounds", img.Bounds())
	return img, nil
}

// loadAll fetches every source concurrently, stores each success in cache
// under its source string and returns the failures joined, ordered by source.
func loadAll(ctx context.Context, l Loader, cache *ImageCache, log *slog.Logger, sources []string) error {
	seen := make(map[string]bool, len(sources))
	unique := sources[:0:0]
	for _, s := range sources {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []*LoadError
	)
	for _, src := range unique {
		wg.Add(1)
		go func() {
			defer wg.Done()

			img, err := load(ctx, l, src)
			if err != nil {
				log.Warn("paint: image load failed", "source", src, "err", err)
				mu.Lock()
				errs = append(errs, &LoadError{Source: src, Err: err})
				mu.Unlock()
				return
			}
			cache.Set(src, img)
			log.Info("paint: image loaded", "source", src, "bounds", img.Bounds())
		}()
	}
	wg.Wait()

	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Source < errs[j].Source })
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

func load(ctx context.Context, l Loader, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNoImage
	}
	return img, nil
}
