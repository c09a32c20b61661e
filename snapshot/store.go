// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNoReference is returned by Store.Load when no reference image exists.
	ErrNoReference = errors.New("snapshot: no reference image")

	// ErrDuplicateSlug is returned by Runner.Run when two cases would share
	// a reference file.
	ErrDuplicateSlug = errors.New("snapshot: duplicate case slug")
)

const (
	ext     = ".png"
	failExt = ".fail.png"
	diffExt = ".diff.png"
)

// Store keeps reference images in a directory, one PNG per case.
// Next to a changed reference it keeps the rejected image (".fail.png")
// and a difference image (".diff.png").
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir. The directory is created on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Slug turns a case name into a file name: accents are stripped, letters
// lowercased, and every run of other characters becomes a single '-'.
// A name with no letters or digits becomes "unnamed-" followed by a hash
// of the name.
//
//	Slug("Angle + anchor + scale + alpha") == "angle-anchor-scale-alpha"
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, name)
	if err != nil {
		s = name
	}
	s = cases.Lower(language.Und).String(s)

	var b strings.Builder
	dash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		h := fnv.New32a()
		_, _ = h.Write([]byte(name))
		return fmt.Sprintf("unnamed-%08x", h.Sum32())
	}
	return out
}

// Path returns the reference file of the case name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, Slug(name)+ext)
}

// FailPath returns where the rejected image of a changed case is written.
func (s *Store) FailPath(name string) string {
	return filepath.Join(s.Dir, Slug(name)+failExt)
}

// DiffPath returns where the difference image of a changed case is written.
func (s *Store) DiffPath(name string) string {
	return filepath.Join(s.Dir, Slug(name)+diffExt)
}

// Exists reports whether a reference image exists for name.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load reads the reference image of name.
func (s *Store) Load(name string) (image.Image, error) {
	img, err := imgio.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoReference, name)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", name, err)
	}
	return img, nil
}

// Save writes img as the reference of name and removes stale failure files.
func (s *Store) Save(name string, img image.Image) error {
	if err := s.write(s.Path(name), img); err != nil {
		return err
	}
	return s.ClearFailure(name)
}

// SaveFailure writes the rejected and difference images of name.
func (s *Store) SaveFailure(name string, got, diff image.Image) error {
	if err := s.write(s.FailPath(name), got); err != nil {
		return err
	}
	if diff == nil {
		return nil
	}
	return s.write(s.DiffPath(name), diff)
}

// ClearFailure removes the failure files of name, if any.
func (s *Store) ClearFailure(name string) error {
	for _, p := range []string{s.FailPath(name), s.DiffPath(name)} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	return nil
}

// Remove deletes the reference and failure files of name.
func (s *Store) Remove(name string) error {
	if err := os.Remove(s.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("snapshot: %w", err)
	}
	return s.ClearFailure(name)
}

// Slugs lists the stored references, sorted.
func (s *Store) Slugs() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	var out []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, ext) ||
			strings.HasSuffix(n, failExt) || strings.HasSuffix(n, diffExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(n, ext))
	}
	slices.Sort(out)
	return out, nil
}

func (s *Store) write(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", filepath.Base(path), err)
	}
	return nil
}
