// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"errors"
	"image"
)

// TestingT is the part of *testing.T that Assert uses.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// AssertDir is the directory Assert keeps its references in.
var AssertDir = "testdata"

// Assert checks img against the reference name in AssertDir using the
// default compare options. A missing reference is created. In update mode
// (see UpdateEnv) the reference is replaced. On mismatch the test fails and
// the rejected and difference images are written next to the reference.
func Assert(t TestingT, img image.Image, name string) {
	t.Helper()
	store := NewStore(AssertDir)

	if UpdateFromEnv() {
		if err := store.Save(name, img); err != nil {
			t.Errorf("snapshot: updating %s: %v", name, err)
		}
		return
	}

	want, err := store.Load(name)
	if errors.Is(err, ErrNoReference) {
		if err := store.Save(name, img); err != nil {
			t.Errorf("snapshot: creating %s: %v", name, err)
		}
		return
	}
	if err != nil {
		t.Errorf("%v", err)
		return
	}

	cmp := Compare(img, want, DefaultCompareOptions())
	if cmp.Match {
		if err := store.ClearFailure(name); err != nil {
			t.Errorf("%v", err)
		}
		return
	}
	if err := store.SaveFailure(name, img, cmp.Diff); err != nil {
		t.Errorf("%v", err)
	}
	if cmp.SizeMismatch {
		t.Errorf("snapshot %s: size %v, want %v; see %s",
			name, img.Bounds().Size(), want.Bounds().Size(), store.FailPath(name))
		return
	}
	t.Errorf("snapshot %s: %d of %d pixels differ (%.3f%%); see %s",
		name, cmp.Mismatched, cmp.Total, cmp.Ratio*100, store.DiffPath(name))
}
