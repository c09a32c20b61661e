// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package snapshot renders drawing cases and compares them with reference
// images kept on disk.
//
// A Case draws onto a paint.Surface. Render records the calls, replays them
// onto a fresh canvas of the chosen backend (raster by default) and returns
// the pixels. A Runner checks a list of cases against a Store:
//
//	r := snapshot.NewRunner("testdata/snapshots")
//	results, err := r.Run(ctx, cases...)
//	if snapshot.Failed(results) {
//	    // inspect the .fail.png and .diff.png files
//	}
//
// Images match when at most 0.1% of the pixels differ by more than the
// tolerance. By default only brightness and alpha are compared.
//
// Setting PAINT_UPDATE_SNAPSHOTS=true accepts every render as the new
// reference.
package snapshot
