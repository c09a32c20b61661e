// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gogpu/paint"
)

// UpdateEnv is the environment variable that switches runners and Assert
// into update mode when set to a true value ("1", "true", ...).
const UpdateEnv = "PAINT_UPDATE_SNAPSHOTS"

// UpdateFromEnv reports whether UpdateEnv asks for update mode.
func UpdateFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(UpdateEnv))
	return err == nil && v
}

// Status is the outcome of one case.
type Status uint8

const (
	// StatusUnchanged means the render matches the reference.
	StatusUnchanged Status = iota
	// StatusChanged means the render differs from the reference.
	StatusChanged
	// StatusMissing means there is no reference yet.
	StatusMissing
	// StatusAccepted means the render was stored as the new reference.
	StatusAccepted
	// StatusError means the case could not be rendered or compared.
	StatusError
)

var statusNames = [...]string{
	StatusUnchanged: "unchanged",
	StatusChanged:   "changed",
	StatusMissing:   "missing",
	StatusAccepted:  "accepted",
	StatusError:     "error",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Failed reports whether the status should fail a run.
func (s Status) Failed() bool {
	return s == StatusChanged || s == StatusMissing || s == StatusError
}

// Result describes one case of a run.
type Result struct {
	Case   string
	Status Status

	// Comparison is set when a reference existed.
	Comparison *Comparison

	// Commands is the number of canvas calls the case produced.
	Commands int

	Err error
}

// Runner renders cases and checks them against a Store.
type Runner struct {
	Store   *Store
	Render  RenderOptions
	Compare CompareOptions

	// Update stores every render as the new reference.
	Update bool
}

// NewRunner returns a runner over the references in dir with default
// render and compare options. Update mode follows UpdateEnv.
func NewRunner(dir string) *Runner {
	return &Runner{
		Store:   NewStore(dir),
		Render:  DefaultRenderOptions(),
		Compare: DefaultCompareOptions(),
		Update:  UpdateFromEnv(),
	}
}

// Run checks every case in order. A changed case leaves its rejected and
// difference images next to the reference. The error joins the errors of
// cases that could not be processed. Cases whose names share a slug are
// rejected before anything is rendered.
func (r *Runner) Run(ctx context.Context, cases ...Case) ([]Result, error) {
	if err := checkSlugs(cases); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cases))
	var errs []error
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.run(ctx, c)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		r.log(res)
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func checkSlugs(cases []Case) error {
	seen := make(map[string]string, len(cases))
	for _, c := range cases {
		slug := Slug(c.Name)
		if prev, ok := seen[slug]; ok {
			return fmt.Errorf("%w: %q and %q both use %s%s", ErrDuplicateSlug, prev, c.Name, slug, ext)
		}
		seen[slug] = c.Name
	}
	return nil
}

// Accept renders c and stores it as the new reference.
func (r *Runner) Accept(ctx context.Context, c Case) (Result, error) {
	res := Result{Case: c.Name}
	frame, err := Render(ctx, c, r.Render)
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res, err
	}
	res.Commands = frame.Recording.Len()
	if err := r.Store.Save(c.Name, frame.Image); err != nil {
		res.Status, res.Err = StatusError, err
		return res, err
	}
	res.Status = StatusAccepted
	r.log(res)
	return res, nil
}

func (r *Runner) run(ctx context.Context, c Case) Result {
	res := Result{Case: c.Name}
	frame, err := Render(ctx, c, r.Render)
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}
	res.Commands = frame.Recording.Len()

	if r.Update {
		if err := r.Store.Save(c.Name, frame.Image); err != nil {
			res.Status, res.Err = StatusError, err
			return res
		}
		res.Status = StatusAccepted
		return res
	}

	want, err := r.Store.Load(c.Name)
	if errors.Is(err, ErrNoReference) {
		res.Status = StatusMissing
		return res
	}
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}

	cmp := Compare(frame.Image, want, r.Compare)
	res.Comparison = &cmp
	if cmp.Match {
		res.Status = StatusUnchanged
		if err := r.Store.ClearFailure(c.Name); err != nil {
			res.Err = err
		}
		return res
	}
	res.Status = StatusChanged
	if err := r.Store.SaveFailure(c.Name, frame.Image, cmp.Diff); err != nil {
		res.Err = err
	}
	return res
}

func (r *Runner) log(res Result) {
	l := paint.Logger()
	switch res.Status {
	case StatusUnchanged:
		l.Debug("snapshot unchanged", "case", res.Case)
	case StatusChanged:
		l.Warn("snapshot changed", "case", res.Case,
			"mismatch", res.Comparison.Ratio, "fail", r.Store.FailPath(res.Case))
	case StatusMissing:
		l.Warn("snapshot missing", "case", res.Case, "path", r.Store.Path(res.Case))
	case StatusAccepted:
		l.Info("snapshot accepted", "case", res.Case, "path", r.Store.Path(res.Case))
	case StatusError:
		l.Error("snapshot failed", "case", res.Case, "err", res.Err)
	}
}

// Failed reports whether any result should fail a run.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status.Failed() {
			return true
		}
	}
	return false
}
