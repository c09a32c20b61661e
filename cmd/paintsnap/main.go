// Command paintsnap renders the gallery cases and compares them with the
// reference images in a directory.
//
//	paintsnap -dir testdata/snapshots          # check
//	paintsnap -dir testdata/snapshots -update  # accept every render
//	paintsnap -run 'rect|path' -v              # check a subset, verbose
//
// The exit status is 1 when a case changed, has no reference or fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"text/tabwriter"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/gallery"
	"github.com/gogpu/paint/snapshot"
)

func main() {
	var (
		dir     = flag.String("dir", "testdata/snapshots", "reference image directory")
		update  = flag.Bool("update", snapshot.UpdateFromEnv(), "store every render as the new reference")
		run     = flag.String("run", "", "only cases whose name matches this regexp")
		backend = flag.String("backend", "raster", "backend to render with")
		verbose = flag.Bool("v", false, "log every case")
		list    = flag.Bool("list", false, "list the cases and exit")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cases, err := selectCases(*run)
	if err != nil {
		log.Fatalf("paintsnap: %v", err)
	}
	if *list {
		for _, c := range cases {
			fmt.Printf("%-40s %s\n", c.Name, snapshot.Slug(c.Name))
		}
		return
	}
	if !paint.IsRegistered(*backend) {
		log.Fatalf("paintsnap: unknown backend %q (have %v)", *backend, paint.Backends())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := snapshot.NewRunner(*dir)
	r.Update = *update
	r.Render.Backend = *backend

	results, err := r.Run(ctx, cases...)
	report(results)
	if err != nil {
		log.Printf("paintsnap: %v", err)
	}
	if err != nil || snapshot.Failed(results) {
		os.Exit(1)
	}
}

func selectCases(pattern string) ([]snapshot.Case, error) {
	all := gallery.Cases()
	if pattern == "" {
		return all, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad -run pattern: %w", err)
	}
	var out []snapshot.Case
	for _, c := range all {
		if re.MatchString(c.Name) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no case matches %q", pattern)
	}
	return out, nil
}

func report(results []snapshot.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCASE\tMISMATCH\tCOMMANDS")
	for _, res := range results {
		mismatch := "-"
		if res.Comparison != nil {
			mismatch = fmt.Sprintf("%.3f%%", res.Comparison.Ratio*100)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", res.Status, res.Case, mismatch, res.Commands)
	}
	_ = w.Flush()
}
