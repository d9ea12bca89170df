// internal/appcore/core.go
package appcore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rap-core/digest"
	"rap/internal/cli"
	"rap/internal/pipeline"
	"rap/internal/store"
	"rap/internal/writers"
)

// Result summarizes a finished run.
type Result struct {
	Stats pipeline.Stats
	RunID string // set when --db is used
}

// Run digests every input in o.SeqFiles and streams the fragments to out in
// o.Output format. With o.DBPath set the run is also recorded in SQLite.
// The returned error is classified by cmdutil.ExitCode.
func Run(ctx context.Context, out io.Writer, log *slog.Logger, o cli.Options) (Result, error) {
	var res Result

	cat, err := BuildCatalog(o.Enzymes, o.EnzymeFile)
	if err != nil {
		return res, err
	}
	win := o.Window()
	if win.Lower >= win.Upper {
		log.Warn("size window is empty, no fragment can be reported", "lower", win.Lower, "upper", win.Upper)
	}
	sc := digest.New(cat, win)

	var run *store.Run
	if o.DBPath != "" {
		st, err := store.Open(o.DBPath)
		if err != nil {
			return res, err
		}
		defer st.Close()

		enz := make([]string, 0, cat.Len())
		for _, e := range cat.All() {
			enz = append(enz, e.String())
		}
		run, err = st.BeginRun(ctx, store.RunInfo{Window: win, Enzymes: enz, Inputs: o.SeqFiles})
		if err != nil {
			return res, err
		}
		res.RunID = run.ID
	}

	// The writer and the scan share gctx: a failed write cancels the scan
	// at the next fragment instead of after the last record.
	g, gctx := errgroup.WithContext(ctx)
	inCh := make(chan digest.Fragment, 64)
	g.Go(func() error {
		if err := writers.WriteFragments(out, o.Output, writers.Options{Header: o.Header}, inCh); err != nil {
			return fmt.Errorf("write %s output: %w", o.Output, err)
		}
		return nil
	})
	var stats pipeline.Stats
	g.Go(func() error {
		defer close(inCh)
		var err error
		stats, err = pipeline.ForEachFragment(gctx,
			pipeline.Config{NeedSeq: writers.NeedSeq(o.Output), Logger: log},
			o.SeqFiles, sc,
			func(f digest.Fragment) error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if run != nil {
					if err := run.Add(gctx, f); err != nil {
						return err
					}
				}
				select {
				case inCh <- f:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			},
		)
		return err
	})
	err = g.Wait()
	res.Stats = stats

	// A closed stdout (`rap ... | head`) ends the run early but successfully.
	// The partial run is not recorded.
	brokenPipe := writers.IsBrokenPipe(err)
	if run != nil {
		if err != nil {
			_ = run.Rollback()
			res.RunID = ""
		} else if err := run.Commit(ctx, stats.Records, stats.Bases); err != nil {
			return res, err
		}
	}
	if brokenPipe {
		log.Debug("output closed early", "records", stats.Records, "fragments", stats.Fragments)
		return res, nil
	}
	if err != nil {
		return res, err
	}
	log.Debug("digest finished",
		"files", stats.Files, "records", stats.Records,
		"bases", stats.Bases, "fragments", stats.Fragments,
		"enzymes", cat.Names())
	if res.RunID != "" {
		log.Info("run recorded", "db", o.DBPath, "run_id", res.RunID)
	}
	return res, nil
}

