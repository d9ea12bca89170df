// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"log/slog"

	"rap-core/digest"
	"rap-core/fasta"
)

// Config controls the scanning pipeline.
type Config struct {
	NeedSeq bool         // fill Fragment.Seq from the record
	Logger  *slog.Logger // per-record debug lines; nil = discard
}

// Stats summarizes one pipeline run.
type Stats struct {
	Files     int `json:"files"`
	Records   int `json:"records"`
	Bases     int `json:"bases"`
	Fragments int `json:"fragments"`
}

// ForEachFragment reads seqFiles in order, scans each record with sc and
// calls visit for every fragment. A record is fully scanned before the next
// one is read, so at most one record is held in memory and output order is
// file, then position, then catalog order. Every opened input is closed
// before return. It returns the first error encountered (including context
// cancellation).
func ForEachFragment(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc Scanner,
	visit func(digest.Fragment) error,
) (Stats, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var st Stats
	for _, fa := range seqFiles {
		err := fasta.Each(ctx, fa, func(rec fasta.Record) error {
			n := 0
			err := sc.Scan(rec.ID, rec.Seq, func(f digest.Fragment) error {
				if cfg.NeedSeq && f.Length > 0 && f.Cut3() <= len(rec.Seq) {
					f.Seq = string(rec.Seq[f.Start:f.Cut3()])
				}
				n++
				return visit(f)
			})
			if err != nil {
				return err
			}
			st.Records++
			st.Bases += len(rec.Seq)
			st.Fragments += n
			log.Debug("record scanned", "file", fa, "id", rec.ID, "bases", len(rec.Seq), "fragments", n)
			return nil
		})
		if err != nil {
			return st, err
		}
		st.Files++
	}
	return st, ctx.Err()
}
