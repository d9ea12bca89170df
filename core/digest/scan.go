// core/digest/scan.go
package digest

import (
	"iter"

	"rap-core/enzyme"
)

// Scanner holds a compiled catalog and size window. It keeps no per-record
// state, so one Scanner can be reused for every record of a run.
type Scanner struct {
	sites [][]byte
	ens   []enzyme.Enzyme
	win   Window
}

// New compiles cat for scanning.
func New(cat enzyme.Catalog, win Window) *Scanner {
	s := &Scanner{win: win}
	for _, e := range cat.All() {
		s.ens = append(s.ens, e)
		s.sites = append(s.sites, []byte(e.Recognition))
	}
	return s
}

// state is the last match seen in the current record.
type state struct {
	enz int // catalog index; -1 = none yet
	pos int
}

// Scan walks seq and calls emit for every qualifying fragment in position
// order, ties broken by catalog order. It stops at the first emit error.
func (s *Scanner) Scan(id string, seq []byte, emit func(Fragment) error) error {
	last := state{enz: -1}
	for i := range seq {
		for j, site := range s.sites {
			if !matchAt(seq, i, site) {
				continue
			}
			// pair only with a different catalog entry
			if last.enz >= 0 && last.enz != j {
				pos5 := last.pos + s.ens[last.enz].CutForward
				pos3 := i + s.ens[j].CutForward
				if n := pos3 - pos5; s.win.Contains(n) {
					f := Fragment{
						SequenceID: id,
						Start:      pos5,
						End:        pos3 + 1,
						Upstream:   s.ens[last.enz].Name,
						Length:     n,
						Downstream: s.ens[j].Name,
					}
					if err := emit(f); err != nil {
						return err
					}
				}
			}
			last = state{enz: j, pos: i}
		}
	}
	return nil
}

// Fragments is the lazy form of Scan.
func (s *Scanner) Fragments(id string, seq []byte) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		_ = s.Scan(id, seq, func(f Fragment) error {
			if !yield(f) {
				return errStop
			}
			return nil
		})
	}
}

// Collect returns every fragment of seq.
func (s *Scanner) Collect(id string, seq []byte) []Fragment {
	var out []Fragment
	for f := range s.Fragments(id, seq) {
		out = append(out, f)
	}
	return out
}

type stopError struct{}

func (stopError) Error() string { return "stop" }

var errStop error = stopError{}

// matchAt reports whether site occurs at seq[i:], ignoring case. A site
// that would run past the end of seq never matches.
func matchAt(seq []byte, i int, site []byte) bool {
	if len(seq)-i < len(site) {
		return false
	}
	for k, c := range site {
		if upper(seq[i+k]) != c {
			return false
		}
	}
	return true
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
