package digest

// DefaultLower and DefaultUpper are the default size window bounds.
const (
	DefaultLower = 0
	DefaultUpper = 10000
)

// Window is an exclusive size range: a fragment of length n is kept when
// Lower < n < Upper.
type Window struct {
	Lower int
	Upper int
}

// DefaultWindow returns {0, 10000}.
func DefaultWindow() Window { return Window{Lower: DefaultLower, Upper: DefaultUpper} }

// Contains reports Lower < n < Upper.
func (w Window) Contains(n int) bool { return n > w.Lower && n < w.Upper }

// Fragment is the stretch between two adjacent cut sites of different enzymes.
//
// Start is the upstream cut (0-based). End is the downstream cut + 1, so the
// TSV output matches the historical rap format. Length = downstream - upstream.
type Fragment struct {
	SequenceID string
	Start      int
	End        int
	Upstream   string
	Length     int
	Downstream string

	// Optional fragment bases, filled by the pipeline when a writer needs them.
	Seq string
}

// Cut3 returns the downstream cut position.
func (f Fragment) Cut3() int { return f.Start + f.Length }
