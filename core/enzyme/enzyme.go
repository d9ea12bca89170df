// core/enzyme/enzyme.go
package enzyme

import (
	"fmt"
	"strings"
)

// Enzyme is a restriction enzyme: a recognition site plus the top-strand
// cut position, 0 being the position before the first base of the site.
type Enzyme struct {
	Name        string
	Recognition string // upper-case ACGT
	CutForward  int
	CutReverse  int // Len() - CutForward
}

// Len returns the recognition site length.
func (e Enzyme) Len() int { return len(e.Recognition) }

func (e Enzyme) String() string {
	return fmt.Sprintf("%s:%s:%d", e.Name, e.Recognition, e.CutForward)
}

// New validates and normalizes one enzyme definition.
func New(name, site string, cut int) (Enzyme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Enzyme{}, fmt.Errorf("empty enzyme name")
	}
	seq, err := normalizeSite(site)
	if err != nil {
		return Enzyme{}, err
	}
	if cut < 0 || cut > len(seq) {
		return Enzyme{}, fmt.Errorf("cut position %d not in sequence (0..%d)", cut, len(seq))
	}
	return Enzyme{
		Name:        name,
		Recognition: seq,
		CutForward:  cut,
		CutReverse:  len(seq) - cut,
	}, nil
}

// normalizeSite upper-cases site and rejects anything outside ACGT.
func normalizeSite(site string) (string, error) {
	if site == "" {
		return "", fmt.Errorf("empty recognition sequence")
	}
	b := []byte(site)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
			b[i] = c
		}
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("invalid base %q at %d; expected a string of ACGTs", site[i], i+1)
		}
	}
	return string(b), nil
}
