package enzyme

import (
	"fmt"
	"strconv"
	"strings"
)

// SpecError reports an enzyme definition that could not be accepted.
type SpecError struct {
	Spec string
	Err  error
}

func (e *SpecError) Error() string { return fmt.Sprintf("`%s`: invalid enzyme: %v", e.Spec, e.Err) }
func (e *SpecError) Unwrap() error { return e.Err }

// ParseSpec parses NAME:SEQ:POS.
func ParseSpec(s string) (Enzyme, error) {
	f := strings.Split(s, ":")
	if len(f) != 3 {
		return Enzyme{}, &SpecError{Spec: s, Err: fmt.Errorf("expected 3 colon separated fields")}
	}
	pos, err := strconv.Atoi(strings.TrimSpace(f[2]))
	if err != nil {
		return Enzyme{}, &SpecError{Spec: s, Err: fmt.Errorf("bad cut position %q", f[2])}
	}
	e, err := New(f[0], strings.TrimSpace(f[1]), pos)
	if err != nil {
		return Enzyme{}, &SpecError{Spec: s, Err: err}
	}
	return e, nil
}

// Resolve accepts either a full NAME:SEQ:POS spec or the bare name of a
// built-in enzyme.
func Resolve(s string) (Enzyme, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		return ParseSpec(s)
	}
	if e, ok := Lookup(s); ok {
		return e, nil
	}
	return Enzyme{}, &SpecError{Spec: s, Err: fmt.Errorf("unknown enzyme name (use NAME:SEQ:POS or --list-enzymes)")}
}
