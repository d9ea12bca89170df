// internal/pipeline/scanner.go
package pipeline

import "rap-core/digest"

// Scanner is the minimal capability the pipeline needs.
// Any scanner (including fakes in tests) can satisfy this.
type Scanner interface {
	Scan(id string, seq []byte, emit func(digest.Fragment) error) error
}
