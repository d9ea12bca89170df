package enzyme

import (
	"errors"
	"iter"
)

// Catalog is an ordered, read-only list of enzymes. Order is significant:
// enzymes matching at the same position are processed in catalog order.
// Entries are told apart by index, so two entries with the same name and
// site are still different enzymes.
type Catalog struct {
	list []Enzyme
}

// NewCatalog copies ens into a new catalog.
func NewCatalog(ens []Enzyme) (Catalog, error) {
	if len(ens) == 0 {
		return Catalog{}, errors.New("at least one enzyme is required")
	}
	return Catalog{list: append([]Enzyme(nil), ens...)}, nil
}

func (c Catalog) Len() int { return len(c.list) }

// All yields (index, enzyme) in catalog order.
func (c Catalog) All() iter.Seq2[int, Enzyme] {
	return func(yield func(int, Enzyme) bool) {
		for i, e := range c.list {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Names lists enzyme names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.list))
	for i, e := range c.list {
		out[i] = e.Name
	}
	return out
}
