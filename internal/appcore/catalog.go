package appcore

import (
	"fmt"

	"rap-core/enzyme"
	"rap/internal/cli"
)

// BuildCatalog resolves the --enzyme specs in order, then appends the
// entries of file when it is set.
func BuildCatalog(specs []string, file string) (enzyme.Catalog, error) {
	var ens []enzyme.Enzyme
	for _, s := range specs {
		e, err := enzyme.Resolve(s)
		if err != nil {
			return enzyme.Catalog{}, err
		}
		ens = append(ens, e)
	}
	if file != "" {
		more, err := enzyme.LoadFile(file)
		if err != nil {
			return enzyme.Catalog{}, err
		}
		ens = append(ens, more...)
	}
	cat, err := enzyme.NewCatalog(ens)
	if err != nil {
		return enzyme.Catalog{}, &cli.ConfigError{Err: fmt.Errorf("enzymes: %w", err)}
	}
	return cat, nil
}
