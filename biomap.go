// Package biomap manages curated tables of biological entity mappings.
//
// Four tab-separated tables live in a configured resource directory:
// confirmed-true mappings, confirmed-false mappings, mappings a curator
// was unsure about, and machine-generated predictions. The library
// keeps them mutually consistent: appended predictions never duplicate
// an entry already confirmed, rejected, or previously predicted, and
// every write leaves a table in canonical sorted order so diffs stay
// deterministic.
//
// Example usage:
//
//	bm, err := biomap.New(biomap.WithDir("resources"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Propose predictions; already-known mappings are dropped.
//	err = bm.Resources().AppendPredictions(preds)
//
//	// Normalize every table for a clean diff.
//	err = bm.Lint()
package biomap

import (
	"github.com/biopragmatics/biomap/pkg/resources"
)

// Biomap provides access to the curated mapping tables.
type Biomap interface {
	// Resources returns the table repositories.
	Resources() *resources.Resources

	// Lint reloads and rewrites every table in canonical sorted order.
	Lint() error
}

// New creates a Biomap over a resource directory. A resolver must be
// configured with WithDir or WithResolver.
func New(opts ...Option) (Biomap, error) {
	c := &client{config: defaultConfig()}
	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, err
		}
	}
	if err := c.config.validate(); err != nil {
		return nil, err
	}

	c.resources = resources.New(c.config.resolver, resources.WithLogger(c.config.log))
	return c, nil
}
