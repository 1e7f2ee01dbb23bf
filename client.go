package biomap

import (
	"github.com/biopragmatics/biomap/pkg/resources"
)

// Compile-time interface check to ensure proper implementation.
var _ Biomap = (*client)(nil)

// client is the internal implementation of the Biomap interface.
type client struct {
	config    *config
	resources *resources.Resources
}

// Resources returns the table repositories.
func (c *client) Resources() *resources.Resources {
	return c.resources
}

// Lint reloads and rewrites every table in canonical sorted order.
func (c *client) Lint() error {
	return c.resources.Lint()
}
