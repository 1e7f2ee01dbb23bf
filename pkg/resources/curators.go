package resources

import "github.com/biopragmatics/biomap/pkg/tsv"

// Curators is the read-only reference table of people attributed as
// mapping sources or reviewers. No schema constraints apply beyond
// header plus tab-delimited rows, and this subsystem never writes it.
type Curators struct {
	path string
}

// Path returns the curators file path.
func (c *Curators) Path() string {
	return c.path
}

// Load reads the curators table.
func (c *Curators) Load() ([]tsv.Record, error) {
	return tsv.Load(c.path)
}
