// Package resources provides the per-table repositories over the
// curated mapping tables: load, append, write, and lint for the true,
// false, and unsure tables, plus deduplicating append and bulk
// filtering for the predictions table.
//
// All operations are sequential flat-file I/O by a single process.
// Every write path leaves the table in canonical sorted order so file
// diffs stay deterministic.
package resources

import "path/filepath"

// Fixed file names of the tables within the resource directory.
const (
	TrueMappingsFile   = "mappings.tsv"
	FalseMappingsFile  = "incorrect.tsv"
	UnsureMappingsFile = "unsure.tsv"
	PredictionsFile    = "predictions.tsv"
	CuratorsFile       = "curators.tsv"
)

// Resolver maps a fixed table file name to its full path. The
// repositories never compute paths themselves.
type Resolver interface {
	Path(name string) string
}

// Dir is the standard Resolver: every table lives directly inside one
// resource directory.
type Dir string

// Path implements Resolver.
func (d Dir) Path(name string) string {
	return filepath.Join(string(d), name)
}
