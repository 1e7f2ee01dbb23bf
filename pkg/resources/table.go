package resources

import (
	"github.com/rs/zerolog"

	"github.com/biopragmatics/biomap/pkg/mappings"
	"github.com/biopragmatics/biomap/pkg/tsv"
)

// Table is the repository for one curated mapping table. Records pass
// through the canonical sort on every write path; duplicates are never
// removed here (only the prediction append path deduplicates).
type Table struct {
	name   string
	path   string
	header []string
	log    zerolog.Logger
}

func newTable(name, path string, header []string, log zerolog.Logger) *Table {
	return &Table{
		name:   name,
		path:   path,
		header: header,
		log:    log.With().Str("table", name).Logger(),
	}
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// Path returns the table's file path.
func (t *Table) Path() string {
	return t.path
}

// Load reads all records from the table file. A missing file is an
// error matching errors.ErrNotFound.
func (t *Table) Load() ([]tsv.Record, error) {
	return tsv.Load(t.path)
}

// Append writes records to the end of the table, canonically sorted
// among themselves. If sort is true the whole table is rewritten in
// full canonical order afterwards.
func (t *Table) Append(records []tsv.Record, sort bool) error {
	if err := tsv.Write(t.header, mappings.Sorted(records), t.path, tsv.Append); err != nil {
		return err
	}
	t.log.Debug().Int("rows", len(records)).Msg("appended records")
	if sort {
		return t.Lint()
	}
	return nil
}

// Write replaces the table's content with records, canonically sorted.
func (t *Table) Write(records []tsv.Record) error {
	return tsv.Write(t.header, mappings.Sorted(records), t.path, tsv.Overwrite)
}

// Lint reloads the table and rewrites it in canonical sorted order.
// Linting an already-sorted table is a byte-identical no-op. Duplicate
// rows are reordered, never removed.
func (t *Table) Lint() error {
	records, err := t.Load()
	if err != nil {
		return err
	}
	if err := t.Write(records); err != nil {
		return err
	}
	t.log.Debug().Int("rows", len(records)).Msg("linted table")
	return nil
}
