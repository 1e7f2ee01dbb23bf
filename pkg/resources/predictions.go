package resources

import (
	"github.com/biopragmatics/biomap/pkg/mappings"
	"github.com/biopragmatics/biomap/pkg/tsv"
)

// Predictions is the repository for the machine-generated predictions
// table. Beyond the plain table operations it deduplicates incoming
// records against the union of the true, false, and predictions tables
// and supports bulk retraction through a custom filter.
type Predictions struct {
	*Table

	// Curated tables consulted for duplicate detection alongside the
	// predictions table itself. The unsure table is deliberately not
	// part of this set.
	trueMappings  *Table
	falseMappings *Table
}

func newPredictions(table, trueMappings, falseMappings *Table) *Predictions {
	return &Predictions{
		Table:         table,
		trueMappings:  trueMappings,
		falseMappings: falseMappings,
	}
}

// AppendOption configures a prediction append.
type AppendOption func(*appendOptions)

type appendOptions struct {
	deduplicate bool
	sort        bool
}

// WithoutDeduplication appends records even when their canonical key is
// already present in the true, false, or predictions tables.
func WithoutDeduplication() AppendOption {
	return func(o *appendOptions) {
		o.deduplicate = false
	}
}

// WithSort rewrites the whole predictions table in canonical order
// after the append.
func WithSort() AppendOption {
	return func(o *appendOptions) {
		o.sort = true
	}
}

// Append adds records to the predictions table. By default any record
// whose canonical key already appears in the true mappings, false
// mappings, or predictions tables is silently dropped, so a mapping
// that has been confirmed, rejected, or previously proposed is never
// proposed again. Records differing only in confidence or name fields
// still count as duplicates.
func (p *Predictions) Append(records []tsv.Record, opts ...AppendOption) error {
	options := appendOptions{deduplicate: true}
	for _, opt := range opts {
		opt(&options)
	}

	if options.deduplicate {
		known, err := p.knownKeys()
		if err != nil {
			return err
		}
		kept := make([]tsv.Record, 0, len(records))
		for _, record := range records {
			if _, ok := known[mappings.KeyOf(record)]; ok {
				continue
			}
			kept = append(kept, record)
		}
		if dropped := len(records) - len(kept); dropped > 0 {
			p.log.Info().Int("dropped", dropped).Int("kept", len(kept)).
				Msg("dropped already-known predictions")
		}
		records = kept
	}

	return p.Table.Append(records, options.sort)
}

// knownKeys builds the set of canonical keys present across the true
// mappings, false mappings, and predictions tables in a single pass.
func (p *Predictions) knownKeys() (map[mappings.Key]struct{}, error) {
	keys := make(map[mappings.Key]struct{})
	for _, table := range []*Table{p.trueMappings, p.falseMappings, p.Table} {
		records, err := table.Load()
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			keys[mappings.KeyOf(record)] = struct{}{}
		}
	}
	return keys, nil
}

// CustomFilter describes predicted target assignments to retract: it
// maps source prefix to target prefix to source identifier to the
// excluded target identifier.
type CustomFilter map[string]map[string]map[string]string

// Excludes reports whether the filter retracts the given record. A
// missing prefix or identifier at any level means no exclusion.
func (f CustomFilter) Excludes(record tsv.Record) bool {
	byTargetPrefix, ok := f[record[mappings.ColumnSourcePrefix]]
	if !ok {
		return false
	}
	bySourceID, ok := byTargetPrefix[record[mappings.ColumnTargetPrefix]]
	if !ok {
		return false
	}
	excluded, ok := bySourceID[record[mappings.ColumnSourceID]]
	if !ok {
		return false
	}
	return excluded == record[mappings.ColumnTargetID]
}

// Filter reloads the predictions table, removes every record the
// filter excludes, and rewrites the table with the survivors in
// canonical order.
func (p *Predictions) Filter(filter CustomFilter) error {
	records, err := p.Load()
	if err != nil {
		return err
	}
	kept := make([]tsv.Record, 0, len(records))
	for _, record := range records {
		if filter.Excludes(record) {
			continue
		}
		kept = append(kept, record)
	}
	if removed := len(records) - len(kept); removed > 0 {
		p.log.Info().Int("removed", removed).Int("kept", len(kept)).
			Msg("filtered predictions")
	}
	return p.Write(kept)
}
