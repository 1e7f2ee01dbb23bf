package mappings

import (
	"sort"

	"github.com/biopragmatics/biomap/pkg/tsv"
)

// Key is the canonical identity of a mapping: the 7-tuple that defines
// both the total sort order across tables and cross-table duplicate
// membership. The two descriptive name columns and the prediction
// confidence are deliberately excluded, so records that differ only in
// those fields are the same mapping.
type Key struct {
	SourcePrefix string
	SourceID     string
	Relation     string
	TargetPrefix string
	TargetID     string
	Type         string
	Source       string
}

// KeyOf extracts the canonical key from a record of either schema.
func KeyOf(record tsv.Record) Key {
	return Key{
		SourcePrefix: record[ColumnSourcePrefix],
		SourceID:     record[ColumnSourceID],
		Relation:     record[ColumnRelation],
		TargetPrefix: record[ColumnTargetPrefix],
		TargetID:     record[ColumnTargetID],
		Type:         record[ColumnType],
		Source:       record[ColumnSource],
	}
}

// Less reports whether k orders before other under case-sensitive
// lexicographic comparison of the key fields in order.
func (k Key) Less(other Key) bool {
	if k.SourcePrefix != other.SourcePrefix {
		return k.SourcePrefix < other.SourcePrefix
	}
	if k.SourceID != other.SourceID {
		return k.SourceID < other.SourceID
	}
	if k.Relation != other.Relation {
		return k.Relation < other.Relation
	}
	if k.TargetPrefix != other.TargetPrefix {
		return k.TargetPrefix < other.TargetPrefix
	}
	if k.TargetID != other.TargetID {
		return k.TargetID < other.TargetID
	}
	if k.Type != other.Type {
		return k.Type < other.Type
	}
	return k.Source < other.Source
}

// Sort orders records in place by canonical key, ascending. The sort
// is stable so records with equal keys keep their relative order and a
// second pass over sorted input is a no-op.
func Sort(records []tsv.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return KeyOf(records[i]).Less(KeyOf(records[j]))
	})
}

// Sorted returns a canonically sorted copy, leaving the input untouched.
func Sorted(records []tsv.Record) []tsv.Record {
	out := make([]tsv.Record, len(records))
	copy(out, records)
	Sort(out)
	return out
}

// IsSorted reports whether records are non-decreasing under the
// canonical key order.
func IsSorted(records []tsv.Record) bool {
	return sort.SliceIsSorted(records, func(i, j int) bool {
		return KeyOf(records[i]).Less(KeyOf(records[j]))
	})
}
