package mappings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biopragmatics/biomap/pkg/mappings"
	"github.com/biopragmatics/biomap/pkg/tsv"
)

func TestKeyOfIgnoresNamesAndConfidence(t *testing.T) {
	a := testPrediction()
	b := a
	b.SourceName = "different display name"
	b.TargetName = "another display name"
	b.Confidence = 0.01

	assert.Equal(t, mappings.KeyOf(a.Record()), mappings.KeyOf(b.Record()))
}

func TestKeyOfDistinguishesIdentityFields(t *testing.T) {
	base := testMapping()

	tests := []struct {
		name   string
		mutate func(*mappings.Mapping)
	}{
		{name: "source prefix", mutate: func(m *mappings.Mapping) { m.SourcePrefix = "other" }},
		{name: "source identifier", mutate: func(m *mappings.Mapping) { m.SourceID = "other" }},
		{name: "relation", mutate: func(m *mappings.Mapping) { m.Relation = "skos:broadMatch" }},
		{name: "target prefix", mutate: func(m *mappings.Mapping) { m.TargetPrefix = "other" }},
		{name: "target identifier", mutate: func(m *mappings.Mapping) { m.TargetID = "other" }},
		{name: "type", mutate: func(m *mappings.Mapping) { m.Type = "manual" }},
		{name: "source", mutate: func(m *mappings.Mapping) { m.Source = "orcid:0000-0001-9439-5346" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := base
			tt.mutate(&changed)
			assert.NotEqual(t, mappings.KeyOf(base.Record()), mappings.KeyOf(changed.Record()))
		})
	}
}

func TestKeyLess(t *testing.T) {
	tests := []struct {
		name string
		a, b mappings.Key
		want bool
	}{
		{
			name: "first field decides",
			a:    mappings.Key{SourcePrefix: "a", SourceID: "9"},
			b:    mappings.Key{SourcePrefix: "x", SourceID: "1"},
			want: true,
		},
		{
			name: "later field breaks tie",
			a:    mappings.Key{SourcePrefix: "a", SourceID: "1", Relation: "r", Source: "s1"},
			b:    mappings.Key{SourcePrefix: "a", SourceID: "1", Relation: "r", Source: "s2"},
			want: true,
		},
		{
			name: "equal keys",
			a:    mappings.Key{SourcePrefix: "a"},
			b:    mappings.Key{SourcePrefix: "a"},
			want: false,
		},
		{
			name: "case sensitive",
			a:    mappings.Key{SourcePrefix: "Zebra"},
			b:    mappings.Key{SourcePrefix: "apple"},
			want: true, // uppercase sorts before lowercase
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestSort(t *testing.T) {
	x := testMapping()
	x.SourcePrefix, x.SourceID = "x", "1"
	a := testMapping()
	a.SourcePrefix, a.SourceID = "a", "2"

	records := []tsv.Record{x.Record(), a.Record()}
	mappings.Sort(records)

	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0][mappings.ColumnSourcePrefix])
	assert.Equal(t, "x", records[1][mappings.ColumnSourcePrefix])
	assert.True(t, mappings.IsSorted(records))
}

func TestSortedLeavesInputUntouched(t *testing.T) {
	x := testMapping()
	x.SourcePrefix = "x"
	a := testMapping()
	a.SourcePrefix = "a"

	records := []tsv.Record{x.Record(), a.Record()}
	sorted := mappings.Sorted(records)

	assert.Equal(t, "x", records[0][mappings.ColumnSourcePrefix])
	assert.Equal(t, "a", sorted[0][mappings.ColumnSourcePrefix])
}

func TestSortIsStable(t *testing.T) {
	// Two records with equal canonical keys but different names keep
	// their relative order, so re-sorting sorted input is a no-op.
	first := testMapping()
	first.SourceName = "name one"
	second := testMapping()
	second.SourceName = "name two"

	records := []tsv.Record{first.Record(), second.Record()}
	mappings.Sort(records)

	assert.Equal(t, "name one", records[0][mappings.ColumnSourceName])
	assert.Equal(t, "name two", records[1][mappings.ColumnSourceName])
}
