package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biopragmatics/biomap/pkg/mappings"
	"github.com/biopragmatics/biomap/pkg/resources"
	"github.com/biopragmatics/biomap/pkg/tsv"
)

func TestAppendDeduplicates(t *testing.T) {
	tests := []struct {
		name string
		seed func(t *testing.T, res *resources.Resources)
	}{
		{
			name: "known as true mapping",
			seed: func(t *testing.T, res *resources.Resources) {
				require.NoError(t, res.AppendTrueMappings([]mappings.Mapping{mapping("a", "1", "b", "2")}, false))
			},
		},
		{
			name: "known as false mapping",
			seed: func(t *testing.T, res *resources.Resources) {
				require.NoError(t, res.AppendFalseMappings([]mappings.Mapping{mapping("a", "1", "b", "2")}, false))
			},
		},
		{
			name: "already predicted",
			seed: func(t *testing.T, res *resources.Resources) {
				require.NoError(t, res.AppendPredictions([]mappings.Prediction{prediction("a", "1", "b", "2", 0.5)}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestResources(t)
			tt.seed(t, res)

			before, err := res.Predictions().Load()
			require.NoError(t, err)

			// Same canonical key, different confidence and names:
			// still a duplicate.
			candidate := prediction("a", "1", "b", "2", 0.99)
			candidate.SourceName = "another label"
			require.NoError(t, res.AppendPredictions([]mappings.Prediction{candidate}))

			after, err := res.Predictions().Load()
			require.NoError(t, err)
			assert.Equal(t, before, after, "predictions table must be unchanged")
		})
	}
}

func TestAppendDoesNotConsultUnsure(t *testing.T) {
	res := newTestResources(t)
	require.NoError(t, res.AppendUnsureMappings([]mappings.Mapping{mapping("a", "1", "b", "2")}, false))

	require.NoError(t, res.AppendPredictions([]mappings.Prediction{prediction("a", "1", "b", "2", 0.5)}))

	records, err := res.Predictions().Load()
	require.NoError(t, err)
	assert.Len(t, records, 1, "a key known only to the unsure table is not a duplicate")
}

func TestAppendKeepsNovelRecords(t *testing.T) {
	res := newTestResources(t)
	require.NoError(t, res.AppendTrueMappings([]mappings.Mapping{mapping("a", "1", "b", "2")}, false))

	require.NoError(t, res.AppendPredictions([]mappings.Prediction{
		prediction("a", "1", "b", "2", 0.9), // duplicate, dropped
		prediction("c", "3", "d", "4", 0.9), // novel, kept
	}))

	records, err := res.Predictions().Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c", records[0][mappings.ColumnSourcePrefix])
}

func TestAppendWithoutDeduplication(t *testing.T) {
	res := newTestResources(t)
	require.NoError(t, res.AppendTrueMappings([]mappings.Mapping{mapping("a", "1", "b", "2")}, false))

	require.NoError(t, res.AppendPredictions(
		[]mappings.Prediction{prediction("a", "1", "b", "2", 0.9)},
		resources.WithoutDeduplication(),
	))

	records, err := res.Predictions().Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAppendWithSort(t *testing.T) {
	res := newTestResources(t)

	require.NoError(t, res.AppendPredictions([]mappings.Prediction{prediction("x", "1", "t", "1", 0.9)}))
	require.NoError(t, res.AppendPredictions(
		[]mappings.Prediction{prediction("a", "2", "t", "2", 0.9)},
		resources.WithSort(),
	))

	records, err := res.Predictions().Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, mappings.IsSorted(records))
	assert.Equal(t, "a", records[0][mappings.ColumnSourcePrefix])
	assert.Equal(t, "x", records[1][mappings.ColumnSourcePrefix])
}

func TestCustomFilterExcludes(t *testing.T) {
	filter := resources.CustomFilter{
		"ns1": {"ns2": {"A": "B"}},
	}

	tests := []struct {
		name   string
		record tsv.Record
		want   bool
	}{
		{
			name:   "exact match excluded",
			record: prediction("ns1", "A", "ns2", "B", 0.9).Record(),
			want:   true,
		},
		{
			name:   "different target kept",
			record: prediction("ns1", "A", "ns2", "C", 0.9).Record(),
			want:   false,
		},
		{
			name:   "unknown source prefix kept",
			record: prediction("other", "A", "ns2", "B", 0.9).Record(),
			want:   false,
		},
		{
			name:   "unknown target prefix kept",
			record: prediction("ns1", "A", "other", "B", 0.9).Record(),
			want:   false,
		},
		{
			name:   "unknown source identifier kept",
			record: prediction("ns1", "Z", "ns2", "B", 0.9).Record(),
			want:   false,
		},
		{
			name:   "empty target identifier is not a wildcard",
			record: prediction("ns1", "Z", "ns2", "", 0.9).Record(),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Excludes(tt.record))
		})
	}
}

func TestFilterRewritesPredictions(t *testing.T) {
	res := newTestResources(t)

	require.NoError(t, res.AppendPredictions([]mappings.Prediction{
		prediction("ns1", "A", "ns2", "B", 0.9),
		prediction("ns1", "A", "ns2", "C", 0.9),
		prediction("ns3", "X", "ns4", "Y", 0.9),
	}))

	filter := resources.CustomFilter{
		"ns1": {"ns2": {"A": "B"}},
	}
	require.NoError(t, res.Predictions().Filter(filter))

	records, err := res.Predictions().Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, mappings.IsSorted(records))
	for _, record := range records {
		assert.False(t, filter.Excludes(record))
	}
}

func TestFilterEmptyFilterKeepsEverything(t *testing.T) {
	res := newTestResources(t)

	require.NoError(t, res.AppendPredictions([]mappings.Prediction{
		prediction("ns1", "A", "ns2", "B", 0.9),
	}))

	require.NoError(t, res.Predictions().Filter(resources.CustomFilter{}))

	records, err := res.Predictions().Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
