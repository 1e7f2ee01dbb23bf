// Package mappings defines the record schemas for curated biological
// entity mappings and machine predictions, the typed adapters that
// convert them to and from generic table records, and the canonical
// key used for sort ordering and duplicate detection.
package mappings

import (
	"strconv"

	"github.com/biopragmatics/biomap/pkg/errors"
	"github.com/biopragmatics/biomap/pkg/tsv"
)

// Column names shared by the mapping and prediction schemas.
const (
	ColumnSourcePrefix = "source prefix"
	ColumnSourceID     = "source identifier"
	ColumnSourceName   = "source name"
	ColumnRelation     = "relation"
	ColumnTargetPrefix = "target prefix"
	ColumnTargetID     = "target identifier"
	ColumnTargetName   = "target name"
	ColumnType         = "type"
	ColumnConfidence   = "confidence"
	ColumnSource       = "source"
)

// MappingHeader is the column order of the true, false, and unsure tables.
var MappingHeader = []string{
	ColumnSourcePrefix,
	ColumnSourceID,
	ColumnSourceName,
	ColumnRelation,
	ColumnTargetPrefix,
	ColumnTargetID,
	ColumnTargetName,
	ColumnType,
	ColumnSource,
}

// PredictionHeader is the column order of the predictions table. It is
// the mapping header with a confidence column between type and source.
var PredictionHeader = []string{
	ColumnSourcePrefix,
	ColumnSourceID,
	ColumnSourceName,
	ColumnRelation,
	ColumnTargetPrefix,
	ColumnTargetID,
	ColumnTargetName,
	ColumnType,
	ColumnConfidence,
	ColumnSource,
}

// Mapping is a curated correspondence between an entity in one
// identifier vocabulary and an entity in another.
type Mapping struct {
	SourcePrefix string
	SourceID     string
	SourceName   string
	Relation     string
	TargetPrefix string
	TargetID     string
	TargetName   string
	Type         string
	Source       string
}

// Record converts the mapping to a generic table record.
func (m Mapping) Record() tsv.Record {
	return tsv.Record{
		ColumnSourcePrefix: m.SourcePrefix,
		ColumnSourceID:     m.SourceID,
		ColumnSourceName:   m.SourceName,
		ColumnRelation:     m.Relation,
		ColumnTargetPrefix: m.TargetPrefix,
		ColumnTargetID:     m.TargetID,
		ColumnTargetName:   m.TargetName,
		ColumnType:         m.Type,
		ColumnSource:       m.Source,
	}
}

// MappingFromRecord converts a generic record to a Mapping. Every
// column of the mapping schema must be present.
func MappingFromRecord(record tsv.Record) (Mapping, error) {
	for _, name := range MappingHeader {
		if _, ok := record[name]; !ok {
			return Mapping{}, errors.NewValidationError(name, record, "record is missing column")
		}
	}
	return Mapping{
		SourcePrefix: record[ColumnSourcePrefix],
		SourceID:     record[ColumnSourceID],
		SourceName:   record[ColumnSourceName],
		Relation:     record[ColumnRelation],
		TargetPrefix: record[ColumnTargetPrefix],
		TargetID:     record[ColumnTargetID],
		TargetName:   record[ColumnTargetName],
		Type:         record[ColumnType],
		Source:       record[ColumnSource],
	}, nil
}

// Prediction is a machine-proposed, not-yet-curated mapping carrying a
// confidence score. Confidence is descriptive only and never part of a
// prediction's identity.
type Prediction struct {
	SourcePrefix string
	SourceID     string
	SourceName   string
	Relation     string
	TargetPrefix string
	TargetID     string
	TargetName   string
	Type         string
	Confidence   float64
	Source       string
}

// Record converts the prediction to a generic table record. Confidence
// is formatted with the minimum digits that parse back exactly, so
// Record followed by PredictionFromRecord round-trips.
func (p Prediction) Record() tsv.Record {
	return tsv.Record{
		ColumnSourcePrefix: p.SourcePrefix,
		ColumnSourceID:     p.SourceID,
		ColumnSourceName:   p.SourceName,
		ColumnRelation:     p.Relation,
		ColumnTargetPrefix: p.TargetPrefix,
		ColumnTargetID:     p.TargetID,
		ColumnTargetName:   p.TargetName,
		ColumnType:         p.Type,
		ColumnConfidence:   strconv.FormatFloat(p.Confidence, 'g', -1, 64),
		ColumnSource:       p.Source,
	}
}

// PredictionFromRecord converts a generic record to a Prediction. Every
// column of the prediction schema must be present and confidence must
// parse as a float.
func PredictionFromRecord(record tsv.Record) (Prediction, error) {
	for _, name := range PredictionHeader {
		if _, ok := record[name]; !ok {
			return Prediction{}, errors.NewValidationError(name, record, "record is missing column")
		}
	}
	confidence, err := strconv.ParseFloat(record[ColumnConfidence], 64)
	if err != nil {
		return Prediction{}, errors.NewValidationError(ColumnConfidence, record[ColumnConfidence], "confidence is not a number")
	}
	return Prediction{
		SourcePrefix: record[ColumnSourcePrefix],
		SourceID:     record[ColumnSourceID],
		SourceName:   record[ColumnSourceName],
		Relation:     record[ColumnRelation],
		TargetPrefix: record[ColumnTargetPrefix],
		TargetID:     record[ColumnTargetID],
		TargetName:   record[ColumnTargetName],
		Type:         record[ColumnType],
		Confidence:   confidence,
		Source:       record[ColumnSource],
	}, nil
}

// Records converts a slice of mappings to generic records.
func Records(ms []Mapping) []tsv.Record {
	records := make([]tsv.Record, len(ms))
	for i, m := range ms {
		records[i] = m.Record()
	}
	return records
}

// PredictionRecords converts a slice of predictions to generic records.
func PredictionRecords(ps []Prediction) []tsv.Record {
	records := make([]tsv.Record, len(ps))
	for i, p := range ps {
		records[i] = p.Record()
	}
	return records
}
