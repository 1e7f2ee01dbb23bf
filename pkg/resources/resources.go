package resources

import (
	"github.com/rs/zerolog"

	"github.com/biopragmatics/biomap/pkg/logging"
	"github.com/biopragmatics/biomap/pkg/mappings"
	"github.com/biopragmatics/biomap/pkg/tsv"
)

// Resources binds the four mapping tables and the curators reference
// table within one configured resource directory.
type Resources struct {
	trueMappings   *Table
	falseMappings  *Table
	unsureMappings *Table
	predictions    *Predictions
	curators       *Curators
}

// Option configures a Resources instance.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

// WithLogger sets the logger used by the table repositories.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// New creates the table repositories over the given resolver.
func New(resolver Resolver, opts ...Option) *Resources {
	cfg := &config{log: *logging.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	trueMappings := newTable("mappings", resolver.Path(TrueMappingsFile), mappings.MappingHeader, cfg.log)
	falseMappings := newTable("incorrect", resolver.Path(FalseMappingsFile), mappings.MappingHeader, cfg.log)
	unsureMappings := newTable("unsure", resolver.Path(UnsureMappingsFile), mappings.MappingHeader, cfg.log)
	predictions := newTable("predictions", resolver.Path(PredictionsFile), mappings.PredictionHeader, cfg.log)

	return &Resources{
		trueMappings:   trueMappings,
		falseMappings:  falseMappings,
		unsureMappings: unsureMappings,
		predictions:    newPredictions(predictions, trueMappings, falseMappings),
		curators:       &Curators{path: resolver.Path(CuratorsFile)},
	}
}

// TrueMappings returns the repository for curated true mappings.
func (r *Resources) TrueMappings() *Table {
	return r.trueMappings
}

// FalseMappings returns the repository for curated false mappings.
func (r *Resources) FalseMappings() *Table {
	return r.falseMappings
}

// UnsureMappings returns the repository for mappings a curator could
// not decide on.
func (r *Resources) UnsureMappings() *Table {
	return r.unsureMappings
}

// Predictions returns the repository for machine-generated predictions.
func (r *Resources) Predictions() *Predictions {
	return r.predictions
}

// Curators returns the read-only curators reference table.
func (r *Resources) Curators() *Curators {
	return r.curators
}

// Tables returns the four writable table repositories, for operations
// that run uniformly across them such as linting.
func (r *Resources) Tables() []*Table {
	return []*Table{r.trueMappings, r.falseMappings, r.unsureMappings, r.predictions.Table}
}

// Lint reloads and rewrites every table in canonical sorted order.
func (r *Resources) Lint() error {
	for _, table := range r.Tables() {
		if err := table.Lint(); err != nil {
			return err
		}
	}
	return nil
}

// AppendTrueMappings appends typed mappings to the true mappings table.
func (r *Resources) AppendTrueMappings(ms []mappings.Mapping, sort bool) error {
	return r.trueMappings.Append(mappings.Records(ms), sort)
}

// AppendFalseMappings appends typed mappings to the false mappings table.
func (r *Resources) AppendFalseMappings(ms []mappings.Mapping, sort bool) error {
	return r.falseMappings.Append(mappings.Records(ms), sort)
}

// AppendUnsureMappings appends typed mappings to the unsure table.
func (r *Resources) AppendUnsureMappings(ms []mappings.Mapping, sort bool) error {
	return r.unsureMappings.Append(mappings.Records(ms), sort)
}

// AppendPredictions appends typed predictions to the predictions
// table, deduplicating against the curated tables unless disabled.
func (r *Resources) AppendPredictions(ps []mappings.Prediction, opts ...AppendOption) error {
	return r.predictions.Append(mappings.PredictionRecords(ps), opts...)
}

// LoadCurators reads the curators reference table.
func (r *Resources) LoadCurators() ([]tsv.Record, error) {
	return r.curators.Load()
}
