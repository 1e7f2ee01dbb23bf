package biomap

import (
	"github.com/rs/zerolog"

	"github.com/biopragmatics/biomap/pkg/errors"
	"github.com/biopragmatics/biomap/pkg/logging"
	"github.com/biopragmatics/biomap/pkg/resources"
)

// Option configures a Biomap instance.
type Option func(*config) error

// config holds the configuration assembled from options.
type config struct {
	resolver resources.Resolver
	log      zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		log: *logging.Default(),
	}
}

// validate checks that the configuration is complete.
func (c *config) validate() error {
	if c.resolver == nil {
		return errors.NewValidationError("resolver", nil, "a resource directory or resolver is required")
	}
	return nil
}

// WithDir points the client at a resource directory holding the table
// files.
func WithDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("dir", dir, "directory cannot be empty")
		}
		c.resolver = resources.Dir(dir)
		return nil
	}
}

// WithResolver supplies a custom resolver from table file names to
// paths.
func WithResolver(resolver resources.Resolver) Option {
	return func(c *config) error {
		if resolver == nil {
			return errors.NewValidationError("resolver", nil, "resolver cannot be nil")
		}
		c.resolver = resolver
		return nil
	}
}

// WithLogger sets the logger used by the table repositories.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) error {
		c.log = log
		return nil
	}
}
