package di

import "github.com/rs/zerolog"

// ConfigPath is the optional config file read by the transport config providers
type ConfigPath string

// Option is a function that configures the dependency injection container.
type Option func(*options)

func WithConfigPath(path string) Option {
	return func(opts *options) {
		opts.configPath = ConfigPath(path)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithProviders adds constructor functions to the dependency injection container.
// Each provider should be a constructor function that returns one or more values.
// Providers can declare dependencies as function parameters, which will be
// automatically resolved by the container.
//
// Example:
//
//	WithProviders(
//	    func() *Database { return &Database{} },
//	    func(db *Database) *Service { return &Service{DB: db} },
//	)
func WithProviders(providers ...any) Option {
	return func(opts *options) {
		opts.providers = append(opts.providers, providers...)
	}
}

type options struct {
	configPath ConfigPath
	logger     zerolog.Logger
	providers  []any
}
