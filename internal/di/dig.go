// Package di provides a lightweight wrapper around uber's dig dependency injection framework.
// It simplifies container setup and provides type-safe dependency retrieval with generics.
package di

import (
	"github.com/rs/zerolog"
	"go.uber.org/dig"
)

// Container defines a dependency injection container based on uber's dig.
// This interface allows for easy testing and mocking of the DI container.
type Container interface {
	// Invoke executes a function, injecting its dependencies from the container.
	Invoke(function any, opts ...dig.InvokeOption) error

	// Provide registers a constructor function in the container.
	Provide(constructor any, opts ...dig.ProvideOption) error

	// Scope creates a scoped sub-container with its own set of values.
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

// MustGet returns an instance constructed via dependency injection or panics.
// This is a convenience function for retrieving a dependency from the container
// when you're certain it exists. If the dependency cannot be resolved, it will panic.
//
// Example:
//
//	store := MustGet[*receiver.Store](container)
func MustGet[T any](container Container) T {
	want, err := Get[T](container)
	if err != nil {
		panic(err)
	}
	return want
}

// Get returns an instance constructed via dependency injection. When a
// constructor fails, the constructor's own error is returned without dig's
// wrapping so callers can inspect and report it directly.
func Get[T any](container Container) (want T, err error) {
	callback := func(got T) {
		want = got
	}
	if err := container.Invoke(callback); err != nil {
		return want, dig.RootCause(err)
	}
	return want, nil
}

// New creates a new dependency injection container. The logger and config
// path from the options are registered as dependencies alongside the core
// providers.
//
// Example:
//
//	container, err := New(
//	    WithLogger(logger),
//	    WithProviders(ProvideRESTConfig, ProvideRESTNotifier),
//	)
func New(opts ...Option) (Container, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	container := dig.New()
	if err := container.Provide(func() zerolog.Logger { return o.logger }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() ConfigPath { return o.configPath }); err != nil {
		return nil, err
	}

	// Register all core constructors
	for _, provider := range core {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	// Register all provided constructors
	for _, provider := range o.providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

var core = []any{
	ProvideHTTPClient,
}
