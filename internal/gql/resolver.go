package gql

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
	"github.com/savaki/artifact-notifier/internal/receiver"
	"go.uber.org/dig"
)

//go:embed schema.graphqls
var schemaString string

type Config struct {
	dig.In

	Store *receiver.Store
}

// Resolver is the root GraphQL resolver
type Resolver struct {
	store *receiver.Store
}

// NewResolver creates a new root resolver with the required dependencies
func NewResolver(config Config) *Resolver {
	return &Resolver{
		store: config.Store,
	}
}

// NewSchema creates a new GraphQL schema with the root resolver
func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaString, resolver)
}

// Ok returns "ok" for health checks
func (r *Resolver) Ok() string {
	return "ok"
}
