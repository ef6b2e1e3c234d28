package di

import (
	"net/http"

	"github.com/savaki/artifact-notifier/internal/config"
	"github.com/savaki/artifact-notifier/internal/services"
)

func ProvideRESTConfig(path ConfigPath) (*config.REST, error) {
	return config.LoadREST(string(path))
}

func ProvideGraphQLConfig(path ConfigPath) (*config.GraphQL, error) {
	return config.LoadGraphQL(string(path))
}

func ProvideRESTNotifier(cfg *config.REST, client *http.Client) (*services.RESTNotifier, error) {
	endpoint, err := cfg.Endpoint()
	if err != nil {
		return nil, err
	}
	return services.NewRESTNotifier(endpoint, client), nil
}

func ProvideGraphQLNotifier(cfg *config.GraphQL, client *http.Client) (*services.GraphQLNotifier, error) {
	endpoint, err := cfg.Endpoint()
	if err != nil {
		return nil, err
	}
	return services.NewGraphQLNotifier(endpoint, client), nil
}
