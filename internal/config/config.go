// Package config resolves the endpoint each transport talks to.
package config

import (
	"fmt"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/savaki/artifact-notifier/internal/errors"
)

const (
	DefaultDeployBaseURL = "https://deploy.eofsuite.com"
	DefaultGraphQLURL    = "https://api.transistor.eof.dev/graphql"
)

type (
	// REST configures the REST transport
	REST struct {
		BaseURL string `yaml:"eof_deploy_base_url" env:"EOF_DEPLOY_BASE_URL" env-default:"https://deploy.eofsuite.com"`
	}

	// GraphQL configures the GraphQL transport
	GraphQL struct {
		URL string `yaml:"t3_graphql_url" env:"T3_GRAPHQL_URL" env-default:"https://api.transistor.eof.dev/graphql"`
	}
)

// Endpoint returns the parsed REST base url
func (c *REST) Endpoint() (*url.URL, error) {
	return ParseURL(c.BaseURL)
}

// Endpoint returns the parsed GraphQL url
func (c *GraphQL) Endpoint() (*url.URL, error) {
	return ParseURL(c.URL)
}

// LoadREST reads the REST configuration from the environment, or from file
// when path is set. Environment variables override values in the file.
func LoadREST(path string) (*REST, error) {
	cfg := &REST{}
	if err := read(path, cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Endpoint(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGraphQL reads the GraphQL configuration; see LoadREST
func LoadGraphQL(path string) (*GraphQL, error) {
	cfg := &GraphQL{}
	if err := read(path, cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Endpoint(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(path string, cfg any) error {
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return errors.InvalidInputf("config error: %w", err)
		}
		return nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return errors.InvalidInputf("config error: %w", err)
	}
	return nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables that are already set keep their value.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.InvalidInputf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ParseURL accepts absolute http(s) urls with a host
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.InvalidInputf("%w %q: %v", errors.ErrInvalidURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.InvalidInput(fmt.Errorf("%w %q: scheme must be http or https", errors.ErrInvalidURL, raw))
	}
	if u.Hostname() == "" {
		return nil, errors.InvalidInput(fmt.Errorf("%w %q: missing host", errors.ErrInvalidURL, raw))
	}
	return u, nil
}
