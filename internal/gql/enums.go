package gql

import (
	"fmt"

	"github.com/savaki/artifact-notifier/internal/models"
)

// GitRepositoryProvider represents the GraphQL GitRepositoryProvider enum
type GitRepositoryProvider string

const (
	GitRepositoryProviderGitHub GitRepositoryProvider = "GITHUB"
)

// FromModelProvider converts a models.GitRepositoryProvider to gql.GitRepositoryProvider
func FromModelProvider(p models.GitRepositoryProvider) GitRepositoryProvider {
	switch p {
	case models.GitRepositoryProviderGitHub:
		return GitRepositoryProviderGitHub
	default:
		return GitRepositoryProvider(p.String())
	}
}

// ToModelProvider converts a gql.GitRepositoryProvider to models.GitRepositoryProvider
func (p GitRepositoryProvider) ToModelProvider() (models.GitRepositoryProvider, error) {
	switch p {
	case GitRepositoryProviderGitHub:
		return models.GitRepositoryProviderGitHub, nil
	default:
		return 0, fmt.Errorf("unknown git repository provider %q", string(p))
	}
}
