// Package input gathers the flag values and CI environment variables that
// describe a pushed image.
package input

import (
	"os"

	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/savaki/artifact-notifier/internal/models"
)

const (
	EnvServerURL  = "GITHUB_SERVER_URL"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvCommitSHA  = "GITHUB_SHA"
)

// LookupFunc reports the value of an environment variable and whether it is set
type LookupFunc func(key string) (string, bool)

// Flags holds the command-line values supplied by the pipeline
type Flags struct {
	DockerImage string
	OrgID       string

	// RequireOrgID is set by the REST transport, the only one that sends an organization
	RequireOrgID bool
}

// Env holds the GitHub Actions variables identifying the build
type Env struct {
	ServerURL  string
	Repository string
	CommitSHA  string
}

// Params is the fully resolved input of one invocation
type Params struct {
	Flags
	Env
}

// ReadEnv reads the required GitHub Actions variables. The first variable
// that is unset or empty is reported.
func ReadEnv(lookup LookupFunc) (Env, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var env Env
	for _, v := range []struct {
		key string
		dst *string
	}{
		{key: EnvServerURL, dst: &env.ServerURL},
		{key: EnvRepository, dst: &env.Repository},
		{key: EnvCommitSHA, dst: &env.CommitSHA},
	} {
		value, ok := lookup(v.key)
		if !ok || value == "" {
			return Env{}, errors.InvalidInputf("%w %q", errors.ErrMissingEnv, v.key)
		}
		*v.dst = value
	}

	return env, nil
}

// Resolve validates flags and reads the environment
func Resolve(flags Flags, lookup LookupFunc) (Params, error) {
	if flags.DockerImage == "" {
		return Params{}, errors.InvalidInputf("%w %q", errors.ErrMissingFlag, "docker-image")
	}
	if flags.RequireOrgID && flags.OrgID == "" {
		return Params{}, errors.InvalidInputf("%w %q", errors.ErrMissingFlag, "org-id")
	}

	env, err := ReadEnv(lookup)
	if err != nil {
		return Params{}, err
	}

	return Params{Flags: flags, Env: env}, nil
}

// Notification builds the payload for the resolved params
func (p Params) Notification() models.ArtifactPushNotification {
	return models.ArtifactPushNotification{
		OrgID:                  p.OrgID,
		DockerImageRef:         p.DockerImage,
		GitRepositoryProvider:  models.GitRepositoryProviderGitHub,
		GitRepositoryServerURL: p.ServerURL,
		GitRepositoryFullName:  p.Repository,
		CommitHash:             p.CommitSHA,
	}
}
