package gql

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/savaki/artifact-notifier/internal/models"
	"github.com/savaki/artifact-notifier/internal/receiver"
)

var ErrUnauthorized = errors.New("unauthorized")

// RegisterDockerImagePushInput mirrors the GraphQL input type
type RegisterDockerImagePushInput struct {
	DockerImageRef         string
	GitRepositoryProvider  string
	GitRepositoryServerURL string
	GitRepositoryFullName  string
	CommitHash             string
}

// RegisterDockerImagePush resolves the registerDockerImagePush mutation
func (r *Resolver) RegisterDockerImagePush(ctx context.Context, args struct{ Input RegisterDockerImagePushInput }) (*DockerImagePushResolver, error) {
	logger := zerolog.Ctx(ctx)

	if !receiver.Authorized(ctx) {
		logger.Warn().Msg("Rejected unauthorized registerDockerImagePush")
		return nil, ErrUnauthorized
	}

	input := args.Input
	provider, err := GitRepositoryProvider(input.GitRepositoryProvider).ToModelProvider()
	if err != nil {
		return nil, err
	}

	for _, f := range []struct{ name, value string }{
		{name: "dockerImageRef", value: input.DockerImageRef},
		{name: "gitRepositoryServerUrl", value: input.GitRepositoryServerURL},
		{name: "gitRepositoryFullName", value: input.GitRepositoryFullName},
		{name: "commitHash", value: input.CommitHash},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%s must not be empty", f.name)
		}
	}

	push := r.store.Add(receiver.TransportGraphQL, models.ArtifactPushNotification{
		DockerImageRef:         input.DockerImageRef,
		GitRepositoryProvider:  provider,
		GitRepositoryServerURL: input.GitRepositoryServerURL,
		GitRepositoryFullName:  input.GitRepositoryFullName,
		CommitHash:             input.CommitHash,
	})

	logger.Info().
		Str("push_id", push.ID).
		Str("docker_image_ref", input.DockerImageRef).
		Str("repository", input.GitRepositoryFullName).
		Str("commit_hash", input.CommitHash).
		Msg("Registered docker image push")

	return newDockerImagePushResolver(push), nil
}
