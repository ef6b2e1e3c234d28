package gql

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/savaki/artifact-notifier/internal/receiver"
)

// DockerImagePushResolver resolves the DockerImagePush GraphQL type
type DockerImagePushResolver struct {
	push receiver.Push
}

func newDockerImagePushResolver(push receiver.Push) *DockerImagePushResolver {
	return &DockerImagePushResolver{push: push}
}

// ID resolves the id field
func (r *DockerImagePushResolver) ID() graphql.ID {
	return graphql.ID(r.push.ID)
}

// Transport resolves the transport field
func (r *DockerImagePushResolver) Transport() string {
	return string(r.push.Transport)
}

// OrgID resolves the orgId field, null for pushes received over GraphQL
func (r *DockerImagePushResolver) OrgID() *string {
	if r.push.Notification.OrgID == "" {
		return nil
	}
	orgID := r.push.Notification.OrgID
	return &orgID
}

func (r *DockerImagePushResolver) DockerImageRef() string {
	return r.push.Notification.DockerImageRef
}

func (r *DockerImagePushResolver) GitRepositoryProvider() string {
	return string(FromModelProvider(r.push.Notification.GitRepositoryProvider))
}

func (r *DockerImagePushResolver) GitRepositoryServerURL() string {
	return r.push.Notification.GitRepositoryServerURL
}

func (r *DockerImagePushResolver) GitRepositoryFullName() string {
	return r.push.Notification.GitRepositoryFullName
}

func (r *DockerImagePushResolver) CommitHash() string {
	return r.push.Notification.CommitHash
}

// ReceivedAt resolves the receivedAt field
func (r *DockerImagePushResolver) ReceivedAt() DateTime {
	return NewDateTime(r.push.ReceivedAt)
}
