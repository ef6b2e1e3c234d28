package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactPushNotificationJSON(t *testing.T) {
	n := ArtifactPushNotification{
		OrgID:                  "org_123",
		DockerImageRef:         "ghcr.io/acme/api:1.2.3",
		GitRepositoryProvider:  GitRepositoryProviderGitHub,
		GitRepositoryServerURL: "https://github.com",
		GitRepositoryFullName:  "acme/api",
		CommitHash:             "0123456789abcdef",
	}

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, map[string]any{
		"org_id":                    "org_123",
		"docker_image_ref":          "ghcr.io/acme/api:1.2.3",
		"git_repository_provider":   "GIT_HUB",
		"git_repository_server_url": "https://github.com",
		"git_repository_full_name":  "acme/api",
		"commit_hash":               "0123456789abcdef",
	}, m)
}

func TestGitRepositoryProvider(t *testing.T) {
	var p GitRepositoryProvider
	require.NoError(t, json.Unmarshal([]byte(`"GIT_HUB"`), &p))
	assert.Equal(t, GitRepositoryProviderGitHub, p)
	assert.Equal(t, "GitHub", p.String())

	assert.Error(t, json.Unmarshal([]byte(`"GITLAB"`), &p))

	_, err := json.Marshal(GitRepositoryProvider(0))
	assert.Error(t, err)
}
