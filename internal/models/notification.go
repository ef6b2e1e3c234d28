package models

import (
	"encoding/json"
	"fmt"
)

// GitRepositoryProvider identifies the hosting service of the source repository
type GitRepositoryProvider int

const (
	GitRepositoryProviderGitHub GitRepositoryProvider = iota + 1
)

// String returns the provider's name
func (p GitRepositoryProvider) String() string {
	switch p {
	case GitRepositoryProviderGitHub:
		return "GitHub"
	default:
		return fmt.Sprintf("GitRepositoryProvider(%d)", int(p))
	}
}

// MarshalJSON encodes the provider in screaming snake case, e.g. GIT_HUB
func (p GitRepositoryProvider) MarshalJSON() ([]byte, error) {
	switch p {
	case GitRepositoryProviderGitHub:
		return json.Marshal("GIT_HUB")
	default:
		return nil, fmt.Errorf("unknown git repository provider %d", int(p))
	}
}

// UnmarshalJSON decodes the screaming snake case form written by MarshalJSON
func (p *GitRepositoryProvider) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "GIT_HUB":
		*p = GitRepositoryProviderGitHub
		return nil
	default:
		return fmt.Errorf("unknown git repository provider %q", s)
	}
}

// ArtifactPushNotification tells the backend an image was built and pushed for a commit.
// OrgID is only sent by the REST transport.
type ArtifactPushNotification struct {
	OrgID                  string                `json:"org_id"`                    // Organization the image belongs to
	DockerImageRef         string                `json:"docker_image_ref"`          // Pushed image reference
	GitRepositoryProvider  GitRepositoryProvider `json:"git_repository_provider"`   // Always GitHub today
	GitRepositoryServerURL string                `json:"git_repository_server_url"` // e.g. https://github.com
	GitRepositoryFullName  string                `json:"git_repository_full_name"`  // owner/repo
	CommitHash             string                `json:"commit_hash"`               // Commit the image was built from
}
