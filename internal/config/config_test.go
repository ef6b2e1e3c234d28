package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadREST_Default(t *testing.T) {
	t.Setenv("EOF_DEPLOY_BASE_URL", "")
	os.Unsetenv("EOF_DEPLOY_BASE_URL")

	cfg, err := LoadREST("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDeployBaseURL, cfg.BaseURL)
}

func TestLoadREST_Override(t *testing.T) {
	t.Setenv("EOF_DEPLOY_BASE_URL", "http://localhost:8080")

	cfg, err := LoadREST("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestLoadGraphQL_Default(t *testing.T) {
	t.Setenv("T3_GRAPHQL_URL", "")
	os.Unsetenv("T3_GRAPHQL_URL")

	cfg, err := LoadGraphQL("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGraphQLURL, cfg.URL)
}

func TestLoad_MalformedURL(t *testing.T) {
	t.Setenv("EOF_DEPLOY_BASE_URL", "not a url")
	t.Setenv("T3_GRAPHQL_URL", "ftp://example.com/graphql")

	_, err := LoadREST("")
	assert.ErrorIs(t, err, errors.ErrInvalidURL)
	assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))

	_, err = LoadGraphQL("")
	assert.ErrorIs(t, err, errors.ErrInvalidURL)
}

func TestLoadGraphQL_File(t *testing.T) {
	t.Setenv("T3_GRAPHQL_URL", "")
	os.Unsetenv("T3_GRAPHQL_URL")

	path := filepath.Join(t.TempDir(), "notifier.yml")
	require.NoError(t, os.WriteFile(path, []byte("t3_graphql_url: http://127.0.0.1:9000/graphql\n"), 0o600))

	cfg, err := LoadGraphQL(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/graphql", cfg.URL)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")
	os.Unsetenv("GITHUB_REPOSITORY")
	t.Setenv("GITHUB_SHA", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GITHUB_REPOSITORY=acme/api\nGITHUB_SHA=from-file\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "acme/api", os.Getenv("GITHUB_REPOSITORY"))
	assert.Equal(t, "from-env", os.Getenv("GITHUB_SHA"))

	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "https://deploy.eofsuite.com", wantErr: false},
		{raw: "http://localhost:8080/base", wantErr: false},
		{raw: "", wantErr: true},
		{raw: "deploy.eofsuite.com", wantErr: true},
		{raw: "https://", wantErr: true},
		{raw: "://bad", wantErr: true},
		{raw: "http://:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
