package di

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"
	notifyerrors "github.com/savaki/artifact-notifier/internal/errors"
	"github.com/savaki/artifact-notifier/internal/receiver"
	"github.com/savaki/artifact-notifier/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

// Test types for dependency injection
type Database struct {
	Name string
}

type Repository struct {
	DB *Database
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "creates container with no providers",
			opts:    nil,
			wantErr: false,
		},
		{
			name: "creates container with single provider",
			opts: []Option{
				WithProviders(func() *Database {
					return &Database{Name: "test-db"}
				}),
			},
			wantErr: false,
		},
		{
			name: "rejects duplicate providers",
			opts: []Option{
				WithProviders(
					func() *Database { return &Database{Name: "db1"} },
					func() *Database { return &Database{Name: "db2"} },
				),
			},
			wantErr: true,
		},
		{
			name: "rejects provider duplicating a core type",
			opts: []Option{
				WithProviders(func() *http.Client { return &http.Client{} }),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := New(tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, container)
		})
	}
}

func TestNew_ProvidesOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	container, err := New(WithConfigPath("notifier.yml"), WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, ConfigPath("notifier.yml"), MustGet[ConfigPath](container))

	l := MustGet[zerolog.Logger](container)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	assert.NotNil(t, MustGet[*http.Client](container))
}

func TestNew_DefaultsToNopLogger(t *testing.T) {
	container, err := New()
	require.NoError(t, err)

	l := MustGet[zerolog.Logger](container)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGet(t *testing.T) {
	t.Run("resolves nested dependencies", func(t *testing.T) {
		container, err := New(
			WithProviders(
				func() *Database { return &Database{Name: "dev-db"} },
				func(db *Database) *Repository { return &Repository{DB: db} },
			),
		)
		require.NoError(t, err)

		repo, err := Get[*Repository](container)
		require.NoError(t, err)
		assert.Equal(t, "dev-db", repo.DB.Name)
	})

	t.Run("returns the constructor error unwrapped", func(t *testing.T) {
		want := notifyerrors.InvalidInput(notifyerrors.ErrInvalidURL)
		container, err := New(
			WithProviders(func() (*Database, error) { return nil, want }),
		)
		require.NoError(t, err)

		_, err = Get[*Database](container)
		assert.Same(t, want, err)
	})

	t.Run("MustGet panics when dependency not found", func(t *testing.T) {
		container, err := New()
		require.NoError(t, err)

		assert.Panics(t, func() {
			_ = MustGet[*Database](container)
		})
	})
}

func TestContainer_Interface(t *testing.T) {
	var _ Container = (*dig.Container)(nil)
}

func TestNotifierProviders(t *testing.T) {
	t.Setenv("EOF_DEPLOY_BASE_URL", "http://localhost:9999/ignored")
	t.Setenv("T3_GRAPHQL_URL", "http://localhost:9999/graphql")

	container, err := New(WithProviders(
		ProvideRESTConfig,
		ProvideRESTNotifier,
		ProvideGraphQLConfig,
		ProvideGraphQLNotifier,
	))
	require.NoError(t, err)

	rest, err := Get[*services.RESTNotifier](container)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/connector/webhook/github-actions/artifact-push", rest.Endpoint())

	gqlNotifier, err := Get[*services.GraphQLNotifier](container)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/graphql", gqlNotifier.Endpoint())
}

func TestNotifierProviders_InvalidURL(t *testing.T) {
	t.Setenv("EOF_DEPLOY_BASE_URL", "not a url")

	container, err := New(WithProviders(ProvideRESTConfig, ProvideRESTNotifier))
	require.NoError(t, err)

	_, err = Get[*services.RESTNotifier](container)
	assert.ErrorIs(t, err, notifyerrors.ErrInvalidURL)
	assert.Equal(t, notifyerrors.KindInvalidInput, notifyerrors.KindOf(err))
}

func TestReceiverProviders(t *testing.T) {
	container, err := New(
		WithProviders(ReceiverProviders...),
		WithProviders(func() receiver.Config { return receiver.Config{Authorization: services.Authorization} }),
	)
	require.NoError(t, err)

	assert.NotNil(t, MustGet[*graphql.Schema](container))
	assert.NotNil(t, MustGet[*receiver.Handler](container))
	assert.Same(t, MustGet[*receiver.Store](container), MustGet[*receiver.Store](container))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "")
	require.NoError(t, err)
	logger.Error().Msg("hidden")
	assert.Empty(t, buf.String())

	logger, err = NewLogger(&buf, "debug")
	require.NoError(t, err)
	logger.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger(&buf, "loud")
	assert.Error(t, err)
}
