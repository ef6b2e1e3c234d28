package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/savaki/artifact-notifier/internal/models"
	"github.com/tidwall/gjson"
)

const (
	// Authorization is the fixed credential the GraphQL endpoint expects
	Authorization = "FAKE:acme"

	RegisterDockerImagePushOperation = "RegisterDockerImagePush"

	RegisterDockerImagePushMutation = `mutation RegisterDockerImagePush($input: RegisterDockerImagePushInput!) {
  registerDockerImagePush(input: $input) {
    id
  }
}`
)

// GraphQL enum values for models.GitRepositoryProvider
const (
	GraphQLProviderGitHub = "GITHUB"
)

// RegisterDockerImagePushInput is the mutation's input variable. The
// organization is implied by the authorization header.
type RegisterDockerImagePushInput struct {
	DockerImageRef         string `json:"dockerImageRef"`
	GitRepositoryProvider  string `json:"gitRepositoryProvider"`
	GitRepositoryServerURL string `json:"gitRepositoryServerUrl"`
	GitRepositoryFullName  string `json:"gitRepositoryFullName"`
	CommitHash             string `json:"commitHash"`
}

// GraphQLRequest is the standard GraphQL-over-HTTP request body
type GraphQLRequest struct {
	OperationName string                           `json:"operationName"`
	Query         string                           `json:"query"`
	Variables     RegisterDockerImagePushVariables `json:"variables"`
}

type RegisterDockerImagePushVariables struct {
	Input RegisterDockerImagePushInput `json:"input"`
}

// NewRegisterDockerImagePushInput converts n into the mutation input
func NewRegisterDockerImagePushInput(n models.ArtifactPushNotification) (RegisterDockerImagePushInput, error) {
	var provider string
	switch n.GitRepositoryProvider {
	case models.GitRepositoryProviderGitHub:
		provider = GraphQLProviderGitHub
	default:
		return RegisterDockerImagePushInput{}, fmt.Errorf("unsupported git repository provider %v", n.GitRepositoryProvider)
	}

	return RegisterDockerImagePushInput{
		DockerImageRef:         n.DockerImageRef,
		GitRepositoryProvider:  provider,
		GitRepositoryServerURL: n.GitRepositoryServerURL,
		GitRepositoryFullName:  n.GitRepositoryFullName,
		CommitHash:             n.CommitHash,
	}, nil
}

// GraphQLNotifier sends the RegisterDockerImagePush mutation
type GraphQLNotifier struct {
	endpoint   *url.URL
	httpClient HTTPDoer
}

// NewGraphQLNotifier creates a notifier for the given GraphQL endpoint
func NewGraphQLNotifier(endpoint *url.URL, httpClient HTTPDoer) *GraphQLNotifier {
	return &GraphQLNotifier{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Endpoint returns the GraphQL url
func (g *GraphQLNotifier) Endpoint() string {
	return g.endpoint.String()
}

// RequestBody encodes the mutation document and variables for n
func (g *GraphQLNotifier) RequestBody(n models.ArtifactPushNotification) ([]byte, error) {
	input, err := NewRegisterDockerImagePushInput(n)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(GraphQLRequest{
		OperationName: RegisterDockerImagePushOperation,
		Query:         RegisterDockerImagePushMutation,
		Variables:     RegisterDockerImagePushVariables{Input: input},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return body, nil
}

// Notify sends the mutation and succeeds only on 200 OK with no GraphQL errors
func (g *GraphQLNotifier) Notify(ctx context.Context, n models.ArtifactPushNotification) error {
	logger := zerolog.Ctx(ctx)

	body, err := g.RequestBody(n)
	if err != nil {
		return errors.API(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return errors.APIf("failed to create request: %w", err)
	}
	requestID := setCommonHeaders(req)
	req.Header.Set("Authorization", Authorization)

	logger.Debug().
		Str("url", g.Endpoint()).
		Str("request_id", requestID).
		Str("operation", RegisterDockerImagePushOperation).
		Msg("Sending GraphQL mutation")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.APIf("failed to send request: %w", err)
	}
	defer drain(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.APIf("failed to read response: %w", err)
	}

	logger.Debug().
		Str("request_id", requestID).
		Int("status_code", resp.StatusCode).
		Int("body_size", len(respBody)).
		Msg("Received response")

	if resp.StatusCode != http.StatusOK {
		// best effort: surface GraphQL errors carried by an error status
		var detail string
		if gjson.ValidBytes(respBody) {
			detail = strings.Join(graphQLErrors(respBody), "; ")
		}
		return statusError(resp, detail)
	}

	if !gjson.ValidBytes(respBody) {
		return errors.APIf("%w: not valid json", errors.ErrMalformedResponse)
	}
	if !gjson.ParseBytes(respBody).IsObject() {
		return errors.APIf("%w: not a json object", errors.ErrMalformedResponse)
	}
	if errs := gjson.GetBytes(respBody, "errors"); errs.Exists() && errs.Type != gjson.Null && !errs.IsArray() {
		return errors.APIf("%w: errors is not an array", errors.ErrMalformedResponse)
	}

	if messages := graphQLErrors(respBody); len(messages) > 0 {
		return errors.APIf("%w: %s", errors.ErrGraphQL, strings.Join(messages, "; "))
	}

	logger.Debug().
		Str("request_id", requestID).
		Str("push_id", gjson.GetBytes(respBody, "data.registerDockerImagePush.id").String()).
		Msg("Docker image push registered")

	return nil
}

// graphQLErrors returns the message of every entry of the response's errors array
func graphQLErrors(body []byte) []string {
	errs := gjson.GetBytes(body, "errors")
	if !errs.IsArray() {
		return nil
	}

	var messages []string
	for _, e := range errs.Array() {
		if msg := e.Get("message"); msg.Exists() {
			messages = append(messages, msg.String())
		} else {
			messages = append(messages, e.Raw)
		}
	}
	return messages
}
