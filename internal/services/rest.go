package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/savaki/artifact-notifier/internal/models"
)

// ArtifactPushPath is resolved against the base url, replacing any path it carries
const ArtifactPushPath = "/connector/webhook/github-actions/artifact-push"

// RESTNotifier posts the notification as JSON to the deploy webhook
type RESTNotifier struct {
	endpoint   *url.URL
	httpClient HTTPDoer
}

// NewRESTNotifier creates a notifier for the given deploy base url
func NewRESTNotifier(baseURL *url.URL, httpClient HTTPDoer) *RESTNotifier {
	return &RESTNotifier{
		endpoint:   baseURL.ResolveReference(&url.URL{Path: ArtifactPushPath}),
		httpClient: httpClient,
	}
}

// Endpoint returns the full webhook url
func (r *RESTNotifier) Endpoint() string {
	return r.endpoint.String()
}

// RequestBody encodes n as the webhook's JSON payload
func (r *RESTNotifier) RequestBody(n models.ArtifactPushNotification) ([]byte, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return body, nil
}

// Notify posts n and succeeds only on 200 OK
func (r *RESTNotifier) Notify(ctx context.Context, n models.ArtifactPushNotification) error {
	logger := zerolog.Ctx(ctx)

	body, err := r.RequestBody(n)
	if err != nil {
		return errors.API(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return errors.APIf("failed to create request: %w", err)
	}
	requestID := setCommonHeaders(req)

	logger.Debug().
		Str("url", r.Endpoint()).
		Str("request_id", requestID).
		Str("docker_image_ref", n.DockerImageRef).
		Msg("Posting artifact push notification")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.APIf("failed to send request: %w", err)
	}
	defer drain(resp.Body)

	logger.Debug().
		Str("request_id", requestID).
		Int("status_code", resp.StatusCode).
		Msg("Received response")

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "")
	}

	return nil
}
