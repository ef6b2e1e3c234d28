package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/savaki/artifact-notifier/internal/errors"
	"github.com/savaki/artifact-notifier/internal/models"
	"github.com/segmentio/ksuid"
)

// Version is reported in the User-Agent header; overridden at link time
var Version = "dev"

// Notifier delivers an artifact push notification to the registration backend
type Notifier interface {
	// Notify performs exactly one request and fails unless the backend accepted the push
	Notify(ctx context.Context, n models.ArtifactPushNotification) error

	// RequestBody returns the body Notify would send
	RequestBody(n models.ArtifactPushNotification) ([]byte, error)
}

// HTTPDoer is the subset of *http.Client used by the notifiers
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func setCommonHeaders(req *http.Request) string {
	requestID := ksuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "artifact-notifier/"+Version)
	req.Header.Set("X-Request-Id", requestID)
	return requestID
}

func statusError(resp *http.Response, detail string) error {
	status := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	if detail != "" {
		return errors.APIf("%w %s: %s", errors.ErrUnexpectedStatus, status, detail)
	}
	return errors.APIf("%w %s", errors.ErrUnexpectedStatus, status)
}

// drain discards what is left of the body so the connection closes cleanly
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
