package receiver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/zerolog"
)

const (
	ArtifactPushPath = "/connector/webhook/github-actions/artifact-push"
	GraphQLPath      = "/graphql"

	maxBodySize = 1 << 20
)

// Config controls how the receiver answers
type Config struct {
	// Authorization is the header value the GraphQL endpoint accepts; empty accepts any
	Authorization string

	// FailStatus, when non-zero, is returned by the REST webhook instead of 200
	FailStatus int
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PushResponse struct {
	ID string `json:"id"`
}

// Handler serves the REST webhook and the GraphQL API
type Handler struct {
	config    Config
	store     *Store
	validator *PayloadValidator
	schema    *graphql.Schema
	logger    zerolog.Logger
}

func NewHandler(config Config, store *Store, validator *PayloadValidator, schema *graphql.Schema, logger zerolog.Logger) *Handler {
	return &Handler{
		config:    config,
		store:     store,
		validator: validator,
		schema:    schema,
		logger:    logger.With().Str("service", "receiver").Logger(),
	}
}

// Router returns the receiver's routes wrapped in request logging
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ArtifactPushPath, h.handleArtifactPush)
	mux.Handle("POST "+GraphQLPath, requireAuthorization(h.config.Authorization)(&relay.Handler{Schema: h.schema}))
	mux.HandleFunc("GET /healthz", h.handleHealth)

	return loggingMiddleware(h.logger)(mux)
}

func (h *Handler) handleArtifactPush(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "failed to read body")
		return
	}

	n, err := h.validator.Decode(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("Rejected artifact push")
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.config.FailStatus != 0 {
		logger.Warn().Int("status_code", h.config.FailStatus).Msg("Failing artifact push on request")
		h.errorResponse(w, h.config.FailStatus, http.StatusText(h.config.FailStatus))
		return
	}

	push := h.store.Add(TransportREST, n)

	logger.Info().
		Str("push_id", push.ID).
		Str("org_id", n.OrgID).
		Str("docker_image_ref", n.DockerImageRef).
		Str("repository", n.GitRepositoryFullName).
		Str("commit_hash", n.CommitHash).
		Msg("Registered artifact push")

	h.jsonResponse(w, http.StatusOK, PushResponse{ID: push.ID})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (h *Handler) jsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// errorResponse writes an error JSON response
func (h *Handler) errorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.jsonResponse(w, statusCode, ErrorResponse{Error: message})
}
