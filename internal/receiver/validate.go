package receiver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/savaki/artifact-notifier/internal/models"
)

//go:embed schema.json
var artifactPushSchema string

const artifactPushSchemaURL = "artifact-push.json"

// PayloadValidator checks REST payloads against the embedded JSON Schema
type PayloadValidator struct {
	schema *jsonschema.Schema
}

// NewPayloadValidator compiles the embedded artifact push schema
func NewPayloadValidator() (*PayloadValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(artifactPushSchemaURL, strings.NewReader(artifactPushSchema)); err != nil {
		return nil, fmt.Errorf("failed to add artifact push schema: %w", err)
	}
	schema, err := compiler.Compile(artifactPushSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile artifact push schema: %w", err)
	}
	return &PayloadValidator{schema: schema}, nil
}

// Decode validates raw and decodes it into a notification
func (v *PayloadValidator) Decode(raw []byte) (models.ArtifactPushNotification, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.ArtifactPushNotification{}, fmt.Errorf("invalid json: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return models.ArtifactPushNotification{}, fmt.Errorf("payload does not match schema: %w", err)
	}

	var n models.ArtifactPushNotification
	if err := json.Unmarshal(raw, &n); err != nil {
		return models.ArtifactPushNotification{}, fmt.Errorf("failed to decode payload: %w", err)
	}
	return n, nil
}
