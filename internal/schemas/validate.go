// Package schemas provides JSON Schema validation for stage model responses.
// Each generation stage has an embedded schema document; responses that do
// not conform are rejected so the stage can fall back deterministically.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.json
var schemaFiles embed.FS

// Stage schema names, matching the embedded <name>.json documents.
const (
	StageLogline   = "logline"
	StageOutline   = "outline"
	StageCharacter = "character"
	StageScene     = "scene"
	StageDialogue  = "dialogue"
)

var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Stage  string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s response failed schema validation:\n", ve.Stage))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateStage validates a raw JSON response against the named stage schema.
// A nil return means the document conforms.
func ValidateStage(stage, jsonContent string) error {
	schema, err := loadSchema(stage)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		// The document itself could not be parsed as JSON.
		return &ValidationError{
			Stage:  stage,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Stage:  stage,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// loadSchema compiles and caches the embedded schema for a stage.
func loadSchema(stage string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[stage]; ok {
		return schema, nil
	}

	data, err := schemaFiles.ReadFile(stage + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown stage schema %q: %w", stage, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %q: %w", stage, err)
	}

	compiled[stage] = schema
	return schema, nil
}
