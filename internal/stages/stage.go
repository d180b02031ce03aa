// Package stages implements the fixed sequence of screenplay generation
// stages: Logline, Outline, Character, Scene, Dialogue, Title, Format, Image
// and Export. Generation stages never fail the pipeline; any model error,
// malformed output or schema violation degrades to a deterministic fallback
// so downstream stages always receive well-typed state. Only the export
// stage, which writes files, can return an error.
package stages

import (
	"context"
	"encoding/json"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/prompts"
	"github.com/jonathan/screenplay-agent/internal/schemas"
	"github.com/jonathan/screenplay-agent/internal/state"
)

// Stage is one pipeline step. Run receives the full accumulated state and
// returns a partial update to merge before the next stage runs.
type Stage interface {
	Name() string
	Run(ctx context.Context, st state.State) (state.Update, error)
}

// generateValidated performs one structured model call for a stage: it
// builds the system and user instructions from the stage's prompt file,
// validates the raw response against the stage schema, and decodes it into
// out. Any failure is returned for the caller to degrade on.
func generateValidated(ctx context.Context, client llm.Client, schemaName, promptFile string, data map[string]string, out any) error {
	system := prompts.MustGet(promptFile, "system")
	user := prompts.Format(prompts.MustGet(promptFile, "user"), data)

	raw, err := client.GenerateStructured(ctx, system, user)
	if err != nil {
		return &APICallError{Message: "generation request failed", Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateStage(schemaName, raw); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ParseError{Message: "failed to decode model response", Cause: err}
	}
	return nil
}
