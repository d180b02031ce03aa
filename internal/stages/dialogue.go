package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/schemas"
	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/jonathan/screenplay-agent/internal/types"
)

type dialogueResponse struct {
	Dialogue []dialogueItemSchema `json:"dialogue"`
}

// Dialogue rewrites each scene's dialogue one scene at a time. Failures are
// isolated at scene granularity: a failed scene keeps its existing dialogue
// while its siblings still get rewritten.
type Dialogue struct {
	Client llm.Client
}

// Name implements Stage.
func (Dialogue) Name() string { return "dialogue" }

// Run implements Stage.
func (s Dialogue) Run(ctx context.Context, st state.State) (state.Update, error) {
	scenes := make([]types.Scene, len(st.Scenes))
	copy(scenes, st.Scenes)

	for i := range scenes {
		rewritten, err := s.rewriteScene(ctx, st, scenes[i])
		if err != nil {
			fmt.Printf("Warning: dialogue generation failed for scene %d: %v\n", scenes[i].SceneNumber, err)
			continue
		}
		scenes[i].Dialogue = rewritten
	}

	return state.Update{Scenes: scenes}, nil
}

// rewriteScene requests a replacement dialogue list for one scene, scoping
// the character roster to characters already speaking in that scene.
func (s Dialogue) rewriteScene(ctx context.Context, st state.State, scene types.Scene) ([]types.DialogueLine, error) {
	inScene := make(map[string]bool, len(scene.Dialogue))
	for _, d := range scene.Dialogue {
		inScene[d.Character] = true
	}

	current, err := json.MarshalIndent(scene.Dialogue, "", "  ")
	if err != nil {
		return nil, &ParseError{Message: "failed to encode current dialogue", Cause: err}
	}

	var resp dialogueResponse
	err = generateValidated(ctx, s.Client, schemas.StageDialogue, "dialogue.json",
		map[string]string{
			"SceneNumber":     strconv.Itoa(scene.SceneNumber),
			"Heading":         scene.Heading,
			"Action":          scene.Action,
			"Characters":      characterRoster(st.Characters, inScene),
			"Genre":           st.Genre,
			"Tone":            st.Tone,
			"CurrentDialogue": string(current),
		}, &resp)
	if err != nil {
		return nil, err
	}

	rewritten := make([]types.DialogueLine, 0, len(resp.Dialogue))
	for _, d := range resp.Dialogue {
		rewritten = append(rewritten, types.DialogueLine{
			Character:     d.Character,
			Parenthetical: d.Parenthetical,
			Line:          d.Line,
		})
	}
	return rewritten, nil
}
