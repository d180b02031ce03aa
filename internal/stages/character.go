package stages

import (
	"context"
	"fmt"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/schemas"
	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/jonathan/screenplay-agent/internal/types"
)

type characterSchema struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Arc         string `json:"arc"`
	ImagePrompt string `json:"image_prompt"`
}

type characterResponse struct {
	Characters []characterSchema `json:"characters"`
}

// Character develops character profiles with visual descriptions for image
// generation. The fallback is an empty character list.
type Character struct {
	Client llm.Client
}

// Name implements Stage.
func (Character) Name() string { return "character" }

// Run implements Stage.
func (s Character) Run(ctx context.Context, st state.State) (state.Update, error) {
	var resp characterResponse
	err := generateValidated(ctx, s.Client, schemas.StageCharacter, "character.json",
		map[string]string{
			"Logline": st.Logline,
			"Genre":   st.Genre,
			"Tone":    st.Tone,
			"Outline": st.Outline,
		}, &resp)
	if err != nil {
		fmt.Printf("Warning: character generation failed: %v\n", err)
		return state.Update{Characters: []types.Character{}}, nil
	}

	characters, err := convertCharacters(resp.Characters)
	if err != nil {
		fmt.Printf("Warning: character conversion failed: %v\n", err)
		return state.Update{Characters: []types.Character{}}, nil
	}

	return state.Update{Characters: characters}, nil
}

// convertCharacters maps schema-conformant entries into domain characters,
// enforcing struct-level constraints. A single invalid entry degrades the
// whole list, matching the stage's all-or-fallback contract.
func convertCharacters(entries []characterSchema) ([]types.Character, error) {
	characters := make([]types.Character, 0, len(entries))
	for _, e := range entries {
		c := types.Character{
			Name:        e.Name,
			Age:         e.Age,
			Description: e.Description,
			Role:        types.Role(e.Role),
			Arc:         e.Arc,
			ImagePrompt: e.ImagePrompt,
		}
		if err := types.ValidateCharacter(&c); err != nil {
			return nil, fmt.Errorf("character %q: %w", e.Name, err)
		}
		characters = append(characters, c)
	}
	return characters, nil
}
