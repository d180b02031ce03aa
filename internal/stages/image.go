package stages

import (
	"context"
	"fmt"

	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/jonathan/screenplay-agent/internal/types"
)

// ImageGenerator produces a character portrait file and returns its path.
type ImageGenerator interface {
	GenerateCharacterImage(ctx context.Context, characterName, imagePrompt string) (string, error)
}

// Image attaches reference images to characters that carry a visual prompt.
// Per-character failures leave that character without an image and never
// abort the run.
type Image struct {
	Generator ImageGenerator
}

// Name implements Stage.
func (Image) Name() string { return "image" }

// Run implements Stage.
func (s Image) Run(ctx context.Context, st state.State) (state.Update, error) {
	characters := make([]types.Character, len(st.Characters))
	copy(characters, st.Characters)

	for i := range characters {
		if characters[i].ImagePrompt == "" {
			continue
		}

		fmt.Printf("Generating image for %s...\n", characters[i].Name)
		path, err := s.Generator.GenerateCharacterImage(ctx, characters[i].Name, characters[i].ImagePrompt)
		if err != nil {
			fmt.Printf("Warning: image generation failed for %s: %v\n", characters[i].Name, err)
			continue
		}
		characters[i].ImagePath = path
	}

	return state.Update{Characters: characters}, nil
}
