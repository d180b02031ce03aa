package stages

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/schemas"
	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/jonathan/screenplay-agent/internal/types"
)

type dialogueItemSchema struct {
	Character     string `json:"character"`
	Parenthetical string `json:"parenthetical"`
	Line          string `json:"line"`
}

type sceneSchema struct {
	SceneNumber   int                  `json:"scene_number"`
	EpisodeNumber int                  `json:"episode_number"`
	Heading       string               `json:"heading"`
	Action        string               `json:"action"`
	Dialogue      []dialogueItemSchema `json:"dialogue"`
	Transition    string               `json:"transition"`
}

type sceneResponse struct {
	Scenes []sceneSchema `json:"scenes"`
}

// Scene breaks the beat sheet into individual screenplay scenes. The model
// assigns scene and episode numbers; a repair pass afterwards re-establishes
// the numbering invariants (1-based strictly increasing scene numbers,
// contiguous 1-based episode groups) rather than trusting the model.
type Scene struct {
	Client llm.Client
}

// Name implements Stage.
func (Scene) Name() string { return "scene" }

// Run implements Stage.
func (s Scene) Run(ctx context.Context, st state.State) (state.Update, error) {
	var resp sceneResponse
	err := generateValidated(ctx, s.Client, schemas.StageScene, "scene.json",
		map[string]string{
			"Logline":    st.Logline,
			"Genre":      st.Genre,
			"Tone":       st.Tone,
			"BeatSheet":  st.BeatSheet,
			"Characters": characterRoster(st.Characters, nil),
		}, &resp)
	if err != nil {
		fmt.Printf("Warning: scene generation failed: %v\n", err)
		return state.Update{Scenes: []types.Scene{}, EpisodeCount: state.Int(1)}, nil
	}

	scenes := make([]types.Scene, 0, len(resp.Scenes))
	for _, e := range resp.Scenes {
		dialogue := make([]types.DialogueLine, 0, len(e.Dialogue))
		for _, d := range e.Dialogue {
			dialogue = append(dialogue, types.DialogueLine{
				Character:     d.Character,
				Parenthetical: d.Parenthetical,
				Line:          d.Line,
			})
		}
		scenes = append(scenes, types.Scene{
			SceneNumber:   e.SceneNumber,
			EpisodeNumber: e.EpisodeNumber,
			Heading:       e.Heading,
			Action:        e.Action,
			Dialogue:      dialogue,
			Transition:    e.Transition,
		})
	}

	episodeCount := repairNumbering(scenes)
	return state.Update{Scenes: scenes, EpisodeCount: state.Int(episodeCount)}, nil
}

// repairNumbering normalizes model-assigned numbering in place: scenes are
// ordered by their assigned scene number, renumbered 1..n, and episode
// numbers rewritten into contiguous 1-based groups that preserve the model's
// grouping boundaries. Returns the resulting episode count (1 when empty).
func repairNumbering(scenes []types.Scene) int {
	if len(scenes) == 0 {
		return 1
	}

	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].SceneNumber < scenes[j].SceneNumber
	})

	episode := 1
	prevRaw := scenes[0].EpisodeNumber
	for i := range scenes {
		if scenes[i].EpisodeNumber != prevRaw {
			episode++
			prevRaw = scenes[i].EpisodeNumber
		}
		scenes[i].SceneNumber = i + 1
		scenes[i].EpisodeNumber = episode
	}
	return episode
}

// characterRoster renders "- NAME: description" lines for prompt
// interpolation. When only is non-nil, the roster is restricted to the named
// characters.
func characterRoster(characters []types.Character, only map[string]bool) string {
	var lines []string
	for _, c := range characters {
		if only != nil && !only[c.Name] {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", c.Name, c.Description))
	}
	return strings.Join(lines, "\n")
}
