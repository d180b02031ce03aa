package stages

import (
	"context"
	"fmt"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/schemas"
	"github.com/jonathan/screenplay-agent/internal/state"
)

// Fallback values when logline generation fails.
const (
	fallbackLogline = "A compelling story unfolds."
	fallbackGenre   = "Drama"
	fallbackTone    = "Dramatic"
)

type loglineResponse struct {
	Logline string `json:"logline"`
	Genre   string `json:"genre"`
	Tone    string `json:"tone"`
}

// Logline turns the story idea into a one-sentence logline with genre and tone.
type Logline struct {
	Client llm.Client
}

// Name implements Stage.
func (Logline) Name() string { return "logline" }

// Run implements Stage.
func (s Logline) Run(ctx context.Context, st state.State) (state.Update, error) {
	var resp loglineResponse
	err := generateValidated(ctx, s.Client, schemas.StageLogline, "logline.json",
		map[string]string{"Idea": st.Idea}, &resp)
	if err != nil {
		fmt.Printf("Warning: logline generation failed: %v\n", err)
		return state.Update{
			Logline: state.String(fallbackLogline),
			Genre:   state.String(fallbackGenre),
			Tone:    state.String(fallbackTone),
		}, nil
	}

	return state.Update{
		Logline: state.String(resp.Logline),
		Genre:   state.String(resp.Genre),
		Tone:    state.String(resp.Tone),
	}, nil
}
