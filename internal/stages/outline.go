package stages

import (
	"context"
	"fmt"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/schemas"
	"github.com/jonathan/screenplay-agent/internal/state"
)

// Fallback values when outline generation fails.
const (
	fallbackOutline   = "Error generating outline."
	fallbackBeatSheet = "Error generating beat sheet."
)

type outlineResponse struct {
	Outline   string `json:"outline"`
	BeatSheet string `json:"beat_sheet"`
	// Accepted from the model but not propagated downstream; the export
	// stage computes its own page estimate.
	EstimatedPageCount int `json:"estimated_page_count"`
}

// Outline produces the 3-act structure outline and beat sheet.
type Outline struct {
	Client llm.Client
}

// Name implements Stage.
func (Outline) Name() string { return "outline" }

// Run implements Stage.
func (s Outline) Run(ctx context.Context, st state.State) (state.Update, error) {
	var resp outlineResponse
	err := generateValidated(ctx, s.Client, schemas.StageOutline, "outline.json",
		map[string]string{
			"Logline": st.Logline,
			"Genre":   st.Genre,
			"Tone":    st.Tone,
		}, &resp)
	if err != nil {
		fmt.Printf("Warning: outline generation failed: %v\n", err)
		return state.Update{
			Outline:   state.String(fallbackOutline),
			BeatSheet: state.String(fallbackBeatSheet),
		}, nil
	}

	return state.Update{
		Outline:   state.String(resp.Outline),
		BeatSheet: state.String(resp.BeatSheet),
	}, nil
}
