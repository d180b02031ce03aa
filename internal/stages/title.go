package stages

import (
	"context"
	"strings"

	"github.com/jonathan/screenplay-agent/internal/state"
)

// DefaultAuthor is attributed on every generated screenplay.
const DefaultAuthor = "AI Generated"

const fallbackTitle = "UNTITLED"

// Title derives the screenplay title from the logline: its first four
// words, commas and periods stripped, upper-cased. Deterministic, no model
// call.
type Title struct{}

// Name implements Stage.
func (Title) Name() string { return "title" }

// Run implements Stage.
func (Title) Run(_ context.Context, st state.State) (state.Update, error) {
	words := strings.Fields(st.Logline)
	if len(words) > 4 {
		words = words[:4]
	}

	title := strings.Join(words, " ")
	title = strings.NewReplacer(",", "", ".", "").Replace(title)
	title = strings.ToUpper(strings.TrimSpace(title))
	if title == "" {
		title = fallbackTitle
	}

	return state.Update{
		Title:  state.String(title),
		Author: state.String(DefaultAuthor),
	}, nil
}
