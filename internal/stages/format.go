package stages

import (
	"context"

	"github.com/jonathan/screenplay-agent/internal/format"
	"github.com/jonathan/screenplay-agent/internal/state"
)

// Format renders the accumulated scenes into formatted screenplay text.
// Deterministic, no model call.
type Format struct{}

// Name implements Stage.
func (Format) Name() string { return "format" }

// Run implements Stage.
func (Format) Run(_ context.Context, st state.State) (state.Update, error) {
	title := st.Title
	if title == "" {
		title = fallbackTitle
	}
	author := st.Author
	if author == "" {
		author = DefaultAuthor
	}

	formatted := format.Screenplay(title, author, st.Scenes)
	return state.Update{
		FormattedScreenplay: state.String(formatted),
		Author:              state.String(author),
	}, nil
}
