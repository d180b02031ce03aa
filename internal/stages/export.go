package stages

import (
	"context"
	"fmt"

	"github.com/jonathan/screenplay-agent/internal/export"
	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/jonathan/screenplay-agent/internal/types"
)

// Exporter renders the final paginated document and returns its path.
type Exporter interface {
	Export(title, author string, characters []types.Character, scenes []types.Scene) (string, error)
}

// Export writes the screenplay PDF. Unlike the generation stages this one
// is allowed to fail the pipeline: a run without its output file has no
// sensible degraded form.
type Export struct {
	Exporter Exporter
}

// Name implements Stage.
func (Export) Name() string { return "export" }

// Run implements Stage.
func (s Export) Run(_ context.Context, st state.State) (state.Update, error) {
	title := st.Title
	if title == "" {
		title = fallbackTitle
	}
	author := st.Author
	if author == "" {
		author = DefaultAuthor
	}

	path, err := s.Exporter.Export(title, author, st.Characters, st.Scenes)
	if err != nil {
		return state.Update{}, fmt.Errorf("exporting screenplay: %w", err)
	}

	return state.Update{
		PDFPath:    state.String(path),
		TotalPages: state.Int(export.TotalPages(st.Characters, st.Scenes)),
	}, nil
}
