package stages

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/jonathan/screenplay-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExporter struct {
	path  string
	err   error
	title string
}

func (m *mockExporter) Export(title, _ string, _ []types.Character, _ []types.Scene) (string, error) {
	m.title = title
	return m.path, m.err
}

func TestExport_Success(t *testing.T) {
	exp := &mockExporter{path: "generated_screenplays/a_retired_detective_returns_screenplay.pdf"}
	st := state.State{
		Title:      "A RETIRED DETECTIVE RETURNS",
		Author:     "AI Generated",
		Characters: []types.Character{{Name: "SARAH"}, {Name: "VICTOR"}},
		Scenes:     []types.Scene{{SceneNumber: 1}, {SceneNumber: 2}, {SceneNumber: 3}},
	}

	upd, err := Export{Exporter: exp}.Run(context.Background(), st)
	require.NoError(t, err)

	upd.Apply(&st)
	assert.Equal(t, exp.path, st.PDFPath)
	// title page + character reference page + one page per character and scene
	assert.Equal(t, 7, st.TotalPages)
}

func TestExport_FailureIsFatal(t *testing.T) {
	exp := &mockExporter{err: errors.New("disk full")}
	st := state.State{Title: "T"}

	_, err := Export{Exporter: exp}.Run(context.Background(), st)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
}

func TestExport_DefaultsWhenTitleMissing(t *testing.T) {
	exp := &mockExporter{path: "out.pdf"}
	st := state.State{}

	_, err := Export{Exporter: exp}.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, "UNTITLED", exp.title)
}
