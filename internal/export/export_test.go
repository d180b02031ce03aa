package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/screenplay-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneN(sceneNum, episodeNum int) types.Scene {
	return types.Scene{
		SceneNumber:   sceneNum,
		EpisodeNumber: episodeNum,
		Heading:       "INT. OFFICE - NIGHT",
		Action:        "Something happens.",
	}
}

func TestScreenplayLines_EpisodeMarkers(t *testing.T) {
	// Episode sequence [1,1,1,2,2,3] must produce exactly 3 markers, placed
	// immediately before scenes 1, 4 and 6.
	scenes := []types.Scene{
		sceneN(1, 1), sceneN(2, 1), sceneN(3, 1),
		sceneN(4, 2), sceneN(5, 2),
		sceneN(6, 3),
	}

	lines := ScreenplayLines(scenes)

	var markers []int // index into lines
	for i, l := range lines {
		if l.Kind == LineEpisodeMarker {
			markers = append(markers, i)
		}
	}
	require.Len(t, markers, 3)

	assert.Equal(t, "EPISODE 1", lines[markers[0]].Text)
	assert.Equal(t, "EPISODE 2", lines[markers[1]].Text)
	assert.Equal(t, "EPISODE 3", lines[markers[2]].Text)

	// Each marker is immediately followed by the expected scene heading.
	assert.Equal(t, LineSceneHeading, lines[markers[0]+1].Kind)
	assert.Contains(t, lines[markers[0]+1].Text, "1    ")
	assert.Equal(t, LineSceneHeading, lines[markers[1]+1].Kind)
	assert.Contains(t, lines[markers[1]+1].Text, "4    ")
	assert.Equal(t, LineSceneHeading, lines[markers[2]+1].Kind)
	assert.Contains(t, lines[markers[2]+1].Text, "6    ")
}

func TestScreenplayLines_SingleEpisode(t *testing.T) {
	scenes := []types.Scene{sceneN(1, 1), sceneN(2, 1)}
	lines := ScreenplayLines(scenes)

	count := 0
	for _, l := range lines {
		if l.Kind == LineEpisodeMarker {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScreenplayLines_FramingAndDialogue(t *testing.T) {
	scenes := []types.Scene{
		{
			SceneNumber:   1,
			EpisodeNumber: 1,
			Heading:       "int. office - night",
			Action:        "Rain.",
			Dialogue: []types.DialogueLine{
				{Character: "Sarah", Parenthetical: "tired", Line: "Go home, Mike."},
				{Character: "", Line: "dropped"},
			},
			Transition: "cut to:",
		},
	}

	lines := ScreenplayLines(scenes)

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, LineFadeIn, lines[0].Kind)
	assert.Equal(t, LineFadeOut, lines[len(lines)-2].Kind)
	assert.Equal(t, LineTheEnd, lines[len(lines)-1].Kind)

	var kinds []LineKind
	var texts []string
	for _, l := range lines {
		kinds = append(kinds, l.Kind)
		texts = append(texts, l.Text)
	}
	assert.Contains(t, texts, "1    INT. OFFICE - NIGHT")
	assert.Contains(t, texts, "SARAH")
	assert.Contains(t, texts, "(tired)")
	assert.Contains(t, texts, "CUT TO:")
	assert.NotContains(t, texts, "dropped")
	assert.Contains(t, kinds, LineTransition)
}

func TestTotalPages(t *testing.T) {
	chars := make([]types.Character, 3)
	scenes := make([]types.Scene, 5)
	assert.Equal(t, 10, TotalPages(chars, scenes))
	assert.Equal(t, 2, TotalPages(nil, nil))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "the_last_case_screenplay.pdf", FileName("The Last Case"))
	assert.Equal(t, "mr_smith_screenplay.pdf", FileName("Mr. Smith"))
}

func TestExport_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPDFExporter(dir)

	characters := []types.Character{
		{Name: "SARAH CHEN", Age: 58, Role: types.RoleProtagonist, Description: "Retired detective.", Arc: "Finds closure."},
	}
	scenes := []types.Scene{
		{
			SceneNumber:   1,
			EpisodeNumber: 1,
			Heading:       "INT. OFFICE - NIGHT",
			Action:        "Sarah studies the board.",
			Dialogue:      []types.DialogueLine{{Character: "SARAH", Line: "One more time."}},
		},
	}

	path, err := exporter.Export("The Last Case", "AI Generated", characters, scenes)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "the_last_case_screenplay.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExport_MissingImageIsSkipped(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPDFExporter(dir)

	characters := []types.Character{
		{Name: "MIKE", Role: types.RoleSupporting, Description: "Partner.", ImagePath: filepath.Join(dir, "missing.png")},
	}

	path, err := exporter.Export("Gone", "AI Generated", characters, nil)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExport_BadOutputDir(t *testing.T) {
	// A file where the directory should be makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	exporter := NewPDFExporter(blocker)
	_, err := exporter.Export("T", "A", nil, nil)
	assert.Error(t, err)
}
