// Package export builds the paginated screenplay PDF: title page, character
// reference pages, and the scene-by-scene screenplay with episode markers.
package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/screenplay-agent/internal/types"
)

// LineKind tags one renderable screenplay line with its layout style.
type LineKind int

// Line kinds, in the order they typically appear within a scene.
const (
	LineFadeIn LineKind = iota
	LineEpisodeMarker
	LineSceneHeading
	LineAction
	LineCharacter
	LineParenthetical
	LineDialogue
	LineTransition
	LineFadeOut
	LineTheEnd
)

// Line is one renderable unit of the screenplay section.
type Line struct {
	Kind LineKind
	Text string
}

// ScreenplayLines flattens scenes into renderable lines, inserting an
// EPISODE marker whenever the episode number changes while iterating scenes
// in scene-number order. Scene numbers are prefixed onto headings.
func ScreenplayLines(scenes []types.Scene) []Line {
	lines := []Line{{Kind: LineFadeIn, Text: "FADE IN:"}}

	currentEpisode := 0
	for _, scene := range scenes {
		if scene.EpisodeNumber != currentEpisode {
			currentEpisode = scene.EpisodeNumber
			lines = append(lines, Line{
				Kind: LineEpisodeMarker,
				Text: fmt.Sprintf("EPISODE %d", currentEpisode),
			})
		}

		lines = append(lines, Line{
			Kind: LineSceneHeading,
			Text: fmt.Sprintf("%d    %s", scene.SceneNumber, strings.ToUpper(scene.Heading)),
		})
		lines = append(lines, Line{Kind: LineAction, Text: scene.Action})

		for _, d := range scene.Dialogue {
			if d.Character == "" || d.Line == "" {
				continue
			}
			lines = append(lines, Line{Kind: LineCharacter, Text: strings.ToUpper(d.Character)})
			if d.Parenthetical != "" {
				p := d.Parenthetical
				if !strings.HasPrefix(p, "(") {
					p = "(" + p + ")"
				}
				lines = append(lines, Line{Kind: LineParenthetical, Text: p})
			}
			lines = append(lines, Line{Kind: LineDialogue, Text: d.Line})
		}

		if scene.Transition != "" {
			lines = append(lines, Line{Kind: LineTransition, Text: strings.ToUpper(scene.Transition)})
		}
	}

	lines = append(lines,
		Line{Kind: LineFadeOut, Text: "FADE OUT."},
		Line{Kind: LineTheEnd, Text: "THE END"},
	)
	return lines
}

// TotalPages reports the heuristic page estimate for the exported document:
// one reference page per character, title and section pages, one page per
// scene. It is an estimate, not an exact count.
func TotalPages(characters []types.Character, scenes []types.Scene) int {
	return len(characters) + 2 + len(scenes)
}

// FileName derives the deterministic PDF filename for a title: spaces become
// underscores, periods are stripped, the rest lower-cased.
func FileName(title string) string {
	safe := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(title, " ", "_"), ".", ""))
	return safe + "_screenplay.pdf"
}
