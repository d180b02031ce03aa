// Package format renders structured scenes into industry-style screenplay
// text (Courier 12pt equivalent spacing). Rendering is deterministic and
// makes no external calls.
package format

import (
	"strings"

	"github.com/jonathan/screenplay-agent/internal/types"
)

// Layout constants. Action wraps at 60 columns, dialogue at 35; the
// indents mirror standard screenplay margins.
const (
	pageWidth           = 60
	dialogueWidth       = 35
	dialogueIndent      = 10
	characterIndent     = 20
	parentheticalIndent = 15
	transitionIndent    = 45
)

// Screenplay formats a complete screenplay: title block, FADE IN, every
// scene in order, and the closing FADE OUT / THE END block.
func Screenplay(title, author string, scenes []types.Scene) string {
	var sb strings.Builder

	sb.WriteString(titlePage(title, author))
	sb.WriteString("\n" + strings.Repeat("=", pageWidth) + "\n\n")
	sb.WriteString("FADE IN:\n")

	for _, scene := range scenes {
		sb.WriteString(sceneText(scene))
	}

	sb.WriteString("\n\nFADE OUT.\n\nTHE END")
	return sb.String()
}

// titlePage centers the title block with padding above and below.
func titlePage(title, author string) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", 20))
	sb.WriteString(strings.ToUpper(title) + "\n\n\n")
	sb.WriteString("Written by\n\n")
	sb.WriteString(author + "\n")
	sb.WriteString(strings.Repeat("\n", 20))
	return sb.String()
}

// sceneText formats one scene: heading, action, dialogue blocks, transition.
// Heading content passes through untouched apart from upper-casing.
func sceneText(scene types.Scene) string {
	var sb strings.Builder

	sb.WriteString("\n\n" + strings.ToUpper(scene.Heading) + "\n\n")
	sb.WriteString(strings.Join(Wrap(scene.Action, pageWidth), "\n") + "\n")

	for _, d := range scene.Dialogue {
		if d.Character == "" || d.Line == "" {
			continue
		}

		sb.WriteString("\n" + strings.Repeat(" ", characterIndent) + strings.ToUpper(d.Character) + "\n")

		if d.Parenthetical != "" {
			p := d.Parenthetical
			if !strings.HasPrefix(p, "(") {
				p = "(" + p + ")"
			}
			sb.WriteString(strings.Repeat(" ", parentheticalIndent) + p + "\n")
		}

		indent := strings.Repeat(" ", dialogueIndent)
		lines := Wrap(d.Line, dialogueWidth)
		for i, line := range lines {
			lines[i] = indent + line
		}
		sb.WriteString(strings.Join(lines, "\n") + "\n")
	}

	if scene.Transition != "" {
		sb.WriteString("\n" + strings.Repeat(" ", transitionIndent) + strings.ToUpper(scene.Transition) + "\n")
	}

	return sb.String()
}

// Wrap greedily fills lines: words are appended while the running length
// plus one separator stays within limit, then the line is flushed. The
// algorithm is idempotent for an already-wrapped string at the same limit.
func Wrap(text string, limit int) []string {
	words := strings.Fields(text)

	var lines []string
	current := ""
	for _, word := range words {
		if len(current)+len(word)+1 <= limit {
			current += word + " "
		} else {
			lines = append(lines, strings.TrimSpace(current))
			current = word + " "
		}
	}
	if current != "" {
		lines = append(lines, strings.TrimSpace(current))
	}
	return lines
}
