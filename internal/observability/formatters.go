// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/screenplay-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLogline outputs the generated logline with its genre and tone.
func (p *Printer) PrintLogline(logline, genre, tone string) {
	if logline == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Genre:  %s\n", genre))
	sb.WriteString(fmt.Sprintf("Tone:   %s\n", tone))
	sb.WriteString("\n")
	for _, line := range wrapForBox(logline) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	p.printBox("LOGLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutline outputs the story outline, truncated to the box width.
func (p *Printer) PrintOutline(outline string) {
	if outline == "" {
		return
	}

	var sb strings.Builder
	lines := wrapForBox(outline)
	count := min(len(lines), 12)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i])
		sb.WriteString("\n")
	}
	if len(lines) > 12 {
		sb.WriteString("...")
	}

	p.printBox("STORY OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCharacters outputs the generated character profiles.
func (p *Printer) PrintCharacters(characters []types.Character) {
	if len(characters) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Created %d characters:\n\n", len(characters)))

	count := min(len(characters), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := characters[i]
		sb.WriteString(fmt.Sprintf("• %s (%s", c.Name, c.Role))
		if c.Age > 0 {
			sb.WriteString(fmt.Sprintf(", %d", c.Age))
		}
		sb.WriteString(")\n")
		desc := c.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		if desc != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", desc))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(characters) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more characters", len(characters)-maxItemsToShow))
	}

	p.printBox("CHARACTERS", sb.String())
}

// PrintScenes outputs the scene list grouped by episode.
func (p *Printer) PrintScenes(scenes []types.Scene, episodeCount int) {
	if len(scenes) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d scenes across %d episode(s):\n\n", len(scenes), episodeCount))

	count := min(len(scenes), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := scenes[i]
		heading := s.Heading
		if len(heading) > 42 {
			heading = heading[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", s.SceneNumber, heading))
		sb.WriteString(fmt.Sprintf("    Episode %d, %d lines of dialogue\n", s.EpisodeNumber, len(s.Dialogue)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scenes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more scenes", len(scenes)-maxItemsToShow))
	}

	p.printBox("SCENES", sb.String())
}

// PrintExportResult outputs where the finished screenplay was written.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportResult(pdfPath string, totalPages int) {
	if pdfPath == "" {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ NO PDF PRODUCED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", totalPages))
	sb.WriteString(fmt.Sprintf("File:   %s", pdfPath))

	p.printBox("EXPORT COMPLETE", sb.String())
}

// wrapForBox splits text into lines that fit inside a box.
func wrapForBox(text string) []string {
	limit := boxWidth - 4
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			if len(current)+len(w)+1 <= limit {
				current += " " + w
			} else {
				lines = append(lines, current)
				current = w
			}
		}
		lines = append(lines, current)
	}
	return lines
}
