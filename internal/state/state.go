// Package state holds the accumulated screenplay state threaded through the
// pipeline, and the partial updates stages merge back into it.
package state

import "github.com/jonathan/screenplay-agent/internal/types"

// State is the full pipeline state. Fields are zero-valued until the stage
// that produces them has run; once written, a field is only overwritten by a
// later stage that explicitly recomputes it.
type State struct {
	// Input
	Idea string

	// Logline stage
	Logline string
	Genre   string
	Tone    string

	// Outline stage
	Outline   string
	BeatSheet string

	// Character stage (image stage rewrites ImagePath)
	Characters []types.Character

	// Scene stage (dialogue stage rewrites per-scene dialogue)
	Scenes       []types.Scene
	EpisodeCount int

	// Title stage
	Title  string
	Author string

	// Format stage
	FormattedScreenplay string

	// Export stage
	PDFPath    string
	TotalPages int
}

// Update is the partial state returned by one stage. Nil fields leave the
// corresponding State field untouched; non-nil slices replace wholesale.
type Update struct {
	Logline   *string
	Genre     *string
	Tone      *string
	Outline   *string
	BeatSheet *string

	Characters []types.Character
	Scenes     []types.Scene

	EpisodeCount *int
	Title        *string
	Author       *string

	FormattedScreenplay *string
	PDFPath             *string
	TotalPages          *int
}

// Apply merges the update into s with shallow key-overwrite semantics.
func (u Update) Apply(s *State) {
	if u.Logline != nil {
		s.Logline = *u.Logline
	}
	if u.Genre != nil {
		s.Genre = *u.Genre
	}
	if u.Tone != nil {
		s.Tone = *u.Tone
	}
	if u.Outline != nil {
		s.Outline = *u.Outline
	}
	if u.BeatSheet != nil {
		s.BeatSheet = *u.BeatSheet
	}
	if u.Characters != nil {
		s.Characters = u.Characters
	}
	if u.Scenes != nil {
		s.Scenes = u.Scenes
	}
	if u.EpisodeCount != nil {
		s.EpisodeCount = *u.EpisodeCount
	}
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Author != nil {
		s.Author = *u.Author
	}
	if u.FormattedScreenplay != nil {
		s.FormattedScreenplay = *u.FormattedScreenplay
	}
	if u.PDFPath != nil {
		s.PDFPath = *u.PDFPath
	}
	if u.TotalPages != nil {
		s.TotalPages = *u.TotalPages
	}
}

// String returns a pointer to v, for building updates.
func String(v string) *string { return &v }

// Int returns a pointer to v, for building updates.
func Int(v int) *int { return &v }
