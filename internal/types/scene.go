package types

// DialogueLine is a single spoken line. Character should reference a known
// Character name, but that linkage is not enforced.
type DialogueLine struct {
	Character     string `json:"character"`
	Parenthetical string `json:"parenthetical,omitempty"`
	Line          string `json:"line"`
}

// Scene is one screenplay scene. SceneNumber is 1-based and strictly
// increasing across the whole screenplay; scenes sharing an EpisodeNumber
// form a contiguous range of scene numbers.
type Scene struct {
	SceneNumber   int            `json:"scene_number" validate:"gte=1"`
	EpisodeNumber int            `json:"episode_number" validate:"gte=1"`
	Heading       string         `json:"heading" validate:"required"`
	Action        string         `json:"action"`
	Dialogue      []DialogueLine `json:"dialogue"`
	Transition    string         `json:"transition,omitempty"`
}
