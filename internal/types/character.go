// Package types defines the domain entities shared across the screenplay pipeline.
package types

// Role classifies a character's narrative function.
type Role string

// Role values accepted by the character stage.
const (
	RoleProtagonist Role = "protagonist"
	RoleAntagonist  Role = "antagonist"
	RoleSupporting  Role = "supporting"
)

// Character is one character profile produced by the character stage.
// Name is unique within a generation run and keys the image lookup.
type Character struct {
	Name        string `json:"name" validate:"required"`
	Age         int    `json:"age,omitempty" validate:"gte=0"`
	Description string `json:"description"`
	Role        Role   `json:"role" validate:"required,oneof=protagonist antagonist supporting"`
	Arc         string `json:"arc,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
	ImagePath   string `json:"image_path,omitempty"`
}
