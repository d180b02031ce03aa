package types

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCharacter checks the struct-level constraints on a character,
// including the role enum.
func ValidateCharacter(c *Character) error {
	return validate.Struct(c)
}

// ValidateScene checks the struct-level constraints on a scene.
func ValidateScene(s *Scene) error {
	return validate.Struct(s)
}
