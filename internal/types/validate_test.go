package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCharacter(t *testing.T) {
	tests := []struct {
		name      string
		character Character
		wantErr   bool
	}{
		{
			name:      "valid protagonist",
			character: Character{Name: "SARAH", Age: 58, Role: RoleProtagonist, Description: "d"},
		},
		{
			name:      "valid supporting without age",
			character: Character{Name: "MARCUS", Role: RoleSupporting},
		},
		{
			name:      "missing name",
			character: Character{Role: RoleAntagonist},
			wantErr:   true,
		},
		{
			name:      "role outside the enum",
			character: Character{Name: "X", Role: Role("villain")},
			wantErr:   true,
		},
		{
			name:      "missing role",
			character: Character{Name: "X"},
			wantErr:   true,
		},
		{
			name:      "negative age",
			character: Character{Name: "X", Age: -1, Role: RoleProtagonist},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCharacter(&tt.character)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateScene(t *testing.T) {
	valid := Scene{SceneNumber: 1, EpisodeNumber: 1, Heading: "INT. ROOM - DAY"}
	assert.NoError(t, ValidateScene(&valid))

	missingHeading := Scene{SceneNumber: 1, EpisodeNumber: 1}
	assert.Error(t, ValidateScene(&missingHeading))

	badNumber := Scene{SceneNumber: 0, EpisodeNumber: 1, Heading: "INT. ROOM - DAY"}
	assert.Error(t, ValidateScene(&badNumber))
}
