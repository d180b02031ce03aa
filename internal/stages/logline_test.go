package stages

import (
	"context"
	"testing"

	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogline_Success(t *testing.T) {
	client := &MockClient{
		GenerateStructuredFunc: respondWith(`{
			"logline": "A retired detective reopens the cold case that ended her career.",
			"genre": "Thriller",
			"tone": "Suspenseful"
		}`),
	}

	st := state.State{Idea: "A retired detective returns for one last cold case"}
	upd, err := Logline{Client: client}.Run(context.Background(), st)
	require.NoError(t, err)

	upd.Apply(&st)
	assert.Equal(t, "A retired detective reopens the cold case that ended her career.", st.Logline)
	assert.Equal(t, "Thriller", st.Genre)
	assert.Equal(t, "Suspenseful", st.Tone)

	// The idea is interpolated into the user instruction.
	require.Len(t, client.Users, 1)
	assert.Contains(t, client.Users[0], "A retired detective returns for one last cold case")
	assert.NotEmpty(t, client.Systems[0])
}

func TestLogline_FallbackOnAPIError(t *testing.T) {
	client := &MockClient{GenerateStructuredFunc: failWith("timeout")}

	st := state.State{Idea: "anything"}
	upd, err := Logline{Client: client}.Run(context.Background(), st)
	require.NoError(t, err, "generation failures must not abort the pipeline")

	upd.Apply(&st)
	assert.Equal(t, "A compelling story unfolds.", st.Logline)
	assert.Equal(t, "Drama", st.Genre)
	assert.Equal(t, "Dramatic", st.Tone)
}

func TestLogline_FallbackOnSchemaViolation(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing fields", `{"logline": "only a logline"}`},
		{"wrong types", `{"logline": 12, "genre": "Drama", "tone": "Dark"}`},
		{"not JSON", `FADE IN:`},
		{"empty strings", `{"logline": "", "genre": "", "tone": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockClient{GenerateStructuredFunc: respondWith(tt.response)}

			st := state.State{Idea: "idea"}
			upd, err := Logline{Client: client}.Run(context.Background(), st)
			require.NoError(t, err)

			upd.Apply(&st)
			assert.Equal(t, "A compelling story unfolds.", st.Logline)
			assert.Equal(t, "Drama", st.Genre)
			assert.Equal(t, "Dramatic", st.Tone)
		})
	}
}

func TestLogline_DoesNotTouchOtherFields(t *testing.T) {
	client := &MockClient{
		GenerateStructuredFunc: respondWith(`{"logline": "L.", "genre": "G", "tone": "T"}`),
	}

	st := state.State{Idea: "idea", Outline: "pre-existing outline"}
	upd, err := Logline{Client: client}.Run(context.Background(), st)
	require.NoError(t, err)

	upd.Apply(&st)
	assert.Equal(t, "pre-existing outline", st.Outline)
	assert.Equal(t, "idea", st.Idea)
}
