package stages

import (
	"context"
	"testing"

	"github.com/jonathan/screenplay-agent/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		logline string
		want    string
	}{
		{
			name:    "first four words upper-cased",
			logline: "A retired detective returns for one last cold case.",
			want:    "A RETIRED DETECTIVE RETURNS",
		},
		{
			name:    "commas and periods stripped",
			logline: "Lost, alone, and hunted.",
			want:    "LOST ALONE AND HUNTED",
		},
		{
			name:    "short logline kept whole",
			logline: "Two brothers",
			want:    "TWO BROTHERS",
		},
		{
			name:    "empty logline falls back",
			logline: "",
			want:    "UNTITLED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.State{Logline: tt.logline}
			upd, err := Title{}.Run(context.Background(), st)
			require.NoError(t, err)

			upd.Apply(&st)
			assert.Equal(t, tt.want, st.Title)
			assert.Equal(t, "AI Generated", st.Author)
		})
	}
}
