package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "JSON wrapped in json block",
			input:    "```json\n{\"logline\": \"A story.\"}\n```",
			expected: `{"logline": "A story."}`,
		},
		{
			name:     "JSON wrapped in bare block",
			input:    "```\n{\"logline\": \"A story.\"}\n```",
			expected: `{"logline": "A story."}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"genre": "Drama"}`,
			expected: `{"genre": "Drama"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"tone\": \"Dark\"}\n  ",
			expected: `{"tone": "Dark"}`,
		},
		{
			name:     "language identifier line skipped",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
