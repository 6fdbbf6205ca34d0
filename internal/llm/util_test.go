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
			name:     "plain JSON unchanged",
			input:    `{"title": "Backend Engineer"}`,
			expected: `{"title": "Backend Engineer"}`,
		},
		{
			name:     "json code block",
			input:    "```json\n{\"title\": \"Backend Engineer\"}\n```",
			expected: `{"title": "Backend Engineer"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"title\": \"Backend Engineer\"}\n```",
			expected: `{"title": "Backend Engineer"}`,
		},
		{
			name:     "code block with surrounding whitespace",
			input:    "  ```json\n{\"a\": 1}\n```  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "brace on first line after fence",
			input:    "```\n{\n  \"a\": 1\n}\n```",
			expected: "{\n  \"a\": 1\n}",
		},
		{
			name:     "empty string",
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
