package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of spaces",
			input:    "Senior   Backend    Engineer",
			expected: "Senior Backend Engineer",
		},
		{
			name:     "tabs and newlines become single spaces",
			input:    "Python\t\tDocker\n\nKubernetes",
			expected: "Python Docker Kubernetes",
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "  \n hello world \t ",
			expected: "hello world",
		},
		{
			name:     "non-breaking space",
			input:    "hello\u00a0world",
			expected: "hello world",
		},
		{
			name:     "zero-width space removed between words",
			input:    "hello \u200bworld",
			expected: "hello world",
		},
		{
			name:     "byte order mark stripped",
			input:    "\ufeffhello \ufeffworld",
			expected: "hello world",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n\u00a0 ",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "hello world",
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  Senior \u00a0 Backend\t\tEngineer \n Requirements:  Python ",
		"no changes needed",
		"",
		"\u200b\u200b mixed   content \u200d",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single line", "Senior Backend Engineer", "Senior Backend Engineer"},
		{"skips leading blank lines", "\n\n  \nData Engineer\nMore text", "Data Engineer"},
		{"trims the line", "  Frontend Developer  \nrest", "Frontend Developer"},
		{"all blank", "\n \n\t\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstLine(tt.input))
		})
	}
}
