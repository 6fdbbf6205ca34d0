package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionTypes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single backend match",
			text:     "Senior Backend Engineer working on APIs",
			expected: []string{"backend"},
		},
		{
			name:     "multiple types detected in order",
			text:     "Full stack developer comfortable with DevOps practices",
			expected: []string{"fullstack", "devops"},
		},
		{
			name:     "mobile via framework keyword",
			text:     "Build apps with React Native and Flutter",
			expected: []string{"mobile"},
		},
		{
			name:     "data via machine learning",
			text:     "Machine learning models in production",
			expected: []string{"data"},
		},
		{
			name:     "hyphenated variant",
			text:     "front-end position",
			expected: []string{"frontend"},
		},
		{
			name:     "case insensitive",
			text:     "QUALITY ASSURANCE role",
			expected: []string{"qa"},
		},
		{
			name:     "no signal",
			text:     "Generalist role at a growing company",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PositionTypes(tt.text))
		})
	}
}

func TestPositionTypes_BucketReportedOnce(t *testing.T) {
	// Several keywords from the same bucket yield a single entry.
	got := PositionTypes("backend back-end server side api developer")
	assert.Equal(t, []string{"backend"}, got)
}
