package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-analyzer/internal/types"
)

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.ExperienceLevel
	}{
		{
			name:     "entry level phrase",
			text:     "this is an entry level position for recent graduates",
			expected: types.LevelEntry,
		},
		{
			name:     "junior keyword",
			text:     "we are looking for a junior developer",
			expected: types.LevelEntry,
		},
		{
			name:     "mid level",
			text:     "mid level engineer with 2-5 years experience",
			expected: types.LevelMid,
		},
		{
			name:     "senior keyword",
			text:     "senior backend engineer wanted",
			expected: types.LevelSenior,
		},
		{
			name:     "years of experience",
			text:     "must have 5+ years building distributed systems",
			expected: types.LevelSenior,
		},
		{
			name:     "executive",
			text:     "director of engineering for our platform org",
			expected: types.LevelExecutive,
		},
		{
			name:     "no signal",
			text:     "software engineer working on payments",
			expected: types.LevelUnknown,
		},
		{
			name:     "empty text",
			text:     "",
			expected: types.LevelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceLevel(tt.text))
		})
	}
}

// A posting mentioning both junior and lead must classify as entry: buckets
// are evaluated in a fixed order, entry before senior.
func TestExperienceLevel_PriorityOrder(t *testing.T) {
	level := ExperienceLevel("we need a junior developer who will become a future lead")

	assert.Equal(t, types.LevelEntry, level)
}

func TestExperienceLevel_CaseInsensitive(t *testing.T) {
	assert.Equal(t, types.LevelSenior, ExperienceLevel("SENIOR Software Engineer"))
}
