package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-analyzer/internal/taxonomy"
)

func TestMatch_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"lowercase", "experience with python required"},
		{"capitalized", "experience with Python required"},
		{"uppercase", "EXPERIENCE WITH PYTHON REQUIRED"},
		{"mixed", "experience with PyThOn required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(tt.text)
			assert.True(t, result.Skills["python"])
			assert.Contains(t, result.Categories[taxonomy.ProgrammingLanguages], "python")
		})
	}
}

func TestMatch_WordBoundaries(t *testing.T) {
	// Substrings inside longer words must not match.
	result := Match("We use JavaScript and Django here")

	assert.True(t, result.Skills["javascript"])
	assert.True(t, result.Skills["django"])
	assert.False(t, result.Skills["java"], "java must not match inside javascript")
	assert.False(t, result.Skills["go"], "go must not match inside django")
	assert.False(t, result.Skills["r"])
}

func TestMatch_MultiWordContiguous(t *testing.T) {
	result := Match("Spring Boot experience is a plus")
	assert.True(t, result.Skills["spring boot"])

	// The words present but separated do not form the phrase.
	separated := Match("in the spring we will boot the project")
	assert.False(t, separated.Skills["spring boot"])
	assert.True(t, separated.Skills["spring"])
}

func TestMatch_Exhaustive(t *testing.T) {
	result := Match("Python, PostgreSQL, Docker, Kubernetes and AWS")

	for _, skill := range []string{"python", "postgresql", "docker", "kubernetes", "aws"} {
		assert.True(t, result.Skills[skill], "expected %s to be recognized", skill)
	}
	assert.Contains(t, result.Categories[taxonomy.Databases], "postgresql")
	assert.Contains(t, result.Categories[taxonomy.DevOpsTools], "docker")
	assert.Contains(t, result.Categories[taxonomy.CloudPlatforms], "aws")
}

func TestMatch_Empty(t *testing.T) {
	result := Match("")
	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.SkillList())
}

func TestSkillList_Sorted(t *testing.T) {
	result := Match("kubernetes docker aws python")
	assert.Equal(t, []string{"aws", "docker", "kubernetes", "python"}, result.SkillList())
}
