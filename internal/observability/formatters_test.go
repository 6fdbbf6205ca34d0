package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-analyzer/internal/types"
)

func TestPrintJobResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	years := 5
	result := &types.JobPostingResult{
		Title:             "Senior Backend Engineer",
		Company:           "Acme Corp",
		Location:          "Remote - US",
		Site:              "linkedin",
		ExperienceLevel:   types.LevelSenior,
		YearsOfExperience: &years,
		Language:          "en",
		PositionTypes:     []string{"backend"},
		Skills:            []string{"python", "postgresql", "docker"},
		Requirements:      []string{"5+ years of backend experience"},
	}

	p.PrintJobResult(result)
	output := buf.String()

	assert.Contains(t, output, "JOB POSTING ANALYSIS")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "backend")
}

func TestPrintJobResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobResult_ManySkillsTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.JobPostingResult{
		Title:  "Engineer",
		Skills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintJobResult(result)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintRelevanceScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scores := []types.RelevanceScore{
		{
			SubjectID:      "octocat/ml-pipeline",
			Score:          44,
			Recommendation: types.Recommended,
			Matched: []types.MatchEntry{
				{Kind: types.MatchLanguage, MatchedTerm: "python", RequiredTerm: "python"},
			},
		},
		{
			SubjectID:      "octocat/dotfiles",
			Score:          0,
			Recommendation: types.NotRelevant,
		},
	}

	p.PrintRelevanceScores(scores)
	output := buf.String()

	assert.Contains(t, output, "REPOSITORY RANKING")
	assert.Contains(t, output, "octocat/ml-pipeline")
	assert.Contains(t, output, "44")
	assert.Contains(t, output, "recommended")
	assert.Contains(t, output, "python")
}

func TestPrintRelevanceScores_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRelevanceScores(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkillMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := types.RelevanceScore{
		Score:          33,
		Recommendation: types.NotRelevant,
		Matched: []types.MatchEntry{
			{Kind: types.MatchSkill, MatchedTerm: "React", RequiredTerm: "react"},
		},
		Missing: []string{"typescript", "aws"},
	}

	p.PrintSkillMatch(score)
	output := buf.String()

	assert.Contains(t, output, "RESUME SKILL MATCH")
	assert.Contains(t, output, "33")
	assert.Contains(t, output, "typescript")
	assert.Contains(t, output, "aws")
}
