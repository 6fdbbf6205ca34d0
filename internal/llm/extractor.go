// Package llm - extractor.go provides LLM-based structured extraction of job details.
package llm

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/job-analyzer/internal/schemas"
	"github.com/jonathan/job-analyzer/internal/types"
)

//go:embed job_details.schema.json
var jobDetailsSchema string

// maxDescriptionChars bounds the amount of posting text sent to the model.
const maxDescriptionChars = 12000

// JobDetails is the structured output of LLM-based job posting analysis.
type JobDetails struct {
	Title             string   `json:"title,omitempty"`
	Company           string   `json:"company,omitempty"`
	Location          string   `json:"location,omitempty"`
	RequiredSkills    []string `json:"required_skills"`
	NiceToHaveSkills  []string `json:"nice_to_have_skills"`
	ExperienceLevel   string   `json:"experience_level"`
	YearsOfExperience *int     `json:"years_of_experience,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
}

// ExtractJobDetails asks the model to parse a job posting into structured details.
// The response is validated against the embedded JSON Schema before use; any
// malformed or non-conforming response is returned as an error so callers can
// fall back to deterministic extraction.
func ExtractJobDetails(ctx context.Context, client Client, description string) (*JobDetails, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is empty")
	}

	prompt := buildJobDetailsPrompt(description)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("job details extraction failed: %w", err)
	}

	if err := schemas.ValidateJSONString(jobDetailsSchema, raw); err != nil {
		return nil, fmt.Errorf("job details response rejected: %w", err)
	}

	var details JobDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, fmt.Errorf("failed to parse job details response: %w", err)
	}

	return &details, nil
}

// ToRequirements converts LLM-extracted details into the shared requirements type.
func (d *JobDetails) ToRequirements() *types.JobRequirements {
	return &types.JobRequirements{
		RequiredSkills:    lowercaseAll(d.RequiredSkills),
		NiceToHaveSkills:  lowercaseAll(d.NiceToHaveSkills),
		ExperienceLevel:   parseExperienceLevel(d.ExperienceLevel),
		YearsOfExperience: d.YearsOfExperience,
		Keywords:          lowercaseAll(d.Keywords),
	}
}

func parseExperienceLevel(s string) types.ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry":
		return types.LevelEntry
	case "mid":
		return types.LevelMid
	case "senior":
		return types.LevelSenior
	case "executive":
		return types.LevelExecutive
	default:
		return types.LevelUnknown
	}
}

func lowercaseAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func buildJobDetailsPrompt(description string) string {
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars]
	}

	var sb strings.Builder
	sb.WriteString(`You are an expert job posting parser. Extract structured information from the job posting below.
Preserve the original wording of skill names; do not invent skills that are not mentioned.

Return ONLY valid JSON matching this exact structure:
{
  "title": "string",
  "company": "string",
  "location": "string",
  "required_skills": ["string"],
  "nice_to_have_skills": ["string"],
  "experience_level": "entry | mid | senior | executive | unknown",
  "years_of_experience": 5,
  "keywords": ["string"]
}

IMPORTANT:
- required_skills are skills the posting demands; nice_to_have_skills are explicitly preferred or optional.
- years_of_experience is the minimum number of years requested, or null if not stated.
- keywords are additional domain terms useful for matching (frameworks, tools, methodologies).
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Job posting:
"""
`)
	sb.WriteString(description)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}
