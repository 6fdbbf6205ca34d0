// Package types provides type definitions for structured data used throughout the job-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a job posting extracted from a URL or supplied as raw text.
// It is immutable once produced by the extractor.
type JobPosting struct {
	URL         string `json:"url,omitempty"`
	Site        string `json:"site"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}

// ExperienceLevel represents the seniority bucket of a job posting.
type ExperienceLevel string

// Experience level buckets, from most junior to most senior.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
	LevelUnknown   ExperienceLevel = "unknown"
)

// JobRequirements represents the structured requirements of a job posting.
// It is built once per posting and consumed read-only by the scorers.
type JobRequirements struct {
	RequiredSkills    []string        `json:"required_skills"`
	NiceToHaveSkills  []string        `json:"nice_to_have_skills,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	YearsOfExperience *int            `json:"years_of_experience,omitempty"`
	Keywords          []string        `json:"keywords,omitempty"`
}

// JobPostingResult is the structured analysis of a job posting returned at the
// core boundary.
type JobPostingResult struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Company           string          `json:"company,omitempty"`
	Location          string          `json:"location,omitempty"`
	Site              string          `json:"site,omitempty"`
	Keywords          []string        `json:"keywords"`
	Skills            []string        `json:"skills"`
	Requirements      []string        `json:"requirements"`
	ExperienceLevel   ExperienceLevel `json:"experience_level,omitempty"`
	YearsOfExperience *int            `json:"years_of_experience,omitempty"`
	Language          string          `json:"language,omitempty"`
	PositionTypes     []string        `json:"position_types,omitempty"`
}
