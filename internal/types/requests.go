package types

import "github.com/go-playground/validator/v10"

// JobPostingInput is the caller-supplied job input. Exactly one of URL or
// Description must be present; the request is rejected before any extraction
// begins otherwise.
type JobPostingInput struct {
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// RankRepositoriesRequest asks for a set of repositories to be ranked against
// a job's requirements.
type RankRepositoriesRequest struct {
	Repositories []RepositorySummary `json:"repositories" validate:"required,min=1"`
	Requirements JobRequirements     `json:"requirements"`
}

// MatchSkillsRequest asks for résumé skills to be matched against a job's
// required skills.
type MatchSkillsRequest struct {
	ResumeSkills   []string `json:"resume_skills" validate:"required"`
	RequiredSkills []string `json:"required_skills" validate:"required"`
}

// Validate validates the JobPostingInput. This is the one caller-visible
// error in the core: neither URL nor description supplied.
func (i *JobPostingInput) Validate() error {
	if i.URL == "" && i.Description == "" {
		return &ErrMissingJobInput{}
	}
	validate := validator.New()
	return validate.Struct(i)
}

// Validate validates the RankRepositoriesRequest using the validator.
func (r *RankRepositoriesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchSkillsRequest using the validator.
func (r *MatchSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ErrMissingJobInput indicates that neither a URL nor a description was supplied.
type ErrMissingJobInput struct{}

func (e *ErrMissingJobInput) Error() string {
	return "either url or description is required"
}
