package types

// RepositorySummary describes a code repository offered as a candidate
// artifact for relevance scoring. Languages maps language name to byte count,
// as reported by the GitHub languages API.
type RepositorySummary struct {
	Name            string         `json:"name"`
	FullName        string         `json:"full_name,omitempty"`
	URL             string         `json:"url,omitempty"`
	Description     string         `json:"description,omitempty"`
	PrimaryLanguage string         `json:"language,omitempty"`
	Languages       map[string]int `json:"languages,omitempty"`
	Topics          []string       `json:"topics,omitempty"`
	Stars           int            `json:"stars"`
}

// ResumeSkillSet is the list of skills a résumé declares, offered as a
// candidate artifact for matching against job requirements.
type ResumeSkillSet struct {
	Skills []string `json:"skills"`
}
