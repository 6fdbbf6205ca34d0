package ingestion

import (
	"github.com/jonathan/job-analyzer/internal/types"
)

// manualSite marks postings supplied as raw text rather than fetched.
const manualSite = "manual"

// FromText builds a JobPosting from a manually supplied description. The
// first non-empty line is used as a best-effort title.
func FromText(description string) *types.JobPosting {
	title := FirstLine(description)
	if title == "" {
		title = "Job Position"
	}

	return &types.JobPosting{
		Site:        manualSite,
		Title:       title,
		Description: description,
	}
}
