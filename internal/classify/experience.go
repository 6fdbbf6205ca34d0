// Package classify provides keyword-bucket classifiers for job postings:
// experience level, posting language, and position type.
package classify

import (
	"strings"

	"github.com/jonathan/job-analyzer/internal/types"
)

// levelBucket pairs an experience level with its trigger keywords.
type levelBucket struct {
	level    types.ExperienceLevel
	keywords []string
}

// levelBuckets is evaluated strictly in order: entry, mid, senior, executive.
// The first bucket with any keyword hit wins. The explicit ordering resolves
// ambiguity: a posting mentioning both "junior" and "lead" classifies as
// entry, never as senior by accident of map iteration.
var levelBuckets = []levelBucket{
	{types.LevelEntry, []string{"entry level", "junior", "0-1 year", "<1 year", "intern", "trainee"}},
	{types.LevelMid, []string{"mid level", "mid-senior", "2-5 years", "3+ years", "intermediate"}},
	{types.LevelSenior, []string{"senior", "5+ years", "7+ years", "lead", "principal"}},
	{types.LevelExecutive, []string{"director", "vp", "head of", "chief", "cto", "cio"}},
}

// ExperienceLevel classifies the seniority of a posting from its normalized
// text. Returns LevelUnknown when no bucket matches.
func ExperienceLevel(normalizedText string) types.ExperienceLevel {
	lower := strings.ToLower(normalizedText)

	for _, bucket := range levelBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.level
			}
		}
	}

	return types.LevelUnknown
}
