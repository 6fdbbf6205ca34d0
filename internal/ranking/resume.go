package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/job-analyzer/internal/types"
)

// partialMatchWeight is the score contribution of a partial match relative to
// a full match.
const partialMatchWeight = 50

// MatchResumeSkills scores a résumé's declared skills against a job's
// required skills. Each required skill lands in exactly one of three buckets:
// matched (exact case-insensitive presence), partial (one term contains the
// other as a substring), or missing. Matched and missing together exactly
// partition the required list; partials are a softer third signal consulted
// separately by callers.
//
// Score: min(100, round(100*|matched|/|required| + 50*|partial|/|required|)).
// An empty required list scores 0.
func MatchResumeSkills(resumeSkills, requiredSkills []string) types.RelevanceScore {
	if len(requiredSkills) == 0 {
		return types.RelevanceScore{Score: 0, Recommendation: types.NotRelevant}
	}

	resumeLower := make([]string, len(resumeSkills))
	for i, skill := range resumeSkills {
		resumeLower[i] = strings.ToLower(skill)
	}

	var matched, partials []types.MatchEntry
	var missing []string

	for _, required := range requiredSkills {
		requiredLower := strings.ToLower(required)

		if idx := indexOf(resumeLower, requiredLower); idx >= 0 {
			matched = append(matched, types.MatchEntry{
				Kind:         types.MatchSkill,
				MatchedTerm:  resumeSkills[idx],
				RequiredTerm: required,
			})
			continue
		}

		partialIdx := -1
		for i, resumeSkill := range resumeLower {
			if resumeSkill == "" {
				continue
			}
			if strings.Contains(resumeSkill, requiredLower) || strings.Contains(requiredLower, resumeSkill) {
				partialIdx = i
				break
			}
		}
		if partialIdx >= 0 {
			partials = append(partials, types.MatchEntry{
				Kind:         types.MatchSkill,
				MatchedTerm:  resumeSkills[partialIdx],
				RequiredTerm: required,
			})
			// Partials are neither fully matched nor missing.
			continue
		}

		missing = append(missing, required)
	}

	total := float64(len(requiredSkills))
	raw := 100*float64(len(matched))/total + partialMatchWeight*float64(len(partials))/total
	score := int(math.Round(raw))
	if score > maxScore {
		score = maxScore
	}

	return types.RelevanceScore{
		Score:          score,
		Matched:        matched,
		PartialMatches: partials,
		Missing:        missing,
		Recommendation: bucketScore(score),
		ShouldInclude:  score >= includeThreshold,
	}
}

// indexOf returns the index of target in list, or -1.
func indexOf(list []string, target string) int {
	for i, item := range list {
		if item == target {
			return i
		}
	}
	return -1
}
