// Package ranking provides the additive relevance scoring engine used to rank
// candidate artifacts against a job's requirements. Every scoring function is
// a pure computation over its inputs; none holds state between calls, so they
// may be invoked concurrently without coordination.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/job-analyzer/internal/types"
)

// Point values for the repository scoring rules. Carried over verbatim from
// the scoring policy other components depend on; the cap and thresholds below
// define observable behavior.
const (
	primaryLanguagePoints = 30
	otherLanguagePoints   = 15
	topicPoints           = 10
	keywordPoints         = 5
	maxStarBonus          = 5
	maxScore              = 100
)

// Recommendation thresholds on the final capped score.
const (
	highlyRecommendedThreshold = 70
	recommendedThreshold       = 40
	maybeRelevantThreshold     = 20
	includeThreshold           = 30
)

// ScoreRepository ranks a repository against job requirements using additive
// point rules: +30 for a primary-language overlap (credited once), +15 per
// other overlapping language, +10 per overlapping topic, +5 per keyword found
// in the description, plus a popularity bonus of min(5, stars/10). The final
// score is capped to 100.
func ScoreRepository(repo types.RepositorySummary, requirements types.JobRequirements) types.RelevanceScore {
	score := 0
	var matched []types.MatchEntry

	required := requirements.RequiredSkills

	// Primary language: one credit, first overlapping required skill wins.
	creditedPrimary := ""
	if repo.PrimaryLanguage != "" {
		for _, skill := range required {
			if termsOverlap(repo.PrimaryLanguage, skill) {
				score += primaryLanguagePoints
				creditedPrimary = strings.ToLower(repo.PrimaryLanguage)
				matched = append(matched, types.MatchEntry{
					Kind:         types.MatchLanguage,
					MatchedTerm:  repo.PrimaryLanguage,
					RequiredTerm: skill,
					Evidence:     fmt.Sprintf("primary language %s matches requirement %s", repo.PrimaryLanguage, skill),
				})
				break
			}
		}
	}

	// Other declared languages, in sorted order for reproducible output.
	languages := make([]string, 0, len(repo.Languages))
	for lang := range repo.Languages {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	for _, lang := range languages {
		if strings.ToLower(lang) == creditedPrimary {
			continue
		}
		for _, skill := range required {
			if termsOverlap(lang, skill) {
				score += otherLanguagePoints
				matched = append(matched, types.MatchEntry{
					Kind:         types.MatchLanguage,
					MatchedTerm:  lang,
					RequiredTerm: skill,
					Evidence:     fmt.Sprintf("language %s matches requirement %s", lang, skill),
				})
				break
			}
		}
	}

	// Topics overlap required skills or keywords, deduplicated by topic.
	overlapTargets := append(append([]string{}, required...), requirements.Keywords...)
	creditedTopics := make(map[string]bool)
	for _, topic := range repo.Topics {
		topicLower := strings.ToLower(topic)
		if creditedTopics[topicLower] {
			continue
		}
		for _, target := range overlapTargets {
			if termsOverlap(topic, target) {
				score += topicPoints
				creditedTopics[topicLower] = true
				matched = append(matched, types.MatchEntry{
					Kind:         types.MatchTopic,
					MatchedTerm:  topic,
					RequiredTerm: target,
					Evidence:     fmt.Sprintf("topic %s matches %s", topic, target),
				})
				break
			}
		}
	}

	// Keywords literally present in the description, deduplicated.
	if repo.Description != "" {
		descLower := strings.ToLower(repo.Description)
		creditedKeywords := make(map[string]bool)
		for _, keyword := range requirements.Keywords {
			keywordLower := strings.ToLower(keyword)
			if keywordLower == "" || creditedKeywords[keywordLower] {
				continue
			}
			if strings.Contains(descLower, keywordLower) {
				score += keywordPoints
				creditedKeywords[keywordLower] = true
				matched = append(matched, types.MatchEntry{
					Kind:         types.MatchDescription,
					MatchedTerm:  keyword,
					RequiredTerm: keyword,
					Evidence:     "description mentions " + keyword,
				})
			}
		}
	}

	// Popularity bonus.
	bonus := repo.Stars / 10
	if bonus > maxStarBonus {
		bonus = maxStarBonus
	}
	score += bonus

	if score > maxScore {
		score = maxScore
	}

	return types.RelevanceScore{
		SubjectID:      repo.Name,
		Score:          score,
		Matched:        matched,
		Recommendation: bucketScore(score),
		ShouldInclude:  score >= includeThreshold,
	}
}

// bucketScore maps a capped score to a recommendation bucket.
func bucketScore(score int) types.Recommendation {
	switch {
	case score >= highlyRecommendedThreshold:
		return types.HighlyRecommended
	case score >= recommendedThreshold:
		return types.Recommended
	case score >= maybeRelevantThreshold:
		return types.MaybeRelevant
	default:
		return types.NotRelevant
	}
}

// termsOverlap reports whether two terms refer to the same technology.
// Terms are compared case-insensitively on token boundaries: one term's token
// sequence must appear contiguously in the other's ("python" vs "python 3"),
// or one term must be the initialism of the other ("ml" vs
// "machine-learning"). Raw substring containment is deliberately not enough:
// it would make "ML" overlap "HTML". Empty terms never overlap.
func termsOverlap(a, b string) bool {
	aTokens := splitTerm(a)
	bTokens := splitTerm(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return false
	}
	if containsTokenSeq(aTokens, bTokens) || containsTokenSeq(bTokens, aTokens) {
		return true
	}
	return isInitialism(aTokens, bTokens) || isInitialism(bTokens, aTokens)
}

// splitTerm lowercases a term and splits it on non-alphanumeric runs.
func splitTerm(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

// containsTokenSeq reports whether needle appears as a contiguous token
// subsequence of haystack.
func containsTokenSeq(haystack, needle []string) bool {
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// isInitialism reports whether the single token in abbr spells out the first
// letters of the multi-token term words ("ml" vs ["machine", "learning"]).
func isInitialism(words, abbr []string) bool {
	if len(abbr) != 1 || len(words) < 2 || len(abbr[0]) != len(words) {
		return false
	}
	for i, word := range words {
		if word[0] != abbr[0][i] {
			return false
		}
	}
	return true
}
