// Package skills provides skill recognition over normalized job posting text:
// exact taxonomy matching, acronym and compound-term extraction, confidence
// scoring, and an optional named-entity capability.
package skills

import (
	"regexp"
	"sort"

	"github.com/jonathan/job-analyzer/internal/taxonomy"
)

// termPattern is a pre-compiled word-boundary pattern for one taxonomy term.
type termPattern struct {
	category taxonomy.Category
	term     string
	re       *regexp.Regexp
}

// termPatterns holds one compiled pattern per taxonomy term. Compiled once at
// package init; read-only afterwards, safe for concurrent use.
var termPatterns = compileTermPatterns()

func compileTermPatterns() []termPattern {
	patterns := make([]termPattern, 0, taxonomy.TermCount())
	taxonomy.Walk(func(category taxonomy.Category, term string) {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		patterns = append(patterns, termPattern{category: category, term: term, re: re})
	})
	return patterns
}

// ExtractedSkillSet is the derived bundle of recognized skills for one input.
// It is recomputed per input and has no identity beyond its computation.
type ExtractedSkillSet struct {
	Skills     map[string]bool
	Categories map[taxonomy.Category][]string
	Confidence map[string]float64
	Entities   []Entity
}

// SkillList returns the recognized skills as a sorted slice.
func (s *ExtractedSkillSet) SkillList() []string {
	list := make([]string, 0, len(s.Skills))
	for skill := range s.Skills {
		list = append(list, skill)
	}
	sort.Strings(list)
	return list
}

// Match tests every taxonomy term against normalizedText using
// case-insensitive word-boundary matching. Multi-word terms must occur as a
// contiguous phrase. Matching is exhaustive: every term is tested, no
// short-circuit on first hit.
func Match(normalizedText string) *ExtractedSkillSet {
	result := &ExtractedSkillSet{
		Skills:     make(map[string]bool),
		Categories: make(map[taxonomy.Category][]string),
		Confidence: make(map[string]float64),
	}

	if normalizedText == "" {
		return result
	}

	for _, tp := range termPatterns {
		if tp.re.MatchString(normalizedText) {
			result.Skills[tp.term] = true
			result.Categories[tp.category] = append(result.Categories[tp.category], tp.term)
		}
	}

	return result
}

// countOccurrences returns the number of non-overlapping word-boundary hits of
// term in text. Returns 0 for terms outside the taxonomy.
func countOccurrences(term, text string) int {
	for _, tp := range termPatterns {
		if tp.term == term {
			return len(tp.re.FindAllStringIndex(text, -1))
		}
	}
	return 0
}
