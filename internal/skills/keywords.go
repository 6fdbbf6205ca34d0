package skills

import (
	"regexp"
	"sort"
	"strings"
)

// capitalizedWord matches standalone capitalized words, which often name
// proprietary technologies (Salesforce, Kafka, Snowflake) that the taxonomy
// does not cover.
var capitalizedWord = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

// stopWords are common capitalized words excluded from keyword mining.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"with": true, "this": true, "that": true,
}

// MineKeywords returns taxonomy skills found in text plus capitalized words
// that appear at least twice and are longer than three characters. Repetition
// is the signal that a capitalized word is a technology rather than sentence
// casing.
func MineKeywords(text string, extracted *ExtractedSkillSet) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(extracted.Skills))

	for _, skill := range extracted.SkillList() {
		if !seen[skill] {
			seen[skill] = true
			keywords = append(keywords, skill)
		}
	}

	counts := make(map[string]int)
	for _, word := range capitalizedWord.FindAllString(text, -1) {
		counts[word]++
	}

	mined := make([]string, 0, len(counts))
	for word, count := range counts {
		if count < 2 || len(word) <= 3 {
			continue
		}
		if stopWords[strings.ToLower(word)] {
			continue
		}
		if !seen[word] {
			seen[word] = true
			mined = append(mined, word)
		}
	}
	sort.Strings(mined)

	return append(keywords, mined...)
}
