package skills

import "regexp"

// compoundPatterns is the fixed list of multi-word technical term patterns.
// All are applied case-insensitively; matched surface forms are returned.
var compoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:machine|deep) learning\b`),
	regexp.MustCompile(`(?i)\bnatural language processing\b`),
	regexp.MustCompile(`(?i)\bcomputer vision\b`),
	regexp.MustCompile(`(?i)\bdata science\b`),
	regexp.MustCompile(`(?i)\bbig data\b`),
	regexp.MustCompile(`(?i)\bcloud computing\b`),
	regexp.MustCompile(`(?i)\bsoftware development\b`),
	regexp.MustCompile(`(?i)\bweb development\b`),
	regexp.MustCompile(`(?i)\bmobile? development\b`),
	regexp.MustCompile(`(?i)\btest(?:ing)? automation\b`),
	regexp.MustCompile(`(?i)\bcontinuous (?:integration|deployment)\b`),
	regexp.MustCompile(`(?i)\bversion control\b`),
	regexp.MustCompile(`(?i)\bdatabase management\b`),
	regexp.MustCompile(`(?i)\bsystem administration\b`),
	regexp.MustCompile(`(?i)\bnetwork(?:ing)? security\b`),
}

// ExtractCompoundTerms applies the fixed compound-term patterns to text and
// returns the matched surface forms.
func ExtractCompoundTerms(text string) map[string]bool {
	terms := make(map[string]bool)
	for _, pattern := range compoundPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			terms[match] = true
		}
	}
	return terms
}
