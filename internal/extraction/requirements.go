package extraction

import (
	"regexp"
	"strings"
)

// maxRequirements caps the number of extracted requirement items.
const maxRequirements = 10

// requirementSections matches "Requirements:"-style headings (English and
// Spanish) and captures the section body up to a blank line, the next
// heading, or end of text.
var requirementSections = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:requirements|qualifications|required skills):(.*?)(?:\n\n|\n[A-Z][a-z]+:|$)`),
	regexp.MustCompile(`(?is)(?:requisitos|requerimientos):(.*?)(?:\n\n|\n[A-Z][a-z]+:|$)`),
}

// requirementItem matches bulleted or numbered list items inside a section.
var requirementItem = regexp.MustCompile(`[•\-*o]\s*([^\n]+)|\d+\.\s*([^\n]+)`)

// ExtractRequirements pulls individual requirement items from the bulleted
// sections of a raw (non-normalized) job description. Best effort: postings
// without a recognizable requirements section yield an empty list.
func ExtractRequirements(description string) []string {
	var requirements []string

	for _, section := range requirementSections {
		for _, match := range section.FindAllStringSubmatch(description, -1) {
			for _, item := range requirementItem.FindAllStringSubmatch(match[1], -1) {
				text := item[1]
				if text == "" {
					text = item[2]
				}
				text = strings.TrimSpace(text)
				if len(text) > 5 {
					requirements = append(requirements, text)
				}
			}
		}
	}

	if len(requirements) > maxRequirements {
		requirements = requirements[:maxRequirements]
	}
	return requirements
}
