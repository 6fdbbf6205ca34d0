package skills

// Default confidence values for pattern-based recognizers. An exact taxonomy
// match always wins over these defaults for the same skill.
const (
	acronymConfidence  = 0.6
	compoundConfidence = 0.7
)

// ScoreConfidence assigns a confidence value in [0,1] to each recognized
// skill. Exact taxonomy matches score min(1.0, 0.5 + 0.1 * occurrenceCount)
// where occurrenceCount is the number of non-overlapping word-boundary hits
// in normalizedText. Acronyms and compound terms get fixed defaults unless
// already scored as an exact match.
func ScoreConfidence(exact map[string]bool, acronyms map[string]bool, compounds map[string]bool, normalizedText string) map[string]float64 {
	scores := make(map[string]float64, len(exact)+len(acronyms)+len(compounds))

	for skill := range exact {
		count := countOccurrences(skill, normalizedText)
		confidence := 0.5 + 0.1*float64(count)
		if confidence > 1.0 {
			confidence = 1.0
		}
		scores[skill] = confidence
	}

	for skill := range acronyms {
		if _, scored := scores[skill]; !scored {
			scores[skill] = acronymConfidence
		}
	}

	for skill := range compounds {
		if _, scored := scores[skill]; !scored {
			scores[skill] = compoundConfidence
		}
	}

	return scores
}
