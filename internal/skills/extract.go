package skills

import (
	"context"

	"github.com/jonathan/job-analyzer/internal/ingestion"
)

// Extractor bundles the recognizers into a single extraction pass. The zero
// value is usable and runs with NER disabled.
type Extractor struct {
	ner NERCapability
}

// NewExtractor creates an Extractor with the given NER capability.
func NewExtractor(ner NERCapability) *Extractor {
	return &Extractor{ner: ner}
}

// Extract recognizes skills in the given text. The text is normalized first,
// so callers may pass raw posting text. Taxonomy matches populate the
// category map; acronyms and compound terms join the flat skill set with
// default confidence values.
func (e *Extractor) Extract(ctx context.Context, text string) *ExtractedSkillSet {
	normalized := ingestion.Normalize(text)

	result := Match(normalized)

	acronyms := ExtractAcronyms(normalized)
	compounds := ExtractCompoundTerms(normalized)

	for acronym := range acronyms {
		result.Skills[acronym] = true
	}
	for compound := range compounds {
		result.Skills[compound] = true
	}

	// Exact matches are the keys of the category maps, not the merged set.
	exact := make(map[string]bool)
	for _, terms := range result.Categories {
		for _, term := range terms {
			exact[term] = true
		}
	}
	result.Confidence = ScoreConfidence(exact, acronyms, compounds, normalized)

	if e.ner.Enabled() {
		result.Entities = e.ner.Extract(ctx, normalized)
	}

	return result
}
