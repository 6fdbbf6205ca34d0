// Package extraction orchestrates profile selection and multi-strategy
// fallback extraction of job postings. The extractor consumes a page content
// provider and degrades to partial or empty fields rather than failing: an
// exhausted selector chain is an expected outcome, not an error.
package extraction

import (
	"context"
	"log"

	"github.com/jonathan/job-analyzer/internal/fetch"
	"github.com/jonathan/job-analyzer/internal/ingestion"
	"github.com/jonathan/job-analyzer/internal/profiles"
	"github.com/jonathan/job-analyzer/internal/types"
)

// genericMinLength is the minimum cleaned text length for the generic
// profile's selector chain. Site-specific profiles trust their selectors and
// accept any non-empty result.
const genericMinLength = 5

// Extractor extracts job postings through a page content provider.
type Extractor struct {
	provider fetch.ContentProvider
	verbose  bool
}

// New creates an Extractor backed by the given provider.
func New(provider fetch.ContentProvider) *Extractor {
	return &Extractor{provider: provider}
}

// NewVerbose creates an Extractor that logs each selector attempt.
func NewVerbose(provider fetch.ContentProvider) *Extractor {
	return &Extractor{provider: provider, verbose: true}
}

// Extract resolves the URL's profile and extracts each posting field through
// its selector fallback chain. Selector attempts that fail or return nothing
// are skipped and the next candidate is tried; a fully exhausted chain leaves
// the field empty. Extract never returns an error: provider failures degrade
// to empty fields. The result is deterministic given the same provider
// responses.
func (e *Extractor) Extract(ctx context.Context, urlStr string) *types.JobPosting {
	profile := profiles.Detect(urlStr)
	if e.verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected profile: %s", profile)
	}

	minLength := 0
	if profile == profiles.ProfileGeneric {
		minLength = genericMinLength
	}

	posting := &types.JobPosting{
		URL:  urlStr,
		Site: string(profile),
	}

	for _, fieldSelectors := range profiles.Selectors(profile) {
		value := e.extractField(ctx, urlStr, fieldSelectors.Selectors, minLength)
		switch fieldSelectors.Field {
		case profiles.FieldTitle:
			posting.Title = value
		case profiles.FieldCompany:
			posting.Company = value
		case profiles.FieldLocation:
			posting.Location = value
		case profiles.FieldDescription:
			posting.Description = value
		}
	}

	return posting
}

// extractField tries each selector candidate in order and returns the first
// cleaned result longer than minLength. Returns empty when the chain is
// exhausted.
func (e *Extractor) extractField(ctx context.Context, urlStr string, selectors []string, minLength int) string {
	for _, selector := range selectors {
		text, ok := e.provider.InnerText(ctx, urlStr, selector)
		if !ok {
			if e.verbose {
				log.Printf("[VERBOSE] Selector %q: not found", selector)
			}
			continue
		}

		cleaned := ingestion.Normalize(text)
		if len(cleaned) > minLength {
			if e.verbose {
				log.Printf("[VERBOSE] Selector %q: %d chars", selector, len(cleaned))
			}
			return cleaned
		}
	}
	return ""
}
