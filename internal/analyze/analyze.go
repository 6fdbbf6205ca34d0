// Package analyze provides the high-level orchestration for job posting analysis.
package analyze

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/job-analyzer/internal/classify"
	"github.com/jonathan/job-analyzer/internal/extraction"
	"github.com/jonathan/job-analyzer/internal/fetch"
	"github.com/jonathan/job-analyzer/internal/ingestion"
	"github.com/jonathan/job-analyzer/internal/llm"
	"github.com/jonathan/job-analyzer/internal/skills"
	"github.com/jonathan/job-analyzer/internal/types"
)

// Options holds configuration for running an analysis
type Options struct {
	Input      types.JobPostingInput
	APIKey     string // enables AI enrichment and entity recognition when set
	UseBrowser bool   // allow browser-rendered fallback for sparse pages
	Verbose    bool

	// Provider overrides the HTTP content provider (tests).
	Provider fetch.ContentProvider
	// Client overrides the LLM client (tests). Takes precedence over APIKey.
	Client llm.Client
}

// Run analyzes a job posting supplied by URL or raw description and returns
// the structured result. Acquisition and enrichment degrade gracefully: a
// sparse page yields partial fields, and an AI enrichment failure falls back
// to taxonomy extraction. The only caller-visible input error is a request
// with neither URL nor description.
func Run(ctx context.Context, opts Options) (*types.JobPostingResult, error) {
	if err := opts.Input.Validate(); err != nil {
		return nil, err
	}

	client, err := resolveClient(ctx, &opts)
	if err != nil {
		return nil, err
	}
	if client != nil && opts.Client == nil {
		defer func() { _ = client.Close() }()
	}

	posting := acquirePosting(ctx, &opts)

	return analyzePosting(ctx, posting, client, opts.Verbose), nil
}

// resolveClient builds the optional LLM client from opts.
func resolveClient(ctx context.Context, opts *Options) (llm.Client, error) {
	if opts.Client != nil {
		return opts.Client, nil
	}
	if opts.APIKey == "" {
		return nil, nil
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// acquirePosting obtains the job posting from the URL or the raw description.
// Fetch and extraction failures degrade to a posting with empty fields.
func acquirePosting(ctx context.Context, opts *Options) *types.JobPosting {
	if opts.Input.URL == "" {
		return ingestion.FromText(opts.Input.Description)
	}

	provider := opts.Provider
	if provider == nil {
		provider = fetch.NewHTTPProvider(fetch.DefaultOptions())
	}

	posting := newExtractor(provider, opts.Verbose).Extract(ctx, opts.Input.URL)

	// Sparse text usually means a JavaScript-rendered board; retry with a
	// real browser when allowed.
	if opts.UseBrowser && opts.Provider == nil && fetch.ShouldUseBrowser(posting.Description) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Extracted text too short (%d chars), retrying with browser", len(posting.Description))
		}
		provider = fetch.NewBrowserProvider(fetch.DefaultTimeout)
		posting = newExtractor(provider, opts.Verbose).Extract(ctx, opts.Input.URL)
	}

	// Last resort for an empty description: take the whole page body. A
	// provider failure here degrades to the partial posting; the caller sees
	// empty fields, never an error.
	if posting.Description == "" {
		title, body, err := provider.Page(ctx, opts.Input.URL)
		if err != nil {
			if opts.Verbose {
				log.Printf("[VERBOSE] Page fetch failed, returning partial posting: %v", err)
			}
			return posting
		}
		posting.Description = ingestion.Normalize(body)
		if posting.Title == "" {
			posting.Title = ingestion.Normalize(title)
		}
	}

	return posting
}

func newExtractor(provider fetch.ContentProvider, verbose bool) *extraction.Extractor {
	if verbose {
		return extraction.NewVerbose(provider)
	}
	return extraction.New(provider)
}

// analyzePosting runs skill extraction, classification, and optional AI
// enrichment over an acquired posting.
func analyzePosting(ctx context.Context, posting *types.JobPosting, client llm.Client, verbose bool) *types.JobPostingResult {
	normalized := ingestion.Normalize(posting.Description)

	ner := skills.DisabledNER()
	if client != nil {
		ner = skills.EnabledNER(llm.NewRecognizer(client))
	}

	extracted := skills.NewExtractor(ner).Extract(ctx, posting.Description)
	keywords := skills.MineKeywords(posting.Description, extracted)
	requirements := extraction.ExtractRequirements(posting.Description)

	result := &types.JobPostingResult{
		Title:           posting.Title,
		Description:     posting.Description,
		Company:         posting.Company,
		Location:        posting.Location,
		Site:            posting.Site,
		Keywords:        keywords,
		Skills:          extracted.SkillList(),
		Requirements:    requirements,
		ExperienceLevel: classify.ExperienceLevel(normalized),
		Language:        classify.Language(posting.Description, posting.Location),
		PositionTypes:   classify.PositionTypes(normalized),
	}

	if client != nil {
		enrichResult(ctx, client, result, verbose)
	}

	return result
}

// enrichResult merges AI-extracted details into the taxonomy result. Any
// enrichment failure leaves the taxonomy result untouched.
func enrichResult(ctx context.Context, client llm.Client, result *types.JobPostingResult, verbose bool) {
	details, err := llm.ExtractJobDetails(ctx, client, result.Description)
	if err != nil {
		if verbose {
			log.Printf("[VERBOSE] AI enrichment unavailable, using taxonomy extraction: %v", err)
		}
		return
	}

	if result.Title == "" || result.Title == "Job Position" {
		if details.Title != "" {
			result.Title = details.Title
		}
	}
	if result.Company == "" {
		result.Company = details.Company
	}
	if result.Location == "" {
		result.Location = details.Location
	}
	if result.ExperienceLevel == types.LevelUnknown {
		if level := details.ToRequirements().ExperienceLevel; level != types.LevelUnknown {
			result.ExperienceLevel = level
		}
	}
	result.YearsOfExperience = details.YearsOfExperience
	result.Skills = mergeTerms(result.Skills, details.RequiredSkills, details.NiceToHaveSkills)
	result.Keywords = mergeTerms(result.Keywords, details.Keywords)
}

// Requirements derives the ranking input from an analysis result.
func Requirements(result *types.JobPostingResult) types.JobRequirements {
	return types.JobRequirements{
		RequiredSkills:    result.Skills,
		ExperienceLevel:   result.ExperienceLevel,
		YearsOfExperience: result.YearsOfExperience,
		Keywords:          result.Keywords,
	}
}

// mergeTerms unions lowercase term lists into base, preserving base order and
// appending new terms in their list order.
func mergeTerms(base []string, additions ...[]string) []string {
	seen := make(map[string]bool, len(base))
	for _, term := range base {
		seen[strings.ToLower(term)] = true
	}
	merged := base
	for _, list := range additions {
		for _, term := range list {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			merged = append(merged, term)
		}
	}
	return merged
}
