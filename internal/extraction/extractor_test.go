package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubProvider serves canned selector results.
type stubProvider struct {
	selectors map[string]string
}

func (s *stubProvider) InnerText(ctx context.Context, urlStr, selector string) (string, bool) {
	text, ok := s.selectors[selector]
	return text, ok
}

func (s *stubProvider) Page(ctx context.Context, urlStr string) (string, string, error) {
	return "", "", errors.New("not implemented")
}

func TestExtract_SiteProfile(t *testing.T) {
	provider := &stubProvider{selectors: map[string]string{
		"h1.top-card-layout__title":            "Senior Backend Engineer",
		".topcard__org-name-link":              "Acme Corp",
		".show-more-less-html__markup":         "Build APIs with Python and Docker.",
		".topcard__flavor-row span:last-child": "Madrid, Spain",
	}}

	posting := New(provider).Extract(context.Background(), "https://www.linkedin.com/jobs/view/123")

	assert.Equal(t, "linkedin", posting.Site)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/123", posting.URL)
	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Equal(t, "Acme Corp", posting.Company)
	assert.Equal(t, "Madrid, Spain", posting.Location)
	assert.Equal(t, "Build APIs with Python and Docker.", posting.Description)
}

func TestExtract_FallbackChain(t *testing.T) {
	// The first company candidate is absent; the second is used.
	provider := &stubProvider{selectors: map[string]string{
		"h1.top-card-layout__title":    "Engineer",
		".top-card-layout__card a":     "Fallback Inc",
		".show-more-less-html__markup": "Description text",
	}}

	posting := New(provider).Extract(context.Background(), "https://linkedin.com/jobs/view/9")
	assert.Equal(t, "Fallback Inc", posting.Company)
}

func TestExtract_GenericMinLength(t *testing.T) {
	// Short results are rejected for the generic profile; the chain moves on.
	provider := &stubProvider{selectors: map[string]string{
		"h1":                     "Job",
		"[class*='title']":       "Data Engineer",
		"[class*='description']": "x",
		"article":                "A long enough description body.",
	}}

	posting := New(provider).Extract(context.Background(), "https://jobs.example.com/42")

	assert.Equal(t, "generic", posting.Site)
	assert.Equal(t, "Data Engineer", posting.Title, "3-char result should be rejected")
	assert.Equal(t, "A long enough description body.", posting.Description)
}

func TestExtract_ExhaustedChainLeavesFieldEmpty(t *testing.T) {
	provider := &stubProvider{selectors: map[string]string{}}

	posting := New(provider).Extract(context.Background(), "https://www.indeed.com/viewjob?jk=1")

	assert.Equal(t, "indeed", posting.Site)
	assert.Empty(t, posting.Title)
	assert.Empty(t, posting.Company)
	assert.Empty(t, posting.Description)
}

func TestExtract_NormalizesExtractedText(t *testing.T) {
	provider := &stubProvider{selectors: map[string]string{
		"h1.jobtitle":         "  Staff\n\nEngineer  ",
		"#jobDescriptionText": "Python\t\tand   Go",
	}}

	posting := New(provider).Extract(context.Background(), "https://www.indeed.com/viewjob?jk=2")

	assert.Equal(t, "Staff Engineer", posting.Title)
	assert.Equal(t, "Python and Go", posting.Description)
}
