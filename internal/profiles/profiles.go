// Package profiles maps job posting URLs to named extraction profiles. Each
// profile is a closed enumeration variant carrying an ordered list of
// (field, selector candidates) pairs; the generic profile is just another
// variant with a longer candidate list, not special-cased code.
package profiles

import (
	"net/url"
	"strings"
)

// Profile is a named, site-specific extraction configuration.
type Profile string

// Known extraction profiles.
const (
	ProfileLinkedIn  Profile = "linkedin"
	ProfileInfoJobs  Profile = "infojobs"
	ProfileIndeed    Profile = "indeed"
	ProfileGlassdoor Profile = "glassdoor"
	ProfileGeneric   Profile = "generic"
)

// Field identifies an extractable job posting field.
type Field string

// Extractable posting fields.
const (
	FieldTitle       Field = "title"
	FieldCompany     Field = "company"
	FieldLocation    Field = "location"
	FieldDescription Field = "description"
)

// FieldSelectors is an ordered list of selector candidates for one field.
// Candidates are tried in order; the first usable result wins.
type FieldSelectors struct {
	Field     Field
	Selectors []string
}

// Detect resolves a URL to an extraction profile using hostname substring
// containment. Unrecognized hosts get the generic profile.
func Detect(urlStr string) Profile {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ProfileGeneric
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin"):
		return ProfileLinkedIn
	case strings.Contains(host, "infojobs"):
		return ProfileInfoJobs
	case strings.Contains(host, "indeed"):
		return ProfileIndeed
	case strings.Contains(host, "glassdoor"):
		return ProfileGlassdoor
	default:
		return ProfileGeneric
	}
}

// Supported reports whether the profile has site-specific selectors.
func Supported(p Profile) bool {
	return p != ProfileGeneric
}

// Selectors returns the ordered (field, candidates) pairs for a profile. The
// returned value is freshly built per call; callers may modify it.
func Selectors(p Profile) []FieldSelectors {
	switch p {
	case ProfileLinkedIn:
		return []FieldSelectors{
			{FieldTitle, []string{"h1.top-card-layout__title"}},
			{FieldCompany, []string{".topcard__org-name-link", ".top-card-layout__card a"}},
			{FieldLocation, []string{".topcard__flavor-row span:last-child"}},
			{FieldDescription, []string{".show-more-less-html__markup"}},
		}
	case ProfileInfoJobs:
		return []FieldSelectors{
			{FieldTitle, []string{"h1.rf-offer-title"}},
			{FieldCompany, []string{".rf-company_details a"}},
			{FieldLocation, []string{".rf-jDetails-location .rf-jDetails__location"}},
			{FieldDescription, []string{".rf-offer-description", ".rf-offer-requirements"}},
		}
	case ProfileIndeed:
		return []FieldSelectors{
			{FieldTitle, []string{"h1.jobtitle"}},
			{FieldCompany, []string{".companyName"}},
			{FieldLocation, []string{".jobLocation"}},
			{FieldDescription, []string{"#jobDescriptionText"}},
		}
	case ProfileGlassdoor:
		return []FieldSelectors{
			{FieldTitle, []string{"div.css-17cd5g0"}},
			{FieldCompany, []string{"div.css-16kyo5v"}},
			{FieldLocation, []string{"div.css-1vwe2a6"}},
			{FieldDescription, []string{"div.jobDescriptionContent"}},
		}
	default:
		return []FieldSelectors{
			{FieldTitle, []string{"h1", "[class*='title']", "[id*='title']"}},
			{FieldCompany, []string{"meta[property='og:site_name']"}},
			{FieldDescription, []string{
				"[class*='description']",
				"[id*='description']",
				"article",
				"main",
				".job-description",
				".job-details",
				".posting-description",
			}},
		}
	}
}
