package classify

import "strings"

// Posting languages. The classifier only distinguishes English and Spanish.
const (
	LangEnglish = "en"
	LangSpanish = "es"
)

// spanishLocations are city/country tokens that short-circuit to Spanish.
var spanishLocations = []string{
	"madrid", "barcelona", "valencia", "sevilla", "bilbao", "españa", "spain",
}

// englishLocations are region tokens that short-circuit to English.
var englishLocations = []string{
	"usa", "uk", "united states", "london", "united kingdom", "new york",
	"san francisco", "remote us",
}

// spanishKeywords signal a Spanish-language posting when found in the
// description. Three or more hits classify the posting as Spanish.
var spanishKeywords = []string{
	"buscamos", "se busca", "empleo", "trabajo", "vacante", "salario",
	"jornada", "contrato", "incorporación", "incorporar", "candidatura",
	"empresa española", "madrid", "barcelona", "valencia", "sevilla",
	"bilbao", "españa",
}

// spanishKeywordThreshold is the minimum keyword count to classify as Spanish.
const spanishKeywordThreshold = 3

// Language classifies the language of a posting. Decision order:
//  1. Location matching a Spanish city/country token returns "es" immediately.
//  2. Location matching an English region token returns "en" immediately.
//  3. Three or more Spanish keywords in the description return "es".
//  4. Otherwise "en".
//
// The English-biased default is a deliberate policy, not a classifier
// limitation: tech postings default to English unless clearly Spanish.
func Language(description, location string) string {
	if location != "" {
		locationLower := strings.ToLower(location)
		for _, token := range spanishLocations {
			if strings.Contains(locationLower, token) {
				return LangSpanish
			}
		}
		for _, token := range englishLocations {
			if strings.Contains(locationLower, token) {
				return LangEnglish
			}
		}
	}

	descLower := strings.ToLower(description)
	hits := 0
	for _, keyword := range spanishKeywords {
		if strings.Contains(descLower, keyword) {
			hits++
		}
	}
	if hits >= spanishKeywordThreshold {
		return LangSpanish
	}

	return LangEnglish
}
