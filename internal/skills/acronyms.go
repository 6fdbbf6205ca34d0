package skills

import "regexp"

// acronymPattern matches runs of 2-5 consecutive uppercase letters.
var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// recognizedAcronyms is the fixed whitelist of technology acronyms. Uppercase
// sequences not on this list are discarded: that avoids false positives from
// proper nouns at the cost of recall for unlisted acronyms. Documented
// limitation, not a bug.
var recognizedAcronyms = map[string]bool{
	"API": true, "REST": true, "JSON": true, "XML": true, "HTML": true,
	"CSS": true, "SQL": true, "UI": true, "UX": true,
	"AWS": true, "GCP": true, "Azure": true, "CI": true, "CD": true,
	"TDD": true, "BDD": true, "CRM": true, "ERP": true,
	"SaaS": true, "PaaS": true, "IaaS": true, "MVP": true, "OKR": true,
	"KPI": true, "ROI": true, "SLA": true,
	"HTTP": true, "HTTPS": true, "FTP": true, "SSH": true, "TCP": true,
	"UDP": true, "IP": true, "DNS": true,
	"CPU": true, "GPU": true, "RAM": true, "SSD": true, "HDD": true,
	"OS": true, "IDE": true, "SDK": true,
}

// ExtractAcronyms detects recognized technology acronyms in text. Matching is
// against the original (non-normalized-case) text, since acronyms are defined
// by their uppercase surface form.
func ExtractAcronyms(text string) map[string]bool {
	acronyms := make(map[string]bool)
	for _, match := range acronymPattern.FindAllString(text, -1) {
		if recognizedAcronyms[match] {
			acronyms[match] = true
		}
	}
	return acronyms
}
