package classify

import "strings"

// positionBucket pairs a position type with its trigger keywords.
type positionBucket struct {
	position string
	keywords []string
}

// positionBuckets is an ordered list so detection output is reproducible.
var positionBuckets = []positionBucket{
	{"frontend", []string{"frontend", "front-end", "client side", "ui developer"}},
	{"backend", []string{"backend", "back-end", "server side", "api developer"}},
	{"fullstack", []string{"fullstack", "full stack", "full-stack", "end-to-end"}},
	{"mobile", []string{"mobile", "ios", "android", "react native", "flutter"}},
	{"data", []string{"data scientist", "data engineer", "data analyst", "ml engineer", "machine learning"}},
	{"devops", []string{"devops", "sre", "site reliability", "infrastructure"}},
	{"qa", []string{"qa", "quality assurance", "test engineer", "testing"}},
	{"management", []string{"tech lead", "engineering manager", "cto", "vp of engineering", "software architect"}},
}

// PositionTypes detects the position types mentioned in a posting. Unlike
// experience level, multiple types can apply (e.g., fullstack + devops).
func PositionTypes(normalizedText string) []string {
	lower := strings.ToLower(normalizedText)

	var detected []string
	for _, bucket := range positionBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, bucket.position)
				break
			}
		}
	}

	return detected
}
