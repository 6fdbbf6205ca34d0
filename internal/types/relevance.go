package types

// MatchKind identifies which rule produced a match entry.
type MatchKind string

// Match kinds recorded by the relevance scorers.
const (
	MatchLanguage    MatchKind = "language"
	MatchTopic       MatchKind = "topic"
	MatchDescription MatchKind = "description"
	MatchSkill       MatchKind = "skill"
)

// Recommendation buckets a relevance score into an actionable label.
type Recommendation string

// Recommendation buckets, from strongest to weakest.
const (
	HighlyRecommended Recommendation = "highly_recommended"
	Recommended       Recommendation = "recommended"
	MaybeRelevant     Recommendation = "maybe_relevant"
	NotRelevant       Recommendation = "not_relevant"
)

// MatchEntry records a single satisfied requirement and the evidence for it.
type MatchEntry struct {
	Kind         MatchKind `json:"kind"`
	MatchedTerm  string    `json:"matched_term"`
	RequiredTerm string    `json:"required_term"`
	Evidence     string    `json:"evidence,omitempty"`
}

// RelevanceScore is the output of an additive relevance scoring run. The score
// is always an integer clamped to [0,100].
type RelevanceScore struct {
	SubjectID      string         `json:"subject_id,omitempty"`
	Score          int            `json:"score"`
	Matched        []MatchEntry   `json:"matched"`
	PartialMatches []MatchEntry   `json:"partial_matches,omitempty"`
	Missing        []string       `json:"missing,omitempty"`
	Recommendation Recommendation `json:"recommendation,omitempty"`
	ShouldInclude  bool           `json:"should_include"`
}
