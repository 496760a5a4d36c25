package analyses

// AnalysisResult is the external service's answer for one resume/job pair.
// Field names follow the service's JSON contract and must not be renamed.
type AnalysisResult struct {
	Score           int            `json:"score"`
	MatchedKeywords []string       `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
	Suggestions     []string       `json:"suggestions"`
	History         []HistoryPoint `json:"history"`

	// Optional fields some service versions include.
	TotalImpact *float64 `json:"totalImpact,omitempty"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
}

// HistoryPoint is one earlier attempt's score.
type HistoryPoint struct {
	Attempt int `json:"attempt"`
	Score   int `json:"score"`
}
