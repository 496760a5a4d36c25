package recommendations

import "resume-client/internal/keywords"

// Recommendation is one advice card derived from a missing keyword or suggestion.
type Recommendation struct {
	Keyword  string            `json:"keyword"`
	Tip      string            `json:"tip"`
	Priority keywords.Priority `json:"priority"`
	Order    int               `json:"order"`
}

// Input is the slice of an analysis result the builder needs.
// Matched is accepted for symmetry with the result contract; it does not
// contribute recommendations.
type Input struct {
	Matched     []string
	Missing     []string
	Suggestions []string
}

// Group is a run of recommendations sharing one priority.
type Group struct {
	Priority keywords.Priority `json:"priority"`
	Items    []Recommendation  `json:"items"`
}
