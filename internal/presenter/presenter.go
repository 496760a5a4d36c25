package presenter

import (
	"strconv"

	"resume-client/internal/analyses"
	"resume-client/internal/analyses/recommendations"
	"resume-client/internal/keywords"
)

// Tier is the verdict severity derived from the score.
type Tier string

const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierNeedsImprovement Tier = "needs_improvement"
)

const (
	excellentThreshold = 80
	goodThreshold      = 60
)

// DefaultFallbackTrend holds the leading points drawn when the service sends
// no history; the current score is appended as the last point.
var DefaultFallbackTrend = []int{45, 60, 72}

// Verdict is the headline assessment of a score.
type Verdict struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
}

// View is everything the results screen renders.
type View struct {
	Score                int                              `json:"score"`
	ScorePercent         string                           `json:"scorePercent"`
	Verdict              Verdict                          `json:"verdict"`
	Trend                []analyses.HistoryPoint          `json:"trend"`
	TrendIsPlaceholder   bool                             `json:"trendIsPlaceholder"`
	MatchedSkills        []string                         `json:"matchedSkills"`
	MissingSkills        []string                         `json:"missingSkills"`
	Recommendations      []recommendations.Recommendation `json:"recommendations"`
	RecommendationGroups []recommendations.Group          `json:"recommendationGroups"`
	TotalImpact          *float64                         `json:"totalImpact,omitempty"`
	Strengths            []string                         `json:"strengths,omitempty"`
	Weaknesses           []string                         `json:"weaknesses,omitempty"`
}

// Presenter turns analysis results into render-ready views.
type Presenter struct {
	classifier *keywords.Classifier
	fallback   []int
}

// New builds a presenter. A nil classifier uses keywords.Default; a nil
// fallback uses DefaultFallbackTrend.
func New(c *keywords.Classifier, fallback []int) *Presenter {
	if c == nil {
		c = keywords.Default()
	}
	if fallback == nil {
		fallback = DefaultFallbackTrend
	}
	return &Presenter{classifier: c, fallback: append([]int(nil), fallback...)}
}

// Present derives the view for result. A nil result yields ok=false and the
// caller renders nothing.
func (p *Presenter) Present(result *analyses.AnalysisResult) (View, bool) {
	if result == nil {
		return View{}, false
	}

	trend, placeholder := p.trend(result)
	recs := recommendations.Build(p.classifier, recommendations.Input{
		Matched:     result.MatchedKeywords,
		Missing:     result.MissingKeywords,
		Suggestions: result.Suggestions,
	})

	return View{
		Score:                result.Score,
		ScorePercent:         strconv.Itoa(result.Score) + "%",
		Verdict:              VerdictFor(result.Score),
		Trend:                trend,
		TrendIsPlaceholder:   placeholder,
		MatchedSkills:        p.classifier.Filter(result.MatchedKeywords),
		MissingSkills:        p.classifier.Filter(result.MissingKeywords),
		Recommendations:      recs,
		RecommendationGroups: recommendations.GroupByPriority(recs),
		TotalImpact:          result.TotalImpact,
		Strengths:            result.Strengths,
		Weaknesses:           result.Weaknesses,
	}, true
}

// VerdictFor maps a score to its tier and label.
func VerdictFor(score int) Verdict {
	switch {
	case score >= excellentThreshold:
		return Verdict{Tier: TierExcellent, Label: "Excellent - Resume is highly ATS-optimized"}
	case score >= goodThreshold:
		return Verdict{Tier: TierGood, Label: "Good - Some improvements needed"}
	default:
		return Verdict{Tier: TierNeedsImprovement, Label: "Needs Improvement - Many missing elements"}
	}
}

func (p *Presenter) trend(result *analyses.AnalysisResult) ([]analyses.HistoryPoint, bool) {
	if len(result.History) > 0 {
		return append([]analyses.HistoryPoint(nil), result.History...), false
	}
	out := make([]analyses.HistoryPoint, 0, len(p.fallback)+1)
	for i, score := range p.fallback {
		out = append(out, analyses.HistoryPoint{Attempt: i + 1, Score: score})
	}
	out = append(out, analyses.HistoryPoint{Attempt: len(p.fallback) + 1, Score: result.Score})
	return out, true
}
