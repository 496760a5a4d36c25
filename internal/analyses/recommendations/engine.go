package recommendations

import (
	"sort"

	"resume-client/internal/keywords"
)

// Classifier is the subset of keywords.Classifier used here.
type Classifier interface {
	Relevant(kw string) bool
	Priority(kw string) keywords.Priority
	Tip(kw string) string
}

// Build derives the prioritized recommendation list for in.
//
// Missing keywords and suggestions are unioned in first-seen order with
// exact-string dedupe, irrelevant entries are dropped, and the remainder is
// stably sorted by priority rank.
func Build(c Classifier, in Input) []Recommendation {
	candidates := union(in.Missing, in.Suggestions)
	out := make([]Recommendation, 0, len(candidates))
	for _, kw := range candidates {
		if !c.Relevant(kw) {
			continue
		}
		out = append(out, Recommendation{
			Keyword:  kw,
			Tip:      c.Tip(kw),
			Priority: c.Priority(kw),
		})
	}
	sortRecommendations(out)
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// GroupByPriority splits sorted recommendations into High, Medium, Low groups,
// omitting empty ones.
func GroupByPriority(recs []Recommendation) []Group {
	order := []keywords.Priority{keywords.PriorityHigh, keywords.PriorityMedium, keywords.PriorityLow}
	groups := make([]Group, 0, len(order))
	for _, p := range order {
		var items []Recommendation
		for _, rec := range recs {
			if rec.Priority.Rank() == p.Rank() {
				items = append(items, rec)
			}
		}
		if len(items) > 0 {
			groups = append(groups, Group{Priority: p, Items: items})
		}
	}
	return groups
}

func union(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	seen := make(map[string]bool, total)
	out := make([]string, 0, total)
	for _, l := range lists {
		for _, item := range l {
			if seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})
}
