package keywords

import "strings"

// Priority is the display tier of a keyword.
type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

// Rank orders priorities for sorting: High=1, Medium=2, Low=3.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return int(p)
	default:
		return int(PriorityLow)
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// MarshalText renders the priority as its display name.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ClassifiedKeyword is the per-render classification of one keyword.
type ClassifiedKeyword struct {
	Text     string   `json:"text"`
	Relevant bool     `json:"relevant"`
	Priority Priority `json:"priority"`
}

// Classifier answers relevance and priority questions from a fixed Tables.
// It is safe for concurrent use once built.
type Classifier struct {
	categories map[string]struct{}
	high       []string
	medium     []string
	low        []string
	tips       Tips
}

// NewClassifier builds a classifier from the given tables.
func NewClassifier(t Tables) *Classifier {
	c := &Classifier{
		categories: make(map[string]struct{}, len(t.Technical)+len(t.Interpersonal)+len(t.Tooling)),
		high:       lowerAll(t.HighRules),
		medium:     lowerAll(t.MediumRules),
		low:        lowerAll(t.LowRules),
		tips:       t.Tips,
	}
	for _, set := range [][]string{t.Technical, t.Interpersonal, t.Tooling} {
		for _, kw := range set {
			c.categories[strings.ToLower(kw)] = struct{}{}
		}
	}
	return c
}

// Default returns a classifier over DefaultTables.
func Default() *Classifier {
	return NewClassifier(DefaultTables())
}

// Relevant reports whether kw is exactly one of the category entries.
func (c *Classifier) Relevant(kw string) bool {
	if kw == "" {
		return false
	}
	_, ok := c.categories[strings.ToLower(kw)]
	return ok
}

// Priority returns the tier of the first rule list with an entry contained in kw.
func (c *Classifier) Priority(kw string) Priority {
	p, _ := c.match(kw)
	return p
}

// Tip returns the advice text for kw.
func (c *Classifier) Tip(kw string) string {
	p, matched := c.match(kw)
	if !matched {
		return c.tips.Default
	}
	switch p {
	case PriorityHigh:
		return c.tips.High
	case PriorityMedium:
		return c.tips.Medium
	default:
		return c.tips.Low
	}
}

// Classify bundles relevance and priority for kw.
func (c *Classifier) Classify(kw string) ClassifiedKeyword {
	return ClassifiedKeyword{
		Text:     kw,
		Relevant: c.Relevant(kw),
		Priority: c.Priority(kw),
	}
}

// Filter keeps the relevant entries of items, preserving order.
func (c *Classifier) Filter(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if c.Relevant(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Classifier) match(kw string) (Priority, bool) {
	lower := strings.ToLower(kw)
	switch {
	case containsAny(lower, c.high):
		return PriorityHigh, true
	case containsAny(lower, c.medium):
		return PriorityMedium, true
	case containsAny(lower, c.low):
		return PriorityLow, true
	default:
		return PriorityLow, false
	}
}

func containsAny(s string, rules []string) bool {
	for _, rule := range rules {
		if strings.Contains(s, rule) {
			return true
		}
	}
	return false
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.ToLower(item)
	}
	return out
}
